// Package session 实现面向表现层的会话对象：
// 每个会话绑定一个分区、一本偏好账本和一份共享只读的交互表。
package session

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/rushteam/fooder/core"
	"github.com/rushteam/fooder/filter"
	"github.com/rushteam/fooder/graph"
	"github.com/rushteam/fooder/neighbor"
	"github.com/rushteam/fooder/suggest"
)

// User 是单个活跃用户的推荐会话。
//
// 并发模型：单会话单 goroutine，同步阻塞调用，不加锁；
// InteractionTable 加载后只读，可在多个会话间共享。
// 会话状态（账本、缓存的邻居集）不跨进程持久化。
type User struct {
	dish      core.DishType
	ledger    *core.PreferenceLedger
	table     *core.InteractionTable
	policy    *suggest.Policy
	neighbors core.NeighborSet
	logger    zerolog.Logger
}

// Option 用于定制会话行为。
type Option func(*User)

// WithLogger 注入结构化日志器；默认丢弃所有日志。
func WithLogger(logger zerolog.Logger) Option {
	return func(u *User) { u.logger = logger }
}

// WithRand 注入随机源；固定种子可让冷启动/回退路径可复现。
func WithRand(rng *rand.Rand) Option {
	return func(u *User) { u.policy.Rand = rng }
}

// WithSelector 覆盖邻居选择器的上下界（默认 5 / 100）。
func WithSelector(selector neighbor.Selector) Option {
	return func(u *User) { u.policy.Selector = selector }
}

// WithFilters 追加候选过滤器（黑名单、DSL 等）。
func WithFilters(filters ...filter.Filter) Option {
	return func(u *User) { u.policy.Filters = append(u.policy.Filters, filters...) }
}

// New 创建一个会话。
// dishType 必须是 "main" 或 "dessert"，否则返回 InvalidDishTypeError；
// 交互表在创建时经由 provider 加载一次，之后整个会话生命周期只读。
func New(ctx context.Context, dishType string, provider core.TableProvider, opts ...Option) (*User, error) {
	dish, err := core.ParseDishType(dishType)
	if err != nil {
		return nil, err
	}

	table, err := provider.Load(ctx, dish)
	if err != nil {
		return nil, fmt.Errorf("load %s interactions: %w", dish, err)
	}

	u := &User{
		dish:   dish,
		ledger: core.NewPreferenceLedger(),
		table:  table,
		policy: &suggest.Policy{},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(u)
	}

	u.logger.Debug().
		Str("dish_type", string(dish)).
		Int("interactions", table.Len()).
		Msg("session created")
	return u, nil
}

// DishType 返回会话绑定的分区。
func (u *User) DishType() core.DishType { return u.dish }

// Table 返回会话共享的只读交互表。
func (u *User) Table() *core.InteractionTable { return u.table }

// Suggest 返回下一道推荐的菜谱 ID。
// 任何经过邻居选择的调用都会刷新会话缓存的邻居集（包括刷新为空集）。
func (u *User) Suggest(ctx context.Context) (int64, error) {
	rctx := &core.RecommendContext{
		DishType:  u.dish,
		Ledger:    u.ledger,
		Table:     u.table,
		Neighbors: u.neighbors,
	}
	sug, err := u.policy.Suggest(ctx, rctx)
	if err != nil {
		u.logger.Debug().Err(err).Msg("suggestion failed")
		return 0, err
	}
	if sug.Source != suggest.SourceColdStart {
		u.neighbors = sug.Neighbors
	}

	u.logger.Debug().
		Int64("recipe_id", sug.RecipeID).
		Str("source", sug.Source).
		Int("neighbors", len(sug.Neighbors)).
		Msg("recipe suggested")
	return sug.RecipeID, nil
}

// Like 记录喜欢（upsert：重复调用幂等，评价不同则覆盖）。
func (u *User) Like(recipeID int64) {
	u.addPreference(recipeID, core.Like)
}

// Dislike 记录不喜欢（upsert）。
func (u *User) Dislike(recipeID int64) {
	u.addPreference(recipeID, core.Dislike)
}

func (u *User) addPreference(recipeID int64, rating core.Rating) {
	u.ledger.Add(recipeID, rating)
	u.logger.Debug().
		Int64("recipe_id", recipeID).
		Int8("rating", int8(rating)).
		Msg("preference added")
}

// Undo 撤销一条偏好；菜谱不在账本中时返回 PreferenceNotFoundError。
func (u *User) Undo(recipeID int64) error {
	if err := u.ledger.Remove(recipeID); err != nil {
		u.logger.Debug().Int64("recipe_id", recipeID).Err(err).Msg("undo failed")
		return err
	}
	u.logger.Debug().Int64("recipe_id", recipeID).Msg("preference removed")
	return nil
}

// Preferences 按历史顺序返回账本快照。
func (u *User) Preferences() []core.Preference {
	return u.ledger.Snapshot()
}

// Neighbors 返回最近一次邻居驱动推荐缓存的邻居集。
func (u *User) Neighbors() core.NeighborSet {
	out := make(core.NeighborSet, len(u.neighbors))
	copy(out, u.neighbors)
	return out
}

// AdjacencyGraph 构建指定极性的邻接图；
// 尚未产生邻居集时返回 NoNeighborError。
func (u *User) AdjacencyGraph(polarity core.Rating) (*graph.MultiGraph, error) {
	g, err := graph.Build(u.ledger, u.table, u.neighbors, polarity)
	if err != nil {
		u.logger.Debug().Err(err).Msg("adjacency graph failed")
		return nil, err
	}
	u.logger.Debug().
		Int("nodes", g.NumNodes()).
		Int("edges", g.NumEdges()).
		Msg("adjacency graph built")
	return g, nil
}

// NeighborReport 生成邻居画像行；尚未产生邻居集时返回 NoNeighborError。
func (u *User) NeighborReport(polarity core.Rating) ([]neighbor.NeighborStats, error) {
	rows, err := neighbor.Report(u.ledger, u.table, u.neighbors, polarity)
	if err != nil {
		u.logger.Debug().Err(err).Msg("neighbor report failed")
		return nil, err
	}
	return rows, nil
}
