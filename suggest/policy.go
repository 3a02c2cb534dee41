// Package suggest 实现推荐策略：冷启动 / 邻居驱动 / 耗尽回退的三态状态机。
package suggest

import (
	"context"
	"math/rand"
	"time"

	"github.com/rushteam/fooder/core"
	"github.com/rushteam/fooder/filter"
	"github.com/rushteam/fooder/neighbor"
	"github.com/rushteam/fooder/pipeline"
	"github.com/rushteam/fooder/pkg/utils"
)

// 候选来源标识（写入 candidate 的 source 标签，供解释/观测）。
const (
	SourceColdStart = "cold_start" // 账本为空：全表随机
	SourceNeighbor  = "neighbor"   // 邻居驱动：近邻评价列合计最大者
	SourceFallback  = "fallback"   // 耗尽回退：未评菜谱中随机
)

// Suggestion 是一次推荐的完整产出：选中的菜谱、驱动它的邻居集、来源路径。
// 邻居集作为返回值显式交还给会话持有，而不是策略内部的隐藏副作用。
type Suggestion struct {
	RecipeID  int64
	Neighbors core.NeighborSet
	Source    string
}

// Policy 是推荐策略。
//
// 状态机（基于账本大小与邻居选择结果）：
//   - 冷启动：账本为空，不做邻居计算，全表等概率随机
//   - 邻居驱动：邻居矩阵各列求和，取列合计最大的菜谱；
//     列按菜谱 ID 升序扫描、保留首个最大值，并列时最小 ID 胜出
//   - 耗尽回退：邻居全部被修剪或没有新菜谱可贡献时，
//     在账本未覆盖的菜谱中等概率随机；该集合也为空则返回 NoMoreRecipesError
//
// Filters 对三条路径的候选集统一生效（黑名单/DSL 等运营约束）；
// 默认无过滤器时行为就是裸状态机。
type Policy struct {
	Selector neighbor.Selector

	// Rand 是随机源，冷启动与回退路径使用；注入固定种子可复现结果。
	// 为空时在首次使用时以当前时间初始化。
	Rand *rand.Rand

	// Filters 是候选过滤器链，空链直通。
	Filters []filter.Filter
}

// Suggest 执行一次推荐。任何经过邻居选择的调用（即账本非空的调用）
// 都会在返回值中携带最新邻居集，包括选择结果为空的情况。
func (p *Policy) Suggest(ctx context.Context, rctx *core.RecommendContext) (*Suggestion, error) {
	if rctx.Ledger.Len() == 0 {
		return p.coldStart(ctx, rctx)
	}

	result, err := p.Selector.Select(rctx.Ledger, rctx.Table)
	if err != nil {
		return nil, err
	}

	if !result.Empty() {
		if sug, ok, err := p.fromNeighbors(ctx, rctx, result); err != nil {
			return nil, err
		} else if ok {
			return sug, nil
		}
		// 邻居候选被过滤器清空：落入回退路径
	}
	return p.fallback(ctx, rctx, result.Neighbors)
}

// coldStart 在全表范围内等概率抽取一个菜谱。
func (p *Policy) coldStart(ctx context.Context, rctx *core.RecommendContext) (*Suggestion, error) {
	candidates := p.newCandidates(rctx.Table.RecipeIDs(), SourceColdStart)
	candidates, err := p.runFilters(ctx, rctx, candidates)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, core.NewNoMoreRecipesError(rctx.DishType)
	}
	pick := candidates[p.rng().Intn(len(candidates))]
	return &Suggestion{RecipeID: pick.RecipeID, Source: SourceColdStart}, nil
}

// fromNeighbors 在邻居矩阵上选取列合计最大的菜谱。
// 候选被过滤器全部拦截时返回 ok=false，由调用方转入回退路径。
func (p *Policy) fromNeighbors(
	ctx context.Context,
	rctx *core.RecommendContext,
	result *neighbor.Result,
) (*Suggestion, bool, error) {
	candidates := make([]*core.Candidate, 0, result.Matrix.NumCols())
	for _, recipeID := range result.Matrix.Recipes() {
		c := core.NewCandidate(recipeID)
		c.Score = float64(result.Matrix.ColumnSum(recipeID))
		c.PutLabel("source", utils.Label{Value: SourceNeighbor, Source: "suggest"})
		candidates = append(candidates, c)
	}

	candidates, err := p.runFilters(ctx, rctx, candidates)
	if err != nil {
		return nil, false, err
	}
	if len(candidates) == 0 {
		return nil, false, nil
	}

	// 候选保持菜谱 ID 升序，保留首个最大值即是最小 ID 并列胜出。
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return &Suggestion{
		RecipeID:  best.RecipeID,
		Neighbors: result.Neighbors,
		Source:    SourceNeighbor,
	}, true, nil
}

// fallback 在账本未覆盖的菜谱中等概率抽取。
func (p *Policy) fallback(
	ctx context.Context,
	rctx *core.RecommendContext,
	neighbors core.NeighborSet,
) (*Suggestion, error) {
	remaining := rctx.Table.ExcludeRecipes(rctx.Ledger.RecipeIDSet())
	candidates := p.newCandidates(remaining.RecipeIDs(), SourceFallback)
	candidates, err := p.runFilters(ctx, rctx, candidates)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, core.NewNoMoreRecipesError(rctx.DishType)
	}
	pick := candidates[p.rng().Intn(len(candidates))]
	return &Suggestion{
		RecipeID:  pick.RecipeID,
		Neighbors: neighbors,
		Source:    SourceFallback,
	}, nil
}

func (p *Policy) newCandidates(recipeIDs []int64, source string) []*core.Candidate {
	out := make([]*core.Candidate, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		c := core.NewCandidate(id)
		c.PutLabel("source", utils.Label{Value: source, Source: "suggest"})
		out = append(out, c)
	}
	return out
}

func (p *Policy) runFilters(
	ctx context.Context,
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(p.Filters) == 0 {
		return candidates, nil
	}
	pipe := &pipeline.Pipeline{Nodes: []pipeline.Node{
		&filter.FilterNode{Filters: p.Filters},
	}}
	return pipe.Run(ctx, rctx, candidates)
}

func (p *Policy) rng() *rand.Rand {
	if p.Rand == nil {
		p.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p.Rand
}
