package filter

import (
	"context"

	"github.com/rushteam/fooder/core"
)

// Blacklist 是黑名单过滤器：显式禁止的菜谱 ID 永不出现在推荐结果中。
// 典型来源是配置文件（下架菜谱、运营屏蔽等）。
type Blacklist struct {
	recipeIDs map[int64]struct{}
}

// NewBlacklist 由菜谱 ID 列表构建黑名单过滤器。
func NewBlacklist(recipeIDs []int64) *Blacklist {
	set := make(map[int64]struct{}, len(recipeIDs))
	for _, id := range recipeIDs {
		set[id] = struct{}{}
	}
	return &Blacklist{recipeIDs: set}
}

func (f *Blacklist) Name() string {
	return "filter.blacklist"
}

func (f *Blacklist) ShouldFilter(
	_ context.Context,
	_ *core.RecommendContext,
	candidate *core.Candidate,
) (bool, error) {
	_, ok := f.recipeIDs[candidate.RecipeID]
	return ok, nil
}
