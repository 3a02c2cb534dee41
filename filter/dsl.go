package filter

import (
	"context"

	"github.com/rushteam/fooder/core"
	"github.com/rushteam/fooder/pkg/dsl"
)

// DSLFilter 是表达式驱动的过滤器：CEL 表达式对候选求值为 true 时过滤该候选。
//
// 示例表达式：
//   - candidate.recipe_id in [101, 102]
//   - candidate.score < 1.0 && prefs.count > 3
//
// 表达式由配置下发，便于不改代码调整过滤策略。
type DSLFilter struct {
	Expr string
}

func (f *DSLFilter) Name() string {
	return "filter.dsl"
}

func (f *DSLFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	candidate *core.Candidate,
) (bool, error) {
	return dsl.NewEval(candidate, rctx).Evaluate(f.Expr)
}
