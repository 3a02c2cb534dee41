package pipeline

import (
	"context"

	"github.com/rushteam/fooder/core"
)

// Kind 用于标记 Node 类型，方便观测/编排（例如按阶段打点）。
type Kind string

const (
	KindCandidate Kind = "candidate" // 候选阶段：从邻居矩阵或回退池生成候选
	KindFilter    Kind = "filter"    // 过滤阶段：剔除不符合约束的候选
	KindScore     Kind = "score"     // 打分阶段：对候选打分
)

// Node 是推荐链路的最小可扩展单元。
// 统一采用"输入 candidates -> 输出 candidates"的形态，
// 方便候选生成、过滤截断等操作串联。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RecommendContext,
		candidates []*core.Candidate,
	) ([]*core.Candidate, error)
}
