package neighbor

import (
	"sort"

	"github.com/rushteam/fooder/core"
	"github.com/rushteam/fooder/similarity"
)

// Selector 是自适应近邻选择器：按当前账本与交互表计算逐用户距离，
// 用百分位规则确定邻居池大小，再收敛到"还有未评菜谱可贡献"的用户。
//
// 零值可用：MinRows/MaxRows 不大于 0 时取默认值（5 / 100）。
type Selector struct {
	MinRows int
	MaxRows int
}

// Result 是一次邻居选择的产出：
//   - Neighbors：最终邻居集（升序用户 ID）
//   - Matrix：邻居×（账本未覆盖菜谱）的评价矩阵，供推荐策略打分
//
// 两者每次推荐调用都重新计算，不跨调用持久化。
type Result struct {
	Neighbors core.NeighborSet
	Matrix    *similarity.Matrix
}

// Empty 判断是否没有选出任何邻居。
func (r *Result) Empty() bool {
	return r == nil || len(r.Neighbors) == 0
}

// Select 对非空账本执行近邻选择。
//
// 流程：
//  1. 交互表限制到账本覆盖的菜谱，透视为矩阵
//  2. 每个用户行与账本参考向量求 L1 距离
//  3. PercentileFilter 确定邻居池目标大小，按距离升序取前 target 个
//  4. 交互表限制到 (邻居池 × 账本未覆盖菜谱)，重新透视；
//     在该切片中没有任何剩余评价的用户被丢弃
func (s *Selector) Select(ledger *core.PreferenceLedger, table *core.InteractionTable) (*Result, error) {
	minRows := s.MinRows
	if minRows <= 0 {
		minRows = DefaultMinRows
	}
	maxRows := s.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	rated := ledger.RecipeIDSet()
	reduced := table.FilterRecipes(rated)
	pivot, err := similarity.Build(reduced.Records())
	if err != nil {
		return nil, err
	}

	dists := similarity.Distances(ledger.Ratings(), pivot)
	rows := make([]UserDist, 0, len(dists))
	for _, u := range pivot.Users() {
		rows = append(rows, UserDist{UserID: u, Dist: dists[u]})
	}

	rows, target := PercentileFilter(rows, minRows, maxRows)

	// 距离升序、同距离时保持用户 ID 升序（输入行序），取前 target 个。
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Dist < rows[j].Dist })
	if len(rows) > target {
		rows = rows[:target]
	}
	pool := make(map[int64]struct{}, len(rows))
	for _, r := range rows {
		pool[r.UserID] = struct{}{}
	}

	// 邻居池内、账本未覆盖菜谱上的交互切片；
	// 切片中不再出现的用户（没有剩余评价可贡献）被丢弃。
	slice := table.FilterUsers(pool).ExcludeRecipes(rated)
	matrix, err := similarity.Build(slice.Records())
	if err != nil {
		return nil, err
	}

	return &Result{
		Neighbors: core.NeighborSet(matrix.Users()),
		Matrix:    matrix,
	}, nil
}
