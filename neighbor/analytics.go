package neighbor

import (
	"sort"

	"github.com/rushteam/fooder/core"
	"github.com/rushteam/fooder/similarity"
)

// NeighborStats 是单个邻居相对当前账本的画像：
//   - CommonLikes：账本喜欢集中、邻居同样喜欢的菜谱数
//   - CommonDislikes：账本不喜欢集中、邻居同样不喜欢的菜谱数
//   - RecipesToRecommend：喜欢集之外、邻居喜欢的菜谱数
//     （即邻居可能带来的新推荐量）
type NeighborStats struct {
	UserID             int64
	CommonLikes        int
	CommonDislikes     int
	RecipesToRecommend int
}

// Report 对当前邻居集生成画像行，供表现层解释推荐来源。
//
// polarity 决定排序键：Like 按 CommonLikes 降序，Dislike 按 CommonDislikes
// 降序；同值时用户 ID 升序。邻居集为空时返回 NoNeighborError。
func Report(ledger *core.PreferenceLedger, table *core.InteractionTable,
	neighbors core.NeighborSet, polarity core.Rating) ([]NeighborStats, error) {
	if len(neighbors) == 0 {
		return nil, core.NewNoNeighborError()
	}

	slice := table.FilterUsers(neighbors.Set())
	matrix, err := similarity.Build(slice.Records())
	if err != nil {
		return nil, err
	}
	// 账本中的菜谱可能没有任何邻居评价过：补成全零列，保证计数语义一致。
	matrix = matrix.WithRecipes(unionRecipes(matrix.Recipes(), ledger.RecipeIDs())).
		WithUsers(neighbors)

	liked := ledger.Liked()
	disliked := ledger.Disliked()
	likedSet := make(map[int64]struct{}, len(liked))
	for _, id := range liked {
		likedSet[id] = struct{}{}
	}
	remaining := make([]int64, 0, matrix.NumCols())
	for _, r := range matrix.Recipes() {
		if _, ok := likedSet[r]; !ok {
			remaining = append(remaining, r)
		}
	}

	rows := make([]NeighborStats, 0, len(neighbors))
	for _, u := range matrix.Users() {
		rows = append(rows, NeighborStats{
			UserID:             u,
			CommonLikes:        matrix.CountInRow(u, liked, core.Like),
			CommonDislikes:     matrix.CountInRow(u, disliked, core.Dislike),
			RecipesToRecommend: matrix.CountInRow(u, remaining, core.Like),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if polarity == core.Dislike {
			return rows[i].CommonDislikes > rows[j].CommonDislikes
		}
		return rows[i].CommonLikes > rows[j].CommonLikes
	})
	return rows, nil
}

func unionRecipes(a, b []int64) []int64 {
	seen := make(map[int64]struct{}, len(a)+len(b))
	out := make([]int64, 0, len(a)+len(b))
	for _, s := range [][]int64{a, b} {
		for _, id := range s {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
