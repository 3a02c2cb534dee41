package similarity

import "github.com/rushteam/fooder/core"

// Distances 对矩阵的每一行计算与参考评价向量的 L1 距离
// （逐列绝对差求和）。矩阵应当已被限制到参考向量覆盖的菜谱列；
// 参考向量缺失的列按 Unrated (0) 处理。
//
// 评价取值为 ±1/0，距离因此是非负整数：0 表示在全部比较列上完全一致。
func Distances(ref map[int64]core.Rating, m *Matrix) map[int64]int {
	out := make(map[int64]int, m.NumRows())
	for _, u := range m.Users() {
		d := 0
		for _, r := range m.Recipes() {
			d += absDiff(m.Rating(u, r), ref[r])
		}
		out[u] = d
	}
	return out
}

func absDiff(a, b core.Rating) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// Distance 计算两行之间的 L1 距离（对称、非负、自身为零）。
func Distance(m *Matrix, userA, userB int64) int {
	d := 0
	for _, r := range m.Recipes() {
		d += absDiff(m.Rating(userA, r), m.Rating(userB, r))
	}
	return d
}
