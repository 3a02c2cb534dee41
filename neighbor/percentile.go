// Package neighbor 实现自适应近邻选择（百分位规则）与邻居画像分析。
package neighbor

import "sort"

// 默认的邻居池上下界。
const (
	DefaultMinRows = 5
	DefaultMaxRows = 100
)

// percentile 是距离分布的截断分位：距离不高于 10 分位的用户视为近邻候选。
const percentile = 0.10

// UserDist 是一行候选用户及其与当前账本的 L1 距离。
type UserDist struct {
	UserID int64
	Dist   int
}

// PercentileFilter 按 10 分位规则自适应确定邻居池大小。
//
// 规则（非对称，必须严格保持）：
//   - 距离不高于 10 分位阈值的行数 qualified：
//   - qualified < minRows：target = minRows，行不过滤（由调用方按名次截断）
//   - qualified > maxRows：target = maxRows，行同样不过滤
//   - 其余情况：target = qualified，且只保留距离不高于阈值的行
//   - 空输入：target = minRows，行原样返回
//
// 只有"恰好落在区间内"的分支才真正裁剪行，这决定了邻居被修剪的激进程度。
func PercentileFilter(rows []UserDist, minRows, maxRows int) ([]UserDist, int) {
	if len(rows) == 0 {
		return rows, minRows
	}

	threshold := distPercentile(rows, percentile)
	qualified := 0
	for _, r := range rows {
		if float64(r.Dist) <= threshold {
			qualified++
		}
	}

	switch {
	case qualified < minRows:
		return rows, minRows
	case qualified > maxRows:
		return rows, maxRows
	default:
		filtered := make([]UserDist, 0, qualified)
		for _, r := range rows {
			if float64(r.Dist) <= threshold {
				filtered = append(filtered, r)
			}
		}
		return filtered, qualified
	}
}

// distPercentile 计算距离列的 p 分位（线性插值，与 numpy 的默认行为一致）。
func distPercentile(rows []UserDist, p float64) float64 {
	dists := make([]float64, len(rows))
	for i, r := range rows {
		dists[i] = float64(r.Dist)
	}
	sort.Float64s(dists)

	if len(dists) == 1 {
		return dists[0]
	}
	pos := p * float64(len(dists)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= len(dists) {
		return dists[len(dists)-1]
	}
	return dists[lo] + frac*(dists[lo+1]-dists[lo])
}
