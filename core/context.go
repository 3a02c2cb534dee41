package core

// NeighborSet 是邻居选择器产出的用户 ID 有序序列（升序）。
// 每次推荐调用重新计算；在首次走通邻居驱动路径之前为空。
type NeighborSet []int64

// Contains 判断用户是否在邻居集中。
func (s NeighborSet) Contains(userID int64) bool {
	for _, id := range s {
		if id == userID {
			return true
		}
	}
	return false
}

// Set 返回集合视图，供表筛选使用。
func (s NeighborSet) Set() map[int64]struct{} {
	out := make(map[int64]struct{}, len(s))
	for _, id := range s {
		out[id] = struct{}{}
	}
	return out
}

// RecommendContext 承载一次推荐调用的会话状态，贯穿整个候选 Pipeline 透传。
//
// Ledger 与 Table 由会话持有：Table 进程内只读共享，Ledger 单会话独占。
// Neighbors 是上一次邻居驱动推荐缓存下来的邻居集，仅作观测用途——
// 推荐计算本身每次都基于 Ledger 的当前状态重新求邻居。
type RecommendContext struct {
	DishType  DishType
	Ledger    *PreferenceLedger
	Table     *InteractionTable
	Neighbors NeighborSet
}
