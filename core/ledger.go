package core

// Preference 是账本中的一条偏好：菜谱 ID 与用户给出的评价。
type Preference struct {
	RecipeID int64
	Rating   Rating
}

// PreferenceLedger 是当前会话用户的偏好账本：recipe_id -> rating 的有序映射，
// 插入顺序即历史顺序（最近的在最后）。
//
// 设计原则：
//   - 一个菜谱最多出现一次：Add 为 upsert，重复 Add 覆盖评价但保留位置
//   - Remove 对不存在的菜谱是硬错误（PREFERENCE_NOT_FOUND），不做静默空操作
//   - 单会话单 goroutine 使用，不加锁
type PreferenceLedger struct {
	order   []int64
	ratings map[int64]Rating
}

// NewPreferenceLedger 创建空账本。
func NewPreferenceLedger() *PreferenceLedger {
	return &PreferenceLedger{ratings: make(map[int64]Rating)}
}

// Len 返回账本内的偏好条数。
func (l *PreferenceLedger) Len() int { return len(l.order) }

// Add 写入或覆盖一条偏好。重复写入相同值是幂等的。
func (l *PreferenceLedger) Add(recipeID int64, rating Rating) {
	if _, ok := l.ratings[recipeID]; !ok {
		l.order = append(l.order, recipeID)
	}
	l.ratings[recipeID] = rating
}

// Remove 删除一条偏好；菜谱不在账本中时返回 PreferenceNotFoundError，
// 且保证不产生任何修改。
func (l *PreferenceLedger) Remove(recipeID int64) error {
	if _, ok := l.ratings[recipeID]; !ok {
		return NewPreferenceNotFoundError(recipeID)
	}
	delete(l.ratings, recipeID)
	for i, id := range l.order {
		if id == recipeID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return nil
}

// Rating 返回某菜谱的评价；不存在时返回 (Unrated, false)。
func (l *PreferenceLedger) Rating(recipeID int64) (Rating, bool) {
	r, ok := l.ratings[recipeID]
	return r, ok
}

// Contains 判断菜谱是否已在账本中。
func (l *PreferenceLedger) Contains(recipeID int64) bool {
	_, ok := l.ratings[recipeID]
	return ok
}

// RecipeIDs 按历史顺序返回账本内的菜谱 ID。
func (l *PreferenceLedger) RecipeIDs() []int64 {
	out := make([]int64, len(l.order))
	copy(out, l.order)
	return out
}

// RecipeIDSet 返回账本内菜谱 ID 的集合视图，供表筛选使用。
func (l *PreferenceLedger) RecipeIDSet() map[int64]struct{} {
	out := make(map[int64]struct{}, len(l.order))
	for _, id := range l.order {
		out[id] = struct{}{}
	}
	return out
}

// Snapshot 按历史顺序返回账本的偏好副本。
func (l *PreferenceLedger) Snapshot() []Preference {
	out := make([]Preference, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, Preference{RecipeID: id, Rating: l.ratings[id]})
	}
	return out
}

// Ratings 返回 recipe_id -> rating 的映射副本，作为相似度计算的参考向量。
func (l *PreferenceLedger) Ratings() map[int64]Rating {
	out := make(map[int64]Rating, len(l.ratings))
	for id, r := range l.ratings {
		out[id] = r
	}
	return out
}

// WithRating 按历史顺序返回评价等于 rating 的菜谱 ID。
func (l *PreferenceLedger) WithRating(rating Rating) []int64 {
	out := make([]int64, 0, len(l.order))
	for _, id := range l.order {
		if l.ratings[id] == rating {
			out = append(out, id)
		}
	}
	return out
}

// Liked 返回被喜欢的菜谱 ID（历史顺序）。
func (l *PreferenceLedger) Liked() []int64 { return l.WithRating(Like) }

// Disliked 返回被不喜欢的菜谱 ID（历史顺序）。
func (l *PreferenceLedger) Disliked() []int64 { return l.WithRating(Dislike) }
