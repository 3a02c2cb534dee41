package core

import (
	"math/rand"
	"sort"
)

// InteractionRecord 是一条静态的用户-菜谱交互：谁对哪道菜谱给出了什么评价。
// 数据集中 (UserID, RecipeID) 对唯一，由加载方保证；透视时重复会被视为
// DATA_SHAPE 错误。
type InteractionRecord struct {
	UserID   int64
	RecipeID int64
	Rating   Rating
}

// InteractionTable 是单个分区（main 或 dessert）的只读交互表。
//
// 设计原则：
//   - 进程启动时加载一次，之后只读，可在多个会话间安全共享
//   - 所有筛选操作返回新表，不修改原表
//   - 不做去重：记录唯一性是加载方的契约
type InteractionTable struct {
	dish    DishType
	records []InteractionRecord
}

// NewInteractionTable 由记录序列构造只读交互表。记录切片的所有权转移给表，
// 调用方之后不应再修改它。
func NewInteractionTable(dish DishType, records []InteractionRecord) *InteractionTable {
	return &InteractionTable{dish: dish, records: records}
}

// DishType 返回该表所属的分区。
func (t *InteractionTable) DishType() DishType { return t.dish }

// Len 返回记录条数。
func (t *InteractionTable) Len() int { return len(t.records) }

// Records 返回底层记录序列。调用方只读，不得修改。
func (t *InteractionTable) Records() []InteractionRecord { return t.records }

// RecipeIDs 返回表内出现过的全部菜谱 ID，升序去重。
func (t *InteractionTable) RecipeIDs() []int64 {
	return t.uniqueIDs(func(r InteractionRecord) int64 { return r.RecipeID })
}

// UserIDs 返回表内出现过的全部用户 ID，升序去重。
func (t *InteractionTable) UserIDs() []int64 {
	return t.uniqueIDs(func(r InteractionRecord) int64 { return r.UserID })
}

func (t *InteractionTable) uniqueIDs(key func(InteractionRecord) int64) []int64 {
	seen := make(map[int64]struct{}, len(t.records))
	out := make([]int64, 0, len(t.records))
	for _, r := range t.records {
		id := key(r)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FilterRecipes 返回只包含给定菜谱集合的子表。
func (t *InteractionTable) FilterRecipes(recipeIDs map[int64]struct{}) *InteractionTable {
	return t.filter(func(r InteractionRecord) bool {
		_, ok := recipeIDs[r.RecipeID]
		return ok
	})
}

// ExcludeRecipes 返回剔除给定菜谱集合后的子表。
func (t *InteractionTable) ExcludeRecipes(recipeIDs map[int64]struct{}) *InteractionTable {
	return t.filter(func(r InteractionRecord) bool {
		_, ok := recipeIDs[r.RecipeID]
		return !ok
	})
}

// FilterUsers 返回只包含给定用户集合的子表。
func (t *InteractionTable) FilterUsers(userIDs map[int64]struct{}) *InteractionTable {
	return t.filter(func(r InteractionRecord) bool {
		_, ok := userIDs[r.UserID]
		return ok
	})
}

func (t *InteractionTable) filter(keep func(InteractionRecord) bool) *InteractionTable {
	out := make([]InteractionRecord, 0, len(t.records))
	for _, r := range t.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return &InteractionTable{dish: t.dish, records: out}
}

// RandomRecipe 在表内所有菜谱中等概率抽取一个 ID。
// 候选集为升序去重后的菜谱列表，保证同一随机源下结果可复现。
// 空表返回 (0, false)。
func (t *InteractionTable) RandomRecipe(rng *rand.Rand) (int64, bool) {
	ids := t.RecipeIDs()
	if len(ids) == 0 {
		return 0, false
	}
	return ids[rng.Intn(len(ids))], true
}
