// Package similarity 实现评价矩阵（透视表）与 L1 距离计算，是推荐核心的相似度引擎。
package similarity

import (
	"sort"

	"github.com/rushteam/fooder/core"
)

// Matrix 是用户×菜谱的评价矩阵（稀疏交互记录的稠密视图）。
//
// 设计原则：
//   - 行 = 记录中出现的用户，列 = 记录中出现的菜谱，都保持升序——
//     升序列配合"首个最大值获胜"的扫描方式，使并列时最小菜谱 ID 胜出，
//     保证每次计算确定性
//   - 缺失单元格的取值为 Unrated (0)
//   - 构建后只读；所有变换（Restrict/With*）返回新矩阵
type Matrix struct {
	users   []int64
	recipes []int64
	cells   map[int64]map[int64]core.Rating // user -> recipe -> rating（只存非零）
}

// Build 将交互记录序列透视为评价矩阵。
// 重复的 (user, recipe) 对导致透视歧义，返回 DataShapeError。
func Build(records []core.InteractionRecord) (*Matrix, error) {
	cells := make(map[int64]map[int64]core.Rating)
	recipeSet := make(map[int64]struct{})
	for _, r := range records {
		row, ok := cells[r.UserID]
		if !ok {
			row = make(map[int64]core.Rating)
			cells[r.UserID] = row
		}
		if _, dup := row[r.RecipeID]; dup {
			return nil, core.NewDataShapeError(r.UserID, r.RecipeID)
		}
		row[r.RecipeID] = r.Rating
		recipeSet[r.RecipeID] = struct{}{}
	}

	users := make([]int64, 0, len(cells))
	for u := range cells {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })

	recipes := make([]int64, 0, len(recipeSet))
	for r := range recipeSet {
		recipes = append(recipes, r)
	}
	sort.Slice(recipes, func(i, j int) bool { return recipes[i] < recipes[j] })

	return &Matrix{users: users, recipes: recipes, cells: cells}, nil
}

// Users 返回矩阵的行索引（升序用户 ID）。调用方只读。
func (m *Matrix) Users() []int64 { return m.users }

// Recipes 返回矩阵的列索引（升序菜谱 ID）。调用方只读。
func (m *Matrix) Recipes() []int64 { return m.recipes }

// NumRows 返回行数。
func (m *Matrix) NumRows() int { return len(m.users) }

// NumCols 返回列数。
func (m *Matrix) NumCols() int { return len(m.recipes) }

// Rating 返回指定单元格的评价；行或列不存在时为 Unrated。
func (m *Matrix) Rating(userID, recipeID int64) core.Rating {
	if row, ok := m.cells[userID]; ok {
		return row[recipeID]
	}
	return core.Unrated
}

// HasUser 判断用户行是否存在。
func (m *Matrix) HasUser(userID int64) bool {
	_, ok := m.cells[userID]
	return ok
}

// WithUsers 将矩阵重索引到给定的用户集合：
// 不在原矩阵中的用户以全零行出现，原矩阵中多余的用户被丢弃。
// 行保持升序。
func (m *Matrix) WithUsers(userIDs []int64) *Matrix {
	users := make([]int64, len(userIDs))
	copy(users, userIDs)
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })

	cells := make(map[int64]map[int64]core.Rating, len(users))
	for _, u := range users {
		if row, ok := m.cells[u]; ok {
			cells[u] = row
		} else {
			cells[u] = map[int64]core.Rating{}
		}
	}
	return &Matrix{users: users, recipes: m.recipes, cells: cells}
}

// WithRecipes 将矩阵的列重索引到给定的菜谱集合：
// 不在原矩阵中的菜谱以全零列出现（pandas 的缺失列填充语义）。
// 列保持升序。
func (m *Matrix) WithRecipes(recipeIDs []int64) *Matrix {
	recipes := make([]int64, len(recipeIDs))
	copy(recipes, recipeIDs)
	sort.Slice(recipes, func(i, j int) bool { return recipes[i] < recipes[j] })

	keep := make(map[int64]struct{}, len(recipes))
	for _, r := range recipes {
		keep[r] = struct{}{}
	}
	cells := make(map[int64]map[int64]core.Rating, len(m.cells))
	for u, row := range m.cells {
		next := make(map[int64]core.Rating, len(row))
		for r, v := range row {
			if _, ok := keep[r]; ok {
				next[r] = v
			}
		}
		cells[u] = next
	}
	return &Matrix{users: m.users, recipes: recipes, cells: cells}
}

// ColumnSum 返回一列评价的合计（邻居驱动推荐的打分依据）。
func (m *Matrix) ColumnSum(recipeID int64) int {
	sum := 0
	for _, u := range m.users {
		sum += int(m.cells[u][recipeID])
	}
	return sum
}

// ColumnUsers 返回一列中评价等于 val 的用户（升序）。
func (m *Matrix) ColumnUsers(recipeID int64, val core.Rating) []int64 {
	out := make([]int64, 0, len(m.users))
	for _, u := range m.users {
		if m.cells[u][recipeID] == val {
			out = append(out, u)
		}
	}
	return out
}

// CountInRow 返回某行中、限定列集合内评价等于 val 的单元格数。
func (m *Matrix) CountInRow(userID int64, recipeIDs []int64, val core.Rating) int {
	row := m.cells[userID]
	n := 0
	for _, r := range recipeIDs {
		if row[r] == val {
			n++
		}
	}
	return n
}
