package similarity

import (
	"testing"

	"github.com/rushteam/fooder/core"
)

func testRecords() []core.InteractionRecord {
	return []core.InteractionRecord{
		{UserID: 2, RecipeID: 102, Rating: core.Like},
		{UserID: 1, RecipeID: 101, Rating: core.Like},
		{UserID: 3, RecipeID: 103, Rating: core.Dislike},
		{UserID: 4, RecipeID: 102, Rating: core.Like},
		{UserID: 4, RecipeID: 103, Rating: core.Like},
	}
}

func TestBuild(t *testing.T) {
	m, err := Build(testRecords())
	if err != nil {
		t.Fatalf("Build = %v", err)
	}

	// 行列都必须升序，与输入顺序无关
	wantUsers := []int64{1, 2, 3, 4}
	if got := m.Users(); !equalInt64s(got, wantUsers) {
		t.Errorf("Users = %v, want %v", got, wantUsers)
	}
	wantRecipes := []int64{101, 102, 103}
	if got := m.Recipes(); !equalInt64s(got, wantRecipes) {
		t.Errorf("Recipes = %v, want %v", got, wantRecipes)
	}

	tests := []struct {
		user, recipe int64
		want         core.Rating
	}{
		{1, 101, core.Like},
		{3, 103, core.Dislike},
		{4, 103, core.Like},
		{1, 102, core.Unrated}, // 缺失单元格
		{9, 101, core.Unrated}, // 行不存在
	}
	for _, tt := range tests {
		if got := m.Rating(tt.user, tt.recipe); got != tt.want {
			t.Errorf("Rating(%d, %d) = %d, want %d", tt.user, tt.recipe, got, tt.want)
		}
	}
}

func TestBuild_DuplicatePair(t *testing.T) {
	records := []core.InteractionRecord{
		{UserID: 1, RecipeID: 101, Rating: core.Like},
		{UserID: 1, RecipeID: 101, Rating: core.Dislike},
	}
	_, err := Build(records)
	if err == nil {
		t.Fatal("Build = nil error on duplicate pair")
	}
	if !core.IsDataShape(err) {
		t.Errorf("IsDataShape(%v) = false", err)
	}
}

func TestBuild_Empty(t *testing.T) {
	m, err := Build(nil)
	if err != nil {
		t.Fatalf("Build(nil) = %v", err)
	}
	if m.NumRows() != 0 || m.NumCols() != 0 {
		t.Errorf("empty matrix = %dx%d, want 0x0", m.NumRows(), m.NumCols())
	}
}

func TestMatrix_WithUsers(t *testing.T) {
	m, _ := Build(testRecords())

	// 9 不在原矩阵中：全零行；2、3 被丢弃
	sub := m.WithUsers([]int64{4, 1, 9})
	if got := sub.Users(); !equalInt64s(got, []int64{1, 4, 9}) {
		t.Errorf("Users = %v, want [1 4 9]", got)
	}
	if got := sub.Rating(9, 102); got != core.Unrated {
		t.Errorf("Rating(9, 102) = %d, want 0", got)
	}
	if got := sub.Rating(4, 102); got != core.Like {
		t.Errorf("Rating(4, 102) = %d, want %d", got, core.Like)
	}
	if sub.HasUser(2) {
		t.Error("HasUser(2) = true after WithUsers")
	}
}

func TestMatrix_WithRecipes(t *testing.T) {
	m, _ := Build(testRecords())

	// 999 是缺失列：全零；101 被丢弃
	sub := m.WithRecipes([]int64{103, 102, 999})
	if got := sub.Recipes(); !equalInt64s(got, []int64{102, 103, 999}) {
		t.Errorf("Recipes = %v, want [102 103 999]", got)
	}
	if got := sub.ColumnSum(999); got != 0 {
		t.Errorf("ColumnSum(999) = %d, want 0", got)
	}
	if got := sub.Rating(1, 101); got != core.Unrated {
		t.Errorf("Rating(1, 101) = %d after drop, want 0", got)
	}
}

func TestMatrix_ColumnSum(t *testing.T) {
	m, _ := Build(testRecords())

	tests := []struct {
		recipe int64
		want   int
	}{
		{101, 1},
		{102, 2},
		{103, 0}, // +1 与 -1 相抵
	}
	for _, tt := range tests {
		if got := m.ColumnSum(tt.recipe); got != tt.want {
			t.Errorf("ColumnSum(%d) = %d, want %d", tt.recipe, got, tt.want)
		}
	}
}

func TestMatrix_ColumnUsers(t *testing.T) {
	m, _ := Build(testRecords())

	if got := m.ColumnUsers(102, core.Like); !equalInt64s(got, []int64{2, 4}) {
		t.Errorf("ColumnUsers(102, Like) = %v, want [2 4]", got)
	}
	if got := m.ColumnUsers(103, core.Dislike); !equalInt64s(got, []int64{3}) {
		t.Errorf("ColumnUsers(103, Dislike) = %v, want [3]", got)
	}
}

func TestMatrix_CountInRow(t *testing.T) {
	m, _ := Build(testRecords())

	if got := m.CountInRow(4, []int64{102, 103}, core.Like); got != 2 {
		t.Errorf("CountInRow(4, [102 103], Like) = %d, want 2", got)
	}
	if got := m.CountInRow(3, []int64{102, 103}, core.Dislike); got != 1 {
		t.Errorf("CountInRow(3, [102 103], Dislike) = %d, want 1", got)
	}
}

func equalInt64s(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
