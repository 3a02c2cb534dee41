package graph

import (
	"strings"
	"testing"

	"github.com/rushteam/fooder/core"
)

func mainTable() *core.InteractionTable {
	return core.NewInteractionTable(core.DishTypeMain, []core.InteractionRecord{
		{UserID: 1, RecipeID: 101, Rating: core.Like},
		{UserID: 2, RecipeID: 102, Rating: core.Like},
		{UserID: 3, RecipeID: 103, Rating: core.Dislike},
		{UserID: 4, RecipeID: 102, Rating: core.Like},
		{UserID: 4, RecipeID: 103, Rating: core.Like},
	})
}

func likedLedger() *core.PreferenceLedger {
	l := core.NewPreferenceLedger()
	l.Add(102, core.Like)
	return l
}

func TestBuild_NoNeighbor(t *testing.T) {
	_, err := Build(likedLedger(), mainTable(), nil, core.Like)
	if err == nil {
		t.Fatal("Build = nil error with empty neighbor set")
	}
	if !core.IsNoNeighbor(err) {
		t.Errorf("IsNoNeighbor(%v) = false", err)
	}
}

func TestBuild_LikePolarity(t *testing.T) {
	g, err := Build(likedLedger(), mainTable(), core.NeighborSet{4}, core.Like)
	if err != nil {
		t.Fatalf("Build = %v", err)
	}

	if g.NumNodes() != 2 {
		t.Errorf("NumNodes = %d, want 2", g.NumNodes())
	}
	if !g.HasNode(YouNode) || !g.HasNode(NeighborNode(4)) {
		t.Errorf("Nodes = %v, want you + user 4", g.Nodes)
	}
	if g.NumEdges() != 1 {
		t.Fatalf("NumEdges = %d, want 1", g.NumEdges())
	}
	labels := g.EdgesBetween(YouNode, NeighborNode(4))
	if len(labels) != 1 || labels[0] != 102 {
		t.Errorf("EdgesBetween = %v, want [102]", labels)
	}
}

func TestBuild_DislikePolarityIsolatesYou(t *testing.T) {
	// 账本里没有不喜欢的菜谱：没有任何边，剪枝后只剩 "you"
	g, err := Build(likedLedger(), mainTable(), core.NeighborSet{4}, core.Dislike)
	if err != nil {
		t.Fatalf("Build = %v", err)
	}
	if g.NumNodes() != 1 || g.Nodes[0] != YouNode {
		t.Errorf("Nodes = %v, want [you]", g.Nodes)
	}
	if g.NumEdges() != 0 {
		t.Errorf("NumEdges = %d, want 0", g.NumEdges())
	}
}

func TestBuild_PairwiseEdges(t *testing.T) {
	// 两个邻居都喜欢 102：组 {user 1, user 2, you} 两两成边，共 3 条
	table := core.NewInteractionTable(core.DishTypeMain, []core.InteractionRecord{
		{UserID: 1, RecipeID: 102, Rating: core.Like},
		{UserID: 2, RecipeID: 102, Rating: core.Like},
	})
	g, err := Build(likedLedger(), table, core.NeighborSet{1, 2}, core.Like)
	if err != nil {
		t.Fatalf("Build = %v", err)
	}
	if g.NumNodes() != 3 {
		t.Errorf("NumNodes = %d, want 3", g.NumNodes())
	}
	if g.NumEdges() != 3 {
		t.Errorf("NumEdges = %d, want 3", g.NumEdges())
	}
	if labels := g.EdgesBetween(NeighborNode(1), NeighborNode(2)); len(labels) != 1 {
		t.Errorf("EdgesBetween(user 1, user 2) = %v, want one edge", labels)
	}
}

func TestBuild_PruneDisconnected(t *testing.T) {
	// 邻居 3 与账本的 102 无关：没有任何边连到它，剪枝后被移除
	g, err := Build(likedLedger(), mainTable(), core.NeighborSet{3, 4}, core.Like)
	if err != nil {
		t.Fatalf("Build = %v", err)
	}
	if g.HasNode(NeighborNode(3)) {
		t.Errorf("Nodes = %v, user 3 should be pruned", g.Nodes)
	}
	if !g.HasNode(NeighborNode(4)) {
		t.Errorf("Nodes = %v, user 4 should survive", g.Nodes)
	}
}

func TestBuild_Multigraph(t *testing.T) {
	// 同一对节点共享两道喜欢的菜谱：两条平行边
	table := core.NewInteractionTable(core.DishTypeMain, []core.InteractionRecord{
		{UserID: 1, RecipeID: 102, Rating: core.Like},
		{UserID: 1, RecipeID: 103, Rating: core.Like},
	})
	ledger := core.NewPreferenceLedger()
	ledger.Add(102, core.Like)
	ledger.Add(103, core.Like)

	g, err := Build(ledger, table, core.NeighborSet{1}, core.Like)
	if err != nil {
		t.Fatalf("Build = %v", err)
	}
	labels := g.EdgesBetween(YouNode, NeighborNode(1))
	if len(labels) != 2 {
		t.Fatalf("EdgesBetween = %v, want two parallel edges", labels)
	}
}

func TestMultiGraph_DOT(t *testing.T) {
	g, err := Build(likedLedger(), mainTable(), core.NeighborSet{4}, core.Like)
	if err != nil {
		t.Fatalf("Build = %v", err)
	}
	dot := g.DOT("likes")

	for _, want := range []string{`graph "likes"`, `"you"`, `"user: 4"`, "102"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}
