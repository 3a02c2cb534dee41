// Package graph 构建解释推荐所用的邻接多重图：
// 节点是"你"与近邻用户，每条边代表一道双方给出相同评价的菜谱。
package graph

import (
	"fmt"

	"github.com/rushteam/fooder/core"
	"github.com/rushteam/fooder/similarity"
)

// YouNode 是当前会话用户在图中的节点名。
const YouNode = "you"

// NeighborNode 返回邻居用户的节点名。
func NeighborNode(userID int64) string {
	return fmt.Sprintf("user: %d", userID)
}

// Edge 是多重图中的一条边：两个端点对 RecipeID 持有完全相同的目标极性评价。
type Edge struct {
	From     string
	To       string
	RecipeID int64
}

// MultiGraph 是无向多重图：同一对节点间允许多条边（每条对应一道菜谱）。
type MultiGraph struct {
	Nodes []string
	Edges []Edge
}

// NumNodes 返回节点数。
func (g *MultiGraph) NumNodes() int { return len(g.Nodes) }

// NumEdges 返回边数。
func (g *MultiGraph) NumEdges() int { return len(g.Edges) }

// HasNode 判断节点是否存在。
func (g *MultiGraph) HasNode(name string) bool {
	for _, n := range g.Nodes {
		if n == name {
			return true
		}
	}
	return false
}

// EdgesBetween 返回一对节点之间所有边的菜谱标签（无向）。
func (g *MultiGraph) EdgesBetween(a, b string) []int64 {
	out := make([]int64, 0)
	for _, e := range g.Edges {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			out = append(out, e.RecipeID)
		}
	}
	return out
}

// Build 为当前账本与邻居集构建指定极性的邻接图。
//
// 构建规则：
//   - 候选列 = 账本中评价等于 polarity 的菜谱
//   - 每列中评价同为 polarity 的邻居行，连同"你"，两两成边，边标签为该菜谱
//   - 构建完成后只保留与"你"连通的分量；"你"即使孤立也保留，
//     因此完全无边时图退化为单个 "you" 节点
//
// 邻居集为空（尚未经过邻居驱动的推荐）时返回 NoNeighborError。
func Build(ledger *core.PreferenceLedger, table *core.InteractionTable,
	neighbors core.NeighborSet, polarity core.Rating) (*MultiGraph, error) {
	if len(neighbors) == 0 {
		return nil, core.NewNoNeighborError()
	}

	slice := table.FilterUsers(neighbors.Set())
	matrix, err := similarity.Build(slice.Records())
	if err != nil {
		return nil, err
	}
	matrix = matrix.WithUsers(neighbors)

	nodes := make([]string, 0, len(neighbors)+1)
	nodes = append(nodes, YouNode)
	for _, u := range matrix.Users() {
		nodes = append(nodes, NeighborNode(u))
	}

	edges := make([]Edge, 0)
	for _, recipeID := range ledger.WithRating(polarity) {
		// "你"在该列上必然持有目标极性，与所有同极性邻居两两成边。
		group := make([]string, 0, len(neighbors)+1)
		for _, u := range matrix.ColumnUsers(recipeID, polarity) {
			group = append(group, NeighborNode(u))
		}
		group = append(group, YouNode)
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				edges = append(edges, Edge{From: group[i], To: group[j], RecipeID: recipeID})
			}
		}
	}

	return prune(&MultiGraph{Nodes: nodes, Edges: edges}), nil
}

// prune 只保留与 YouNode 连通的分量；YouNode 本身始终保留。
func prune(g *MultiGraph) *MultiGraph {
	adjacent := make(map[string][]string, len(g.Nodes))
	for _, e := range g.Edges {
		adjacent[e.From] = append(adjacent[e.From], e.To)
		adjacent[e.To] = append(adjacent[e.To], e.From)
	}

	reachable := map[string]struct{}{YouNode: {}}
	queue := []string{YouNode}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adjacent[cur] {
			if _, ok := reachable[next]; ok {
				continue
			}
			reachable[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	nodes := make([]string, 0, len(reachable))
	for _, n := range g.Nodes {
		if _, ok := reachable[n]; ok {
			nodes = append(nodes, n)
		}
	}
	edges := make([]Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if _, ok := reachable[e.From]; ok {
			edges = append(edges, e)
		}
	}
	return &MultiGraph{Nodes: nodes, Edges: edges}
}
