package graph

import (
	"fmt"
	"strings"
)

// DOT 将图导出为 Graphviz DOT 文本，供表现层渲染。
// 节点与边的顺序与构建顺序一致，输出确定。
func (g *MultiGraph) DOT(name string) string {
	if name == "" {
		name = "fooder"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "graph %q {\n", name)
	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "\t%q;\n", n)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "\t%q -- %q [label=%q];\n", e.From, e.To, fmt.Sprintf("%d", e.RecipeID))
	}
	b.WriteString("}\n")
	return b.String()
}
