package workflow

import (
	"fmt"
	"sort"
	"strings"

	"clinic-assistant/internal/classifier"
)

// Mermaid renders the graph topology as a Mermaid flowchart for the
// visualize endpoint.
func (g *Graph) Mermaid() string {
	var b strings.Builder
	b.WriteString("graph TD\n")
	b.WriteString("    START([start]) --> classify{classify intent}\n")

	cats := make([]string, 0, len(g.entry))
	for cat := range g.entry {
		cats = append(cats, string(cat))
	}
	sort.Strings(cats)
	for _, cat := range cats {
		fmt.Fprintf(&b, "    classify -->|%s| %s\n", cat, g.entry[classifier.Category(cat)])
	}

	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if to, ok := g.edges[name]; ok && to != End {
			fmt.Fprintf(&b, "    %s --> %s\n", name, to)
			continue
		}
		fmt.Fprintf(&b, "    %s --> END([end])\n", name)
	}

	return b.String()
}
