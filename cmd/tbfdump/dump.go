package main

import (
	"fmt"
	"strings"

	"github.com/electrodiux/tbf/lib/tbfinspect"
)

// printTree writes nodes as an indented text listing to stdout.
func printTree(nodes []tbfinspect.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		if n.Children != nil {
			fmt.Printf("%s%s: %s\n", indent, n.Tag, n.Type)
			printTree(n.Children, depth+1)
			continue
		}
		fmt.Printf("%s%s: %s = %v\n", indent, n.Tag, n.Type, n.Value)
	}
}
