package main

import (
	"fmt"
	"io"
	"os"

	"github.com/druvisc/solid-abstract-syntax-tree/internal/tree"
)

func printTree(stdout io.Writer, stderr io.Writer) error {
	node, err := tree.Build()
	if err != nil {
		return fmt.Errorf("failed to build tree: %w", err)
	}

	report, err := tree.Check(node, tree.WantValue, tree.WantRendered)
	if err != nil {
		fmt.Fprintln(stderr, err)
	}

	return tree.WriteJSON(stdout, report)
}

func main() {
	if len(os.Args) != 1 {
		fmt.Println("Usage: print-tree")
		os.Exit(1)
	}

	err := printTree(os.Stdout, os.Stderr)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
