package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/druvisc/solid-abstract-syntax-tree/internal/globals"
	"github.com/druvisc/solid-abstract-syntax-tree/internal/tree"
)

var (
	version string = "dev"
	cli     struct {
		Version kong.VersionFlag
		Format  string `help:"Output format (${enum})." enum:"text,json,repr" default:"text"`
	}
)

func run(format string, out io.Writer) {
	node, err := tree.Build()
	if err != nil {
		globals.ReportError(fmt.Errorf("failed to build tree: %w", err))
		return
	}

	report, err := tree.Check(node, tree.WantValue, tree.WantRendered)
	if err != nil {
		globals.ReportCheckError(err)
	}

	if err := tree.Write(out, report, format); err != nil {
		globals.ReportError(err)
	}
}

func exitCode() int {
	if globals.HadError {
		return 65
	} else if globals.HadCheckError {
		return 70
	}
	return 0
}

func main() {
	kong.Parse(&cli,
		kong.Description(`Builds an arithmetic expression tree, then checks its value and rendered form.`),
		kong.Vars{"version": version},
	)

	run(cli.Format, os.Stdout)
	os.Exit(exitCode())
}
