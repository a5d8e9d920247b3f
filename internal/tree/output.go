package tree

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
	"github.com/michael-go/go-jsn/jsn"

	"github.com/druvisc/solid-abstract-syntax-tree/internal/render"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatRepr = "repr"
)

// Write prints report to w in the given format.
func Write(w io.Writer, report Report, format string) error {
	switch format {
	case FormatText:
		WriteText(w, report)
		return nil
	case FormatJSON:
		return WriteJSON(w, report)
	case FormatRepr:
		fmt.Fprintln(w, repr.String(report, repr.Indent("  ")))
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

func WriteText(w io.Writer, r Report) {
	fmt.Fprintf(w, "%s = %s\n", r.Rendered, render.Literal(r.Value))
}

func WriteJSON(w io.Writer, r Report) error {
	json, err := jsn.NewJson(r)
	if err != nil {
		return fmt.Errorf("failed to convert report to json: %w", err)
	}
	fmt.Fprintln(w, json.Pretty())
	return nil
}
