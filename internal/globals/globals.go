package globals

import (
	"fmt"
	"io"
	"os"
)

var HadError bool
var HadCheckError bool

var Stderr io.Writer = os.Stderr

var ReportError = func(err error) {
	fmt.Fprintf(Stderr, "Error: %v\n", err)
	HadError = true
}

var ReportCheckError = func(err error) {
	fmt.Fprintf(Stderr, "Check failed: %v\n", err)
	HadCheckError = true
}

func Reset() {
	HadError = false
	HadCheckError = false
}
