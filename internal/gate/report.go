package gate

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	pathStyle  = color.New(color.FgYellow)
)

// writeRejection prints the operator-facing explanation for a rejected
// push: the offending path, the rationale and the override instructions
func writeRejection(w io.Writer, path string) {
	errorLabel.Fprint(w, "Error:")
	fmt.Fprintln(w, " attempt to add or modify a non-ASCII file name:")
	fmt.Fprintln(w)
	pathStyle.Fprintf(w, "    %s\n", path)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Non-ASCII file names can cause problems for people working on")
	fmt.Fprintln(w, "other platforms. To be portable it is advisable to rename the file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "If you know what you are doing you can disable this check using:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    git config hooks.allownonascii true")
}
