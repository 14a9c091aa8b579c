// Package printer renders values in aligned name/value columns and frames
// error reports for diagnostic output.
package printer

import (
	"fmt"
	"io"
	"strings"
)

// ColumnWidth is the width of the name column used by SprintVar. Values start
// at this column (plus any indent).
var ColumnWidth = 29

const bannerWidth = 79

// FormatValue renders a single value the way every aligned line does.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case []string:
		return "[" + strings.Join(v, ", ") + "]"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// SprintVarx renders "name:" left-aligned so that the value begins at column
// width, with the line itself indented by indent spaces.
func SprintVarx(name string, value any, indent, width int) string {
	col := width - indent
	if col < 0 {
		col = 0
	}
	return fmt.Sprintf("%*s%-*s%s\n", indent, "", col, name+":", FormatValue(value))
}

// SprintVar is SprintVarx at indent 0 using ColumnWidth.
func SprintVar(name string, value any) string {
	return SprintVarx(name, value, 0, ColumnWidth)
}

// SprintList renders a header line for name followed by one indexed line per
// element, e.g. "names[0]: quiet".
func SprintList(name string, values []string, indent int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%*s%s:\n", indent, "", name)
	for i, v := range values {
		b.WriteString(SprintVarx(fmt.Sprintf("%s[%d]", name, i), v, indent+2, ColumnWidth+indent+2))
	}
	return b.String()
}

// ErrorReport writes msg to w between two banner lines.
func ErrorReport(w io.Writer, msg string) {
	banner := strings.Repeat(":", bannerWidth)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(w, "%s\nERROR: %s%s\n", banner, msg, banner)
}
