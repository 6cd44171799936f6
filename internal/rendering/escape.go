package rendering

import (
	"fmt"
	"strings"
)

// latexReplacer maps each LaTeX special character to its escaped form.
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX escapes special LaTeX characters in text.
// Templates reach it as the escape function.
func EscapeLaTeX(text any) string {
	var s string
	switch v := text.(type) {
	case nil:
		return ""
	case string:
		s = v
	default:
		s = fmt.Sprint(v)
	}
	return latexReplacer.Replace(s)
}
