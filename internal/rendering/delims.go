package rendering

import (
	"fmt"
	"strings"
)

// delimError locates a malformed action by byte offset in the source.
type delimError struct {
	pos int
	msg string
}

// normalizeDelims rewrites every [% ... %] action to the [[ ... ]] pair
// understood by text/template. Plain text and [[ ... ]] actions are copied
// unchanged, so a "%]" in LaTeX text survives. The output has the same
// length as src and byte offsets map one to one.
func normalizeDelims(src string) (string, *delimError) {
	var b strings.Builder
	b.Grow(len(src))

	i := 0
	for i < len(src) {
		open := nextOpener(src, i)
		if open < 0 {
			b.WriteString(src[i:])
			break
		}
		b.WriteString(src[i:open])

		block := strings.HasPrefix(src[open:], BlockStart)
		end, err := actionEnd(src, open, block)
		if err != nil {
			return "", err
		}
		if block {
			b.WriteString(ExprStart)
			b.WriteString(src[open+len(BlockStart) : end])
			b.WriteString(ExprEnd)
		} else {
			b.WriteString(src[open : end+len(ExprEnd)])
		}
		i = end + 2
	}
	return b.String(), nil
}

// nextOpener returns the offset of the first [% or [[ at or after i, or -1.
func nextOpener(src string, i int) int {
	block := strings.Index(src[i:], BlockStart)
	expr := strings.Index(src[i:], ExprStart)
	switch {
	case block < 0 && expr < 0:
		return -1
	case block < 0:
		return i + expr
	case expr < 0:
		return i + block
	default:
		return i + min(block, expr)
	}
}

// actionEnd returns the offset of the closer matching the opener at open.
// Quoted strings and comments inside the action are skipped.
func actionEnd(src string, open int, block bool) (int, *delimError) {
	opener, want, other := ExprStart, ExprEnd, BlockEnd
	if block {
		opener, want, other = BlockStart, BlockEnd, ExprEnd
	}

	for i := open + 2; i < len(src); {
		rest := src[i:]
		switch {
		case strings.HasPrefix(rest, want):
			return i, nil
		case strings.HasPrefix(rest, other):
			return -1, &delimError{
				pos: i,
				msg: fmt.Sprintf("action opened with %q closed with %q", opener, other),
			}
		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				return -1, &delimError{pos: i, msg: "unclosed comment"}
			}
			i += 2 + end + 2
		case rest[0] == '"' || rest[0] == '\'' || rest[0] == '`':
			end, ok := quoteEnd(src, i)
			if !ok {
				return -1, &delimError{pos: i, msg: "unterminated quoted string"}
			}
			i = end
		default:
			i++
		}
	}
	return -1, &delimError{pos: open, msg: fmt.Sprintf("unclosed action %q", opener)}
}

// quoteEnd returns the offset just past the quoted literal starting at i.
// Interpreted strings and character constants end at a newline.
func quoteEnd(src string, i int) (int, bool) {
	q := src[i]
	for j := i + 1; j < len(src); j++ {
		switch c := src[j]; {
		case c == q:
			return j + 1, true
		case q == '`':
		case c == '\\':
			j++
		case c == '\n':
			return 0, false
		}
	}
	return 0, false
}

// lineAt returns the 1-based line containing byte offset pos.
func lineAt(src string, pos int) int {
	return strings.Count(src[:pos], "\n") + 1
}
