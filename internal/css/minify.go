package css

import "strings"

// Minify strips comments and collapses whitespace. Declarations keep their
// order; only formatting changes. Good enough for generated sheets, not a
// general-purpose CSS compressor.
func Minify(css string) string {
	css = stripComments(css)

	// Collapse all runs of whitespace to single spaces.
	css = strings.Join(strings.Fields(css), " ")

	// Drop spaces around structural characters.
	for _, pair := range [...][2]string{
		{" {", "{"}, {"{ ", "{"},
		{" }", "}"}, {"} ", "}"},
		{" :", ":"}, {": ", ":"},
		{" ;", ";"}, {"; ", ";"},
		{", ", ","}, {" ,", ","},
	} {
		css = strings.ReplaceAll(css, pair[0], pair[1])
	}
	return css
}

func stripComments(css string) string {
	var b strings.Builder
	b.Grow(len(css))
	for {
		start := strings.Index(css, "/*")
		if start < 0 {
			b.WriteString(css)
			break
		}
		b.WriteString(css[:start])
		end := strings.Index(css[start+2:], "*/")
		if end < 0 {
			// Unterminated comment swallows the rest.
			break
		}
		css = css[start+2+end+2:]
	}
	return b.String()
}
