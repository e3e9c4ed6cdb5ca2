package textfmt

import "strings"

// FormatForMarkdown keeps blank-line paragraph breaks visible in markdown renderers
// that collapse consecutive empty lines.
func FormatForMarkdown(text string) string {
	return strings.ReplaceAll(text, "\n\n", "\n\n&nbsp;\n\n")
}
