// Package renderer turns domain reports into markdown. The markdown is
// rendered to the terminal by the cmd layer; keeping this side pure
// strings makes the output easy to assert on in tests.
package renderer

const placeholder = "—"

// money-like cells that carry no information render as a placeholder
// rather than a misleading $0.00.
func orPlaceholder(s string, zero bool) string {
	if zero {
		return placeholder
	}
	return s
}
