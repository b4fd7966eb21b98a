// Package literal renders resolved MIME types as a Go []string literal.
package literal

import "strings"

const (
	prefix = "[]string{"
	suffix = "}"
)

// Resolver resolves one bare extension.
type Resolver interface {
	Resolve(extension string) (string, bool)
}

// Collect resolves each extension in order and keeps only the ones that
// resolved. Unresolved extensions are skipped silently.
func Collect(r Resolver, extensions []string) []string {
	types := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if typ, ok := r.Resolve(ext); ok {
			types = append(types, typ)
		}
	}
	return types
}

// Render formats types as []string{"a", "b"}. An empty list renders as
// []string{}.
func Render(types []string) string {
	if len(types) == 0 {
		return prefix + suffix
	}

	var b strings.Builder
	b.WriteString(prefix)
	for i, typ := range types {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(typ)
		b.WriteByte('"')
	}
	b.WriteString(suffix)
	return b.String()
}

// Format resolves extensions and renders the result.
func Format(r Resolver, extensions []string) string {
	return Render(Collect(r, extensions))
}
