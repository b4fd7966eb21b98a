// Package resolver guesses MIME types from bare file-name extensions.
package resolver

import (
	"path"
	"strings"
)

// Table is the extension lookup the Resolver reads from.
type Table interface {
	Lookup(ext string, strict bool) (string, bool)
}

// suffixMap expands shorthand archive suffixes before lookup.
var suffixMap = map[string]string{
	".svgz": ".svg.gz",
	".tgz":  ".tar.gz",
	".taz":  ".tar.gz",
	".tz":   ".tar.gz",
	".tbz2": ".tar.bz2",
	".txz":  ".tar.xz",
}

// encodingsMap names the content encoding implied by a trailing suffix.
var encodingsMap = map[string]string{
	".gz":  "gzip",
	".Z":   "compress",
	".bz2": "bzip2",
	".xz":  "xz",
	".br":  "br",
}

// Guess is the result of guessing a file name. Either field may be empty.
type Guess struct {
	Type     string
	Encoding string
}

// Resolver maps extensions to MIME types through a Table.
type Resolver struct {
	table  Table
	strict bool
}

// New returns a Resolver. With strict unset, common unregistered types are
// eligible as well as registered ones.
func New(table Table, strict bool) *Resolver {
	return &Resolver{table: table, strict: strict}
}

// Resolve returns the MIME type for a bare extension such as "png".
func (r *Resolver) Resolve(extension string) (string, bool) {
	g := r.Guess("file." + extension)
	return g.Type, g.Type != ""
}

// Guess returns the type and encoding of name. Shorthand suffixes like
// ".tgz" are expanded and a trailing compression suffix is reported as the
// encoding, so "a.tar.gz" guesses as application/x-tar encoded with gzip.
func (r *Resolver) Guess(name string) Guess {
	var g Guess

	base, ext := splitExt(name)
	for {
		full, ok := suffixMap[strings.ToLower(ext)]
		if !ok {
			break
		}
		base, ext = splitExt(base + full)
	}

	if enc, ok := encodingsMap[ext]; ok {
		g.Encoding = enc
	} else if enc, ok := encodingsMap[strings.ToLower(ext)]; ok {
		g.Encoding = enc
	}
	if g.Encoding != "" {
		base, ext = splitExt(base)
	}

	if typ, ok := r.table.Lookup(ext, r.strict); ok {
		g.Type = typ
	}
	return g
}

// splitExt splits p into base and extension. Leading dots of the final
// element do not start an extension: ".profile" has none.
func splitExt(p string) (string, string) {
	ext := path.Ext(p)
	if ext == "" {
		return p, ""
	}
	base := p[:len(p)-len(ext)]
	if strings.TrimLeft(base[strings.LastIndexByte(base, '/')+1:], ".") == "" {
		return p, ""
	}
	return base, ext
}
