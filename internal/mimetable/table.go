// Package mimetable holds the read-only extension to MIME type table.
package mimetable

import (
	"mime"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger replaces the package-level logger.
func SetLogger(l *logrus.Logger) { log = l }

// Options controls which sources make up a Table.
type Options struct {
	// TypesFiles are mime.types files read in order; they take precedence
	// over the host database.
	TypesFiles []string
	// NoHost disables the host database behind mime.TypeByExtension.
	NoHost bool
	// Common replaces CommonTypes as the non-strict layer when non-nil.
	Common map[string]string
}

// Table resolves dotted extensions to MIME types. It is immutable once
// loaded and safe for concurrent use.
type Table struct {
	files  map[string]string
	host   func(ext string) string
	common map[string]string
}

// Load builds a Table from the given options.
func Load(opts Options) (*Table, error) {
	t := &Table{
		files:  make(map[string]string),
		common: CommonTypes,
	}
	for _, path := range opts.TypesFiles {
		if err := readTypesFile(path, t.files); err != nil {
			return nil, err
		}
	}
	if !opts.NoHost {
		t.host = mime.TypeByExtension
	}
	if opts.Common != nil {
		t.common = make(map[string]string, len(opts.Common))
		for ext, typ := range opts.Common {
			t.common[ext] = typ
		}
	}

	log.WithFields(logrus.Fields{
		"types_files": len(opts.TypesFiles),
		"file_exts":   len(t.files),
		"common_exts": len(t.common),
		"host":        t.host != nil,
	}).Debug("MIME table loaded")
	return t, nil
}

// Lookup returns the MIME type registered for ext, which must include its
// leading dot. The strict layer is searched first, exact then lowercased;
// unless strict is set the common layer is searched the same way.
// Returned types carry no parameters.
func (t *Table) Lookup(ext string, strict bool) (string, bool) {
	if ext == "" {
		return "", false
	}
	keys := []string{ext}
	if lower := strings.ToLower(ext); lower != ext {
		keys = append(keys, lower)
	}

	for _, key := range keys {
		if typ, ok := t.files[key]; ok {
			return mediaType(typ), true
		}
		if t.host != nil {
			if typ := t.host(key); typ != "" {
				return mediaType(typ), true
			}
		}
	}
	if strict {
		return "", false
	}
	for _, key := range keys {
		if typ, ok := t.common[key]; ok {
			return mediaType(typ), true
		}
	}
	return "", false
}

// mediaType drops parameters such as "; charset=utf-8" and keeps case.
func mediaType(typ string) string {
	if i := strings.IndexByte(typ, ';'); i >= 0 {
		typ = typ[:i]
	}
	return strings.TrimSpace(typ)
}
