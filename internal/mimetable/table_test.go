package mimetable

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTypesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mime.types")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write types file: %v", err)
	}
	return path
}

func TestLookupHost(t *testing.T) {
	table, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tests := []struct {
		ext  string
		want string
	}{
		{".png", "image/png"},
		{".html", "text/html"},
		{".json", "application/json"},
		{".PNG", "image/png"},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			got, ok := table.Lookup(tt.ext, false)
			if !ok {
				t.Fatalf("Lookup(%q) found nothing", tt.ext)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.ext, got, tt.want)
			}
		})
	}
}

func TestLookupMissing(t *testing.T) {
	table, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	for _, ext := range []string{"", ".", ".not-a-real-extension-xyz", "png"} {
		if got, ok := table.Lookup(ext, false); ok {
			t.Errorf("Lookup(%q) = %s, want no result", ext, got)
		}
	}
}

func TestLookupStrictSkipsCommon(t *testing.T) {
	table, err := Load(Options{
		NoHost: true,
		Common: map[string]string{".lmp": "application/x-lamp"},
	})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got, ok := table.Lookup(".lmp", false); !ok || got != "application/x-lamp" {
		t.Errorf("non-strict Lookup(.lmp) = %q, %v", got, ok)
	}
	if got, ok := table.Lookup(".LMP", false); !ok || got != "application/x-lamp" {
		t.Errorf("non-strict Lookup(.LMP) = %q, %v", got, ok)
	}
	if got, ok := table.Lookup(".lmp", true); ok {
		t.Errorf("strict Lookup(.lmp) = %s, want no result", got)
	}
}

func TestLookupTypesFileOverridesHost(t *testing.T) {
	path := writeTypesFile(t, strings.Join([]string{
		"# local overrides",
		"image/x-portable-network png",
		"application/x-lamp   lmp lmpx # trailing comment",
		"",
		"text/x-broken",
		"application/x-lamp2 lmpx",
	}, "\n"))

	table, err := Load(Options{TypesFiles: []string{path}})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tests := []struct {
		ext  string
		want string
	}{
		{".png", "image/x-portable-network"},
		{".lmp", "application/x-lamp"},
		{".lmpx", "application/x-lamp2"},
	}
	for _, tt := range tests {
		got, ok := table.Lookup(tt.ext, true)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%q) = %q, %v, want %s", tt.ext, got, ok, tt.want)
		}
	}
}

func TestLoadMissingTypesFile(t *testing.T) {
	_, err := Load(Options{TypesFiles: []string{filepath.Join(t.TempDir(), "absent.types")}})
	if !errors.Is(err, ErrTypesFile) {
		t.Fatalf("Load() error = %v, want ErrTypesFile", err)
	}
}

func TestMediaType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"text/html; charset=utf-8", "text/html"},
		{"image/png", "image/png"},
		{" text/plain ;", "text/plain"},
		{"application/vnd.ms-excel.sheet.macroEnabled.12", "application/vnd.ms-excel.sheet.macroEnabled.12"},
	}
	for _, tt := range tests {
		if got := mediaType(tt.in); got != tt.want {
			t.Errorf("mediaType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCommonTypesKeys(t *testing.T) {
	for ext, typ := range CommonTypes {
		if !strings.HasPrefix(ext, ".") || strings.ToLower(ext) != ext {
			t.Errorf("CommonTypes key %q must be a lowercase dotted extension", ext)
		}
		if !strings.Contains(typ, "/") {
			t.Errorf("CommonTypes[%q] = %q is not a media type", ext, typ)
		}
	}
}
