package mimetable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrTypesFile is returned when a mime.types file cannot be read.
var ErrTypesFile = errors.New("mime types file")

// readTypesFile adds the entries of a mime.types file to dst. Later
// entries for the same extension replace earlier ones.
func readTypesFile(path string, dst map[string]string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrTypesFile, path, err)
	}
	defer f.Close()

	n, err := parseTypes(f, dst)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrTypesFile, path, err)
	}
	log.Debugf("Loaded %d extensions from %s", n, path)
	return nil
}

// parseTypes reads "type ext1 ext2 ..." lines in the Apache / Debian
// mime.types layout. Extensions are stored with a leading dot.
func parseTypes(r io.Reader, dst map[string]string) (int, error) {
	n := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		mimeType := fields[0]
		for _, ext := range fields[1:] {
			dst["."+strings.TrimPrefix(ext, ".")] = mimeType
			n++
		}
	}
	return n, scanner.Err()
}
