// Package fs provides file-based input and output for course exports.
package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/coursetab"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Ensure Source implements coursetab.DocumentSource at compile time.
var _ coursetab.DocumentSource = (*Source)(nil)

// Source loads HTML exports from files and directories.
type Source struct {
	// Encoding forces the input encoding (e.g. "big5"). When empty the
	// encoding is sniffed from the BOM, meta tags and content.
	Encoding string

	// Extensions lists the file extensions picked up inside directories.
	Extensions []string
}

// NewSource returns a Source reading .htm and .html files.
func NewSource() *Source {
	return &Source{Extensions: []string{".htm", ".html"}}
}

// Discover expands paths into a sorted list of files. Files named directly
// are always included; directories are walked for matching extensions.
func (s *Source) Discover(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, coursetab.Errorf(coursetab.ENOTFOUND, "input %q not found", p)
		} else if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		var found []string
		err = filepath.WalkDir(p, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && s.matches(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", p, err)
		}
		slices.Sort(found)
		files = append(files, found...)
	}
	return files, nil
}

// Documents discovers and reads every file under paths. Files with
// byte-identical content are read once; the first path wins.
func (s *Source) Documents(ctx context.Context, paths []string) ([]*coursetab.Document, error) {
	files, err := s.Discover(paths)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	docs := make([]*coursetab.Document, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := s.ReadDocument(file)
		if err != nil {
			return nil, err
		}
		if seen[doc.Hash] {
			continue
		}
		seen[doc.Hash] = true
		docs = append(docs, doc)
	}
	return docs, nil
}

// ReadDocument reads and decodes a single file. The document source is
// the file's base name.
func (s *Source) ReadDocument(path string) (*coursetab.Document, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, coursetab.Errorf(coursetab.ENOTFOUND, "input %q not found", path)
	} else if err != nil {
		return nil, err
	}

	html, err := Decode(content, s.Encoding)
	if err != nil {
		return nil, err
	}

	return &coursetab.Document{
		Source: filepath.Base(path),
		HTML:   html,
		Hash:   ComputeHash(content),
	}, nil
}

func (s *Source) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(s.Extensions, ext)
}

// Decode converts raw HTML bytes to a UTF-8 string. An empty label sniffs
// the encoding; otherwise label must name a known encoding.
func Decode(content []byte, label string) (string, error) {
	var enc encoding.Encoding
	if label != "" {
		enc, _ = charset.Lookup(label)
		if enc == nil {
			return "", coursetab.Errorf(coursetab.EINVALID, "unknown encoding %q", label)
		}
	} else {
		enc, _, _ = charset.DetermineEncoding(content, "text/html")
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(content), enc.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("failed to decode input: %w", err)
	}
	return strings.TrimPrefix(string(decoded), "\ufeff"), nil
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}
