// Package sink stores rendered documents: on the local disk for the
// browser-less client, in an S3-compatible bucket for shared deployments.
package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nvpwelfare/portal/internal/documents"
)

var ErrInvalidName = errors.New("invalid document file name")

// Sink stores a document and returns where it can be found: a path for
// files, a URL for objects.
type Sink interface {
	Put(ctx context.Context, doc documents.Document) (string, error)
}

// FileSink writes documents into a directory, replacing files of the same
// name.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

func (s *FileSink) Put(ctx context.Context, doc documents.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name, err := cleanName(doc.FileName)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".part"
	if err := os.WriteFile(tmp, doc.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// cleanName rejects names that would escape the target directory.
func cleanName(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name, nil
}

// Tee stores every document in all sinks and returns the first sink's
// location. It stops at the first failure.
type Tee []Sink

func (t Tee) Put(ctx context.Context, doc documents.Document) (string, error) {
	var first string
	for i, s := range t {
		loc, err := s.Put(ctx, doc)
		if err != nil {
			return "", err
		}
		if i == 0 {
			first = loc
		}
	}
	return first, nil
}
