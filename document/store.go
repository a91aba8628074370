// Package document moves editor content between the buffer and storage.
//
// A Store only deals in whole-document strings; the editor owns everything
// else. Failures are reported as *IOError.
package document

import (
	"context"
	"fmt"
)

// Store loads and saves whole documents.
type Store interface {
	Open(ctx context.Context, path string) (string, error)
	Save(ctx context.Context, path, content string) error
}

// IOError describes a failed Store operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("document: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
