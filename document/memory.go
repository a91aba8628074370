package document

import (
	"context"
	"io/fs"
	"maps"
	"sync"
)

// MemoryStore keeps documents in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.Mutex
	files map[string]string
}

func NewMemoryStore(files map[string]string) *MemoryStore {
	s := &MemoryStore{files: make(map[string]string, len(files))}
	maps.Copy(s.files, files)
	return s
}

func (s *MemoryStore) Open(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &IOError{Op: "open", Path: path, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.files[path]
	if !ok {
		return "", &IOError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return content, nil
}

func (s *MemoryStore) Save(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.files == nil {
		s.files = make(map[string]string)
	}
	s.files[path] = content
	return nil
}

// Get returns the stored content of path.
func (s *MemoryStore) Get(path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.files[path]
	return content, ok
}
