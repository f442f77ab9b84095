package session

import (
	"context"
	"os"
	"strings"
)

// FilePointer keeps the current-user id in a single file on disk, surviving
// restarts. Writes overwrite the whole file; reads trim whitespace so a
// trailing newline from manual edits does not break id lookup.
type FilePointer struct {
	path string
}

func NewFilePointer(path string) *FilePointer {
	return &FilePointer{path: path}
}

func (p *FilePointer) Set(ctx context.Context, userID string) error {
	return os.WriteFile(p.path, []byte(userID), 0o644)
}

func (p *FilePointer) Get(ctx context.Context) (string, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrUnset
		}
		return "", err
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", ErrUnset
	}
	return id, nil
}
