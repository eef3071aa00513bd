// audit/file_repository.go
package audit

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileRepository appends entries to a JSON-lines file. It is the default
// backend so a single operator seat works with no cluster at all.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Record(ctx context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	line = append(line, '\n')
	_, err = f.Write(line)
	return err
}

func (r *FileRepository) Query(ctx context.Context, from, to time.Time, userEmail, action string) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			// A torn final line from a crashed run is not worth failing a
			// query over.
			continue
		}
		if e.Timestamp.Before(from) || e.Timestamp.After(to) {
			continue
		}
		if userEmail != "" && e.UserEmail != userEmail {
			continue
		}
		if action != "" && e.Action != action {
			continue
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}
