package submission

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/oklog/ulid/v2"
)

// storedRecord is one line of the append-only record log.
type storedRecord struct {
	ID string `json:"id"`
	Record
}

// FileRecordStore appends submissions to a JSON-lines file. It stands in
// for the real durable record store behind the same interface.
type FileRecordStore struct {
	mu   sync.Mutex
	path string
}

// NewFileRecordStore creates the store, creating parent directories as
// needed.
func NewFileRecordStore(path string) (*FileRecordStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, &Error{Code: CodeSystemError, Message: "cannot create record directory", Err: err}
	}
	return &FileRecordStore{path: path}, nil
}

// Insert appends the record with a generated ULID and returns the id.
func (f *FileRecordStore) Insert(_ context.Context, record Record) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := ulid.Make().String()
	line, err := json.Marshal(storedRecord{ID: id, Record: record})
	if err != nil {
		return "", &Error{Code: CodeSystemError, Message: "cannot encode record", Err: err}
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return "", &Error{Code: CodeDatabaseError, Message: "cannot open record store", Err: err}
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "%s\n", line); err != nil {
		return "", &Error{Code: CodeDatabaseError, Message: "cannot append record", Err: err}
	}
	return id, nil
}
