// Package records reads and appends transaction records in a flat CSV file.
package records

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tally-dev/tally/internal/model"
)

// StorageUnavailableError reports that the record file could not be opened or read.
type StorageUnavailableError struct {
	Path string
	Err  error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("record file %s unavailable: %v", e.Path, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// Store is a record file on disk.
type Store struct {
	path string
}

// NewStore returns a Store for the file at path. The file need not exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every row of the file. Failures to open, read, or find the
// required header columns are returned as *StorageUnavailableError.
func (s *Store) Load() ([]model.Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, &StorageUnavailableError{Path: s.path, Err: err}
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, &StorageUnavailableError{Path: s.path, Err: err}
	}
	return rows, nil
}

// Init creates the file with only a header. It reports whether the file was
// created; an existing file is left untouched.
func (s *Store) Init() (bool, error) {
	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return false, fmt.Errorf("creating record dir: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return false, fmt.Errorf("creating record file: %w", err)
	}
	defer f.Close()

	if err := WriteRecords(f, nil); err != nil {
		return false, fmt.Errorf("writing record file: %w", err)
	}
	return true, nil
}

// Append adds one record to the end of the file, creating it with a header if
// new. The row follows the column layout of the file's existing header.
func (s *Store) Append(rec model.Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating record dir: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening record file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat record file: %w", err)
	}

	var header []string
	if size := info.Size(); size > 0 {
		if header, err = ReadHeader(io.NewSectionReader(f, 0, size)); err != nil {
			return fmt.Errorf("record file %s: %w", s.path, err)
		}
		if err := terminateLastLine(f, size); err != nil {
			return err
		}
	}
	if header == nil {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		header = strings.Split(Header, ",")
	}

	if err := AppendRecords(f, header, []model.Record{rec}); err != nil {
		return fmt.Errorf("appending record to %s: %w", s.path, err)
	}
	return nil
}

// terminateLastLine writes a newline if a hand-edited file does not end with one,
// so the appended row does not merge into the last existing row.
func terminateLastLine(f *os.File, size int64) error {
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, size-1); err != nil {
		return fmt.Errorf("reading record file: %w", err)
	}
	if last[0] == '\n' {
		return nil
	}
	if _, err := f.Write([]byte("\n")); err != nil {
		return fmt.Errorf("terminating last line: %w", err)
	}
	return nil
}
