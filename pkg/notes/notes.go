// Package notes persists spoken notes to an append-only log. Entries are
// timestamped lines; nothing is ever rewritten or deleted.
package notes

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultPath is the stock note log location.
const DefaultPath = "data/notes.txt"

// Log is an append-only, timestamped note log.
// Appends are mutex-serialized so concurrent diagnostics never split a line.
type Log struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewLog creates a note log at the given path. An empty path selects
// DefaultPath. The file itself is created lazily on first append.
func NewLog(path string) *Log {
	if path == "" {
		path = DefaultPath
	}
	return &Log{path: path, now: time.Now}
}

// Append writes one timestamped note line, creating the containing
// directory if absent.
func (l *Log) Append(text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("notes: create dir: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("notes: open log: %w", err)
	}

	line := fmt.Sprintf("%s - %s\n", l.now().Format(time.RFC3339), text)
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("notes: write: %w", err)
	}
	return f.Close()
}

// Last returns the last note line, or the empty string when the log does
// not exist yet.
func (l *Log) Last() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("notes: open log: %w", err)
	}
	defer f.Close()

	var last string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			last = line
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("notes: read: %w", err)
	}
	return last, nil
}
