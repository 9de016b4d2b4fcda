package fetch

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// SnapshotSource reads raw catalog descriptions from a local text file,
// one entry per line. An optional leading "id<TAB>" prefix carries the
// upstream model ID. Blank lines and "#" comments are skipped.
type SnapshotSource struct {
	path string
}

// NewSnapshotSource creates a source over a snapshot file.
func NewSnapshotSource(path string) *SnapshotSource {
	return &SnapshotSource{path: path}
}

func (s *SnapshotSource) Name() string { return "snapshot" }

func (s *SnapshotSource) Fetch(_ context.Context) ([]Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", s.path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var e Entry
		if id, desc, found := strings.Cut(line, "\t"); found {
			e.ID = strings.TrimSpace(id)
			e.Description = strings.TrimSpace(desc)
		} else {
			e.Description = line
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}
	return entries, nil
}
