package logstore

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"go.uber.org/zap"
)

const (
	logSuffix = ".log"

	// successMarker is the summary-line convention of the automation
	// tool producing these logs. It is matched as a raw substring over
	// the whole file, not parsed out of a summary line; existing logs
	// depend on exactly this behavior.
	successMarker = "failed=0"

	timestampLayout = "2006-01-02 15:04:05"
)

// Store discovers and parses log files under a fixed root, one flat
// subdirectory of *.log files per repository. It holds no state
// between calls; every query re-reads the filesystem.
type Store struct {
	l    *zap.Logger
	root string
}

// New creates a store over the given log root.
func New(l *zap.Logger, root string) *Store {
	return &Store{l: l, root: root}
}

// CheckRoot reports whether the log root is currently reachable.
func (s *Store) CheckRoot() error {
	_, err := os.Stat(s.root)
	return err
}

// ListFiles lists a repository's log files newest-first. Producers
// prefix filenames with a timestamp, so reverse-lexicographic order is
// most-recent-first; callers rely on index 0 being the newest run. A
// missing directory is a repository with no runs, not an error, and a
// name rejected by confinement looks exactly the same to the caller.
func (s *Store) ListFiles(ctx context.Context, repoName string) []LogFile {
	if ctx.Err() != nil {
		return nil
	}

	dir, ok := s.repoDir(repoName)
	if !ok {
		s.l.Warn("rejected repository name", zap.String("repo", repoName))
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []LogFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), logSuffix) {
			continue
		}

		file := LogFile{Path: filepath.Join(dir, entry.Name())}
		if info, err := entry.Info(); err == nil {
			file.ModTime = info.ModTime()
			file.Size = info.Size()
		}
		files = append(files, file)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path > files[j].Path
	})

	return files
}

// Parse turns one log file into a Record. It is total: any read
// failure yields a Record with StatusError describing the failure, so
// one unreadable file never aborts the surrounding scan. There is no
// retry; the next request re-attempts the read from scratch.
func (s *Store) Parse(file LogFile) Record {
	content, err := os.ReadFile(file.Path)
	if err != nil {
		return Record{
			Filename: filepath.Base(file.Path),
			Status:   StatusError,
			Error:    err.Error(),
		}
	}

	rec := Record{
		Filename:  filepath.Base(file.Path),
		Timestamp: file.ModTime.Format(timestampLayout),
		Size:      int64(len(content)),
		Content:   string(content),
		Status:    StatusFailed,
	}
	if strings.Contains(rec.Content, successMarker) {
		rec.Status = StatusSuccess
	}

	return rec
}

// Records scans a repository and parses every log file, newest-first.
// Cancelling ctx stops the walk between files; an individual read in
// flight is not interrupted.
func (s *Store) Records(ctx context.Context, repoName string) []Record {
	files := s.ListFiles(ctx, repoName)

	records := make([]Record, 0, len(files))
	for _, file := range files {
		if ctx.Err() != nil {
			break
		}
		records = append(records, s.Parse(file))
	}

	return records
}

// repoDir resolves a repository name to its directory, confined under
// the root. Names carrying ".." elements are rejected outright rather
// than clamped, so a traversal attempt cannot alias another
// repository's directory.
func (s *Store) repoDir(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, part := range strings.Split(filepath.ToSlash(name), "/") {
		if part == ".." {
			return "", false
		}
	}

	dir, err := securejoin.SecureJoin(s.root, name)
	if err != nil {
		return "", false
	}
	return dir, true
}
