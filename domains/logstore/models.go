package logstore

import "time"

// LogFile is one discovered log file. Identity is the path; the file
// is discovered fresh on every scan and never written by this system.
type LogFile struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// Record is the parsed view of one log file. Exactly one of Content
// and Error is populated, depending on whether the read succeeded; a
// Record is an immutable snapshot and is never written back to disk.
type Record struct {
	Filename  string
	Timestamp string
	Size      int64
	Content   string
	Status    Status
	Error     string
}
