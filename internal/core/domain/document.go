package domain

import "time"

// Document is the content of a file as handed out by the document store.
type Document struct {
	URI       FileIdentity
	Text      string
	LineCount int
	// Digest is an xxhash of Text.
	Digest uint64
}

// FileStat carries the freshness token of a file.
type FileStat struct {
	ModTime time.Time
	Size    int64
}
