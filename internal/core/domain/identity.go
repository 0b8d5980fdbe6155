package domain

import (
	"path/filepath"
	"unique"
)

// FileIdentity is an interned, comparable handle to a concrete file.
// Two identities are equal exactly when they were built from the same canonical path.
// The zero value denotes "no file".
type FileIdentity struct {
	h unique.Handle[string]
}

// NewFileIdentity creates a FileIdentity from a path.
// The path is cleaned but not resolved against the file system; adapters are
// expected to canonicalize (absolute, symlinks evaluated) before calling this.
func NewFileIdentity(path string) FileIdentity {
	return FileIdentity{h: unique.Make(filepath.Clean(path))}
}

// IsZero reports whether the identity refers to no file.
func (id FileIdentity) IsZero() bool {
	return id == FileIdentity{}
}

// Path returns the canonical path, or "" for the zero identity.
func (id FileIdentity) Path() string {
	if id.IsZero() {
		return ""
	}
	return id.h.Value()
}

// Name returns the last path segment.
func (id FileIdentity) Name() string {
	if id.IsZero() {
		return ""
	}
	return filepath.Base(id.h.Value())
}

// Dir returns the directory containing the file.
func (id FileIdentity) Dir() string {
	if id.IsZero() {
		return ""
	}
	return filepath.Dir(id.h.Value())
}

// String implements fmt.Stringer.
func (id FileIdentity) String() string {
	return id.Path()
}

// MarshalText implements encoding.TextMarshaler.
func (id FileIdentity) MarshalText() ([]byte, error) {
	return []byte(id.Path()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *FileIdentity) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*id = FileIdentity{}
		return nil
	}
	*id = NewFileIdentity(string(text))
	return nil
}
