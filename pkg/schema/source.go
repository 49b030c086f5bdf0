package schema

import (
	"io/fs"
	"path/filepath"
)

// Source identifies where a record definition document originated so loaders
// can operate on files, fs.FS entries, or in-memory payloads without leaking
// implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindFS     SourceKind = "fs"
	SourceKindInline SourceKind = "inline"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	files fs.FS
	name  string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside files.
func SourceFromFS(files fs.FS, name string) Source {
	return fsSource{files: files, name: name}
}

type inlineSource struct {
	name string
	raw  []byte
}

func (s inlineSource) Location() string { return s.name }
func (s inlineSource) Kind() SourceKind { return SourceKindInline }

// SourceFromBytes wraps an in-memory payload. name is used for error messages
// and format detection (".json" vs ".yaml").
func SourceFromBytes(name string, raw []byte) Source {
	return inlineSource{name: name, raw: append([]byte(nil), raw...)}
}
