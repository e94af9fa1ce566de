package iterman

import (
	"io"
	"path/filepath"
	"unicode/utf8"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/port/filesystem"
)

// Dir loads every regular file of a directory into an in-memory list,
// each file's full content being one value.
// Entries are taken in lexicographic order by file name,
// so repeated loads of the same unmodified directory yield the same list on every platform.
// Sub-directories and non-regular files are skipped.
func Dir(fsys filesystem.FileSystem, name string) (*MemoryList[string], error) {
	vs, err := dirItems(fsys, name)
	if err != nil {
		return nil, err
	}
	return Memory(vs), nil
}

// DirRoundRobin loads a directory the same way as Dir,
// but the returned list wraps back to the first file after the last one.
func DirRoundRobin(fsys filesystem.FileSystem, name string) (*MemoryList[string], error) {
	vs, err := dirItems(fsys, name)
	if err != nil {
		return nil, err
	}
	return MemoryRoundRobin(vs), nil
}

func dirItems(fsys filesystem.FileSystem, name string) ([]string, error) {
	entries, err := filesystem.ReadDir(fsys, name)
	if err != nil {
		return nil, err
	}
	vs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(name, entry.Name())
		v, err := fileContent(fsys, path)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func fileContent(fsys filesystem.FileSystem, path string) (_ string, rErr error) {
	file, err := filesystem.Open(fsys, path)
	if err != nil {
		return "", err
	}
	defer errorkit.Finish(&rErr, file.Close)
	bs, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bs) {
		return "", ErrMalformedUTF8.F("%s", path)
	}
	return string(bs), nil
}
