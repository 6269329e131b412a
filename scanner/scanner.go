// Package scanner collects the files a directory run should extract from.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
)

// FileInfo describes one file selected for extraction.
type FileInfo struct {
	Path string
	Size int64
}

// Scanner walks a root directory and selects files by extension.
type Scanner struct {
	rootDir    string
	extensions []string
}

// New returns a Scanner rooted at rootDir. With no extensions every file
// matches.
func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan returns every matching file under the root in sorted path order, so
// batch extraction concatenates results deterministically.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if s.isTargetFile(path) {
			files = append(files, FileInfo{
				Path: path,
				Size: info.Size(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
