package adapter

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	homedir "github.com/mitchellh/go-homedir"

	m "github.com/mouse-blink/testbook/internal/model"
)

// DocumentFinder expands command line arguments into document files.
type DocumentFinder interface {
	// Find returns the files named by roots, without duplicates, in the
	// order they are first found. A root is a file, a directory (its
	// documents are listed) or a directory followed by "/..." (its documents
	// are listed recursively). A leading "~" names the home directory.
	Find(roots []m.Path) ([]m.Path, error)
}

// LocalDocumentFinder is the filesystem implementation of DocumentFinder.
type LocalDocumentFinder struct{}

// NewLocalDocumentFinder constructs a LocalDocumentFinder.
func NewLocalDocumentFinder() *LocalDocumentFinder {
	return &LocalDocumentFinder{}
}

func (f *LocalDocumentFinder) Find(roots []m.Path) ([]m.Path, error) {
	seen := make(map[m.Path]struct{})

	var found []m.Path

	add := func(path string) {
		p := m.Path(filepath.Clean(path))
		if _, ok := seen[p]; ok {
			return
		}

		seen[p] = struct{}{}
		found = append(found, p)
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRoot(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(rootPath)
		if err != nil {
			return nil, errors.Wrapf(err, "find %s", root)
		}

		// Named files are checked whatever their extension.
		if !info.IsDir() {
			add(rootPath)
			continue
		}

		paths, err := walkDocuments(rootPath, recursive)
		if err != nil {
			return nil, errors.Wrapf(err, "find %s", root)
		}

		for _, path := range paths {
			add(path)
		}
	}

	return found, nil
}

// walkDocuments lists the files with the document extension under root in
// lexical order, descending into subdirectories when recursive is set.
func walkDocuments(root string, recursive bool) ([]string, error) {
	var paths []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if !recursive && path != root {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) == m.DocumentExt {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(paths)

	return paths, nil
}

func normalizeRoot(root string) (string, bool, error) {
	root, recursive := strings.CutSuffix(root, "/...")

	root, err := homedir.Expand(root)
	if err != nil {
		return "", false, errors.Wrapf(err, "expand %s", root)
	}

	if root == "" {
		root = "."
	}

	return root, recursive, nil
}
