package driver

import (
	"ruse/internal/parser"
	"ruse/internal/source"
	"ruse/internal/syntax"
)

// ParseResult carries the tree for one file.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *syntax.Tree
}

// Parse loads and parses a single file without running lint checks.
func Parse(path string) (*ParseResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	file := fileSet.Get(fileID)
	return &ParseResult{
		FileSet: fileSet,
		File:    file,
		Tree:    parser.ParseFile(file),
	}, nil
}
