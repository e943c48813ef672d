// Package driver wires file loading, parsing, linting, and caching
// into the operations the CLI exposes.
package driver

import (
	"github.com/hashicorp/go-hclog"

	"ruse/internal/diag"
	"ruse/internal/lint"
	"ruse/internal/parser"
	"ruse/internal/source"
	"ruse/internal/syntax"
)

// DiagnoseOptions configures a diagnose run.
type DiagnoseOptions struct {
	// MaxDiagnostics caps the bag; 0 means unbounded.
	MaxDiagnostics int
	// Checks defaults to lint.Default when nil.
	Checks []lint.Check
	// Cache, when set, serves unchanged files from disk. Cached
	// entries carry no fixes, so fix runs bypass the cache.
	Cache *DiskCache
	// Logger defaults to a null logger.
	Logger hclog.Logger
	// Events, when set, receives per-file progress from DiagnoseDir.
	// The channel is closed when the run finishes.
	Events chan<- FileEvent
}

func (o *DiagnoseOptions) emit(ev FileEvent) {
	if o.Events != nil {
		o.Events <- ev
	}
}

func (o *DiagnoseOptions) checks() []lint.Check {
	if o.Checks == nil {
		return lint.Default()
	}
	return o.Checks
}

func (o *DiagnoseOptions) logger() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

// DiagnoseResult is the outcome for a single file.
type DiagnoseResult struct {
	FileSet   *source.FileSet
	FileID    source.FileID
	Tree      *syntax.Tree // nil on a cache hit
	Bag       *diag.Bag
	FromCache bool
}

// DiagnoseFile loads one file and diagnoses it.
func DiagnoseFile(path string, opts DiagnoseOptions) (*DiagnoseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return diagnoseLoaded(fs, fileID, opts)
}

// DiagnoseSource diagnoses in-memory content under the given name.
// Virtual files never hit the cache.
func DiagnoseSource(name string, content []byte, opts DiagnoseOptions) (*DiagnoseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return diagnoseLoaded(fs, fileID, opts)
}

func diagnoseLoaded(fs *source.FileSet, fileID source.FileID, opts DiagnoseOptions) (*DiagnoseResult, error) {
	file := fs.Get(fileID)
	log := opts.logger()

	if opts.Cache != nil && file.Flags&source.FileVirtual == 0 {
		if ds, ok := opts.Cache.Lookup(file); ok {
			log.Debug("cache hit", "path", file.Path)
			bag := diag.NewBag(opts.MaxDiagnostics)
			bag.AddAll(ds)
			return &DiagnoseResult{
				FileSet:   fs,
				FileID:    fileID,
				Bag:       bag,
				FromCache: true,
			}, nil
		}
	}

	tree := parser.ParseFile(file)
	ds := lint.Diagnostics(tree, opts.checks())
	log.Debug("diagnosed", "path", file.Path, "nodes", tree.Len(), "findings", len(ds))

	if opts.Cache != nil && file.Flags&source.FileVirtual == 0 {
		if err := opts.Cache.Store(file, ds); err != nil {
			log.Warn("cache store failed", "path", file.Path, "error", err)
		}
	}

	bag := diag.NewBag(opts.MaxDiagnostics)
	bag.AddAll(ds)
	return &DiagnoseResult{
		FileSet: fs,
		FileID:  fileID,
		Tree:    tree,
		Bag:     bag,
	}, nil
}
