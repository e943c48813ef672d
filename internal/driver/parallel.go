package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ruse/internal/diag"
	"ruse/internal/lint"
	"ruse/internal/parser"
	"ruse/internal/source"
	"ruse/internal/syntax"
)

// SourceExt is the file extension the directory walker picks up.
const SourceExt = ".rs"

// DirResult is the outcome of diagnosing a directory tree. Trees is
// indexed by FileID and holds nil for cache hits.
type DirResult struct {
	FileSet *source.FileSet
	FileIDs []source.FileID
	Trees   map[source.FileID]*syntax.Tree
	Bag     *diag.Bag
	Hits    int // files served from cache
}

// DiagnoseDir walks dir for source files, loads them into one
// FileSet, and diagnoses them in parallel. File loading stays serial
// because the FileSet is not synchronized; parsing and linting are
// pure tree reads, so they fan out freely. Results merge in path
// order regardless of completion order.
func DiagnoseDir(ctx context.Context, dir string, opts DiagnoseOptions) (*DirResult, error) {
	if opts.Events != nil {
		defer close(opts.Events)
	}
	paths, err := collectSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	log := opts.logger()
	log.Debug("collected source files", "dir", dir, "count", len(paths))
	for _, p := range paths {
		opts.emit(FileEvent{Path: p, Status: StatusQueued})
	}

	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make([]source.FileID, 0, len(paths))
	for _, p := range paths {
		id, err := fileSet.Load(p)
		if err != nil {
			return nil, err
		}
		fileIDs = append(fileIDs, id)
	}

	type fileOut struct {
		tree  *syntax.Tree
		diags []diag.Diagnostic
		hit   bool
	}
	outs := make([]fileOut, len(fileIDs))
	checks := opts.checks()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, id := range fileIDs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file := fileSet.Get(id)
			if opts.Cache != nil {
				if ds, ok := opts.Cache.Lookup(file); ok {
					outs[i] = fileOut{diags: ds, hit: true}
					opts.emit(FileEvent{Path: file.Path, Status: StatusCached, Findings: len(ds)})
					return nil
				}
			}
			opts.emit(FileEvent{Path: file.Path, Status: StatusParsing})
			tree := parser.ParseFile(file)
			ds := lint.Diagnostics(tree, checks)
			if opts.Cache != nil {
				if err := opts.Cache.Store(file, ds); err != nil {
					log.Warn("cache store failed", "path", file.Path, "error", err)
				}
			}
			outs[i] = fileOut{tree: tree, diags: ds}
			opts.emit(FileEvent{Path: file.Path, Status: StatusDone, Findings: len(ds)})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &DirResult{
		FileSet: fileSet,
		FileIDs: fileIDs,
		Trees:   make(map[source.FileID]*syntax.Tree, len(fileIDs)),
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	for i, id := range fileIDs {
		if outs[i].hit {
			res.Hits++
		} else {
			res.Trees[id] = outs[i].tree
		}
		res.Bag.AddAll(outs[i].diags)
	}
	return res, nil
}

func collectSourceFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == SourceExt {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
