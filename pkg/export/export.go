package export

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/logging"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"
)

const (
	dirMode  fs.FileMode = 0755
	fileMode fs.FileMode = 0644
)

// Options control how files are written
type Options struct {
	DryRun bool
	// Force removes existing files before writing them again
	Force bool
}

// Result lists what an export did
type Result struct {
	Dir     string
	Written []string
	DryRun  bool
}

// Exporter writes planned files below one directory
type Exporter struct {
	logger zerolog.Logger
	dir    string
	opts   Options
}

// New creates an exporter rooted at dir
func New(dir string, opts Options) (*Exporter, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve export directory: %s", dir)
	}
	return &Exporter{
		logger: logging.GetLogger("export"),
		dir:    abs,
		opts:   opts,
	}, nil
}

// Dir returns the absolute export directory
func (e *Exporter) Dir() string {
	return e.dir
}

// Site writes files below dir. It is the one-call form of New and Write.
func Site(ctx context.Context, dir string, files []File, opts Options) (*Result, error) {
	e, err := New(dir, opts)
	if err != nil {
		return nil, err
	}
	return e.Write(ctx, files)
}

// Write executes the files as one pipeline
func (e *Exporter) Write(ctx context.Context, files []File) (*Result, error) {
	done := logging.LogOperationStart(e.logger, "export")
	defer done()

	res := &Result{Dir: e.dir, DryRun: e.opts.DryRun}
	for _, f := range files {
		if err := validatePath(f.Path); err != nil {
			return nil, err
		}
	}

	if e.opts.DryRun {
		e.logger.Info().Str("dir", e.dir).Msg("Dry run mode - files would be written:")
		for _, f := range files {
			e.logger.Info().
				Str("target", filepath.Join(e.dir, f.Path)).
				Int("contentLen", len(f.Content)).
				Msg("Would write file")
			res.Written = append(res.Written, f.Path)
		}
		return res, nil
	}

	if len(files) == 0 {
		e.logger.Info().Msg("No files to export")
		return res, nil
	}

	if err := e.prepareTargets(files); err != nil {
		return nil, err
	}

	pipeline := synthfs.NewMemPipeline()
	for _, op := range e.operations(files) {
		if err := pipeline.Add(op); err != nil {
			return nil, errors.Wrap(err, errors.ErrExport, "failed to add operation to pipeline")
		}
	}

	e.logger.Info().Int("fileCount", len(files)).Str("dir", e.dir).Msg("Exporting site")

	// Paths are relative to the filesystem root, as synthfs expects
	result := synthfs.NewExecutor().Run(ctx, pipeline, filesystem.NewOSFileSystem("/"))
	if result.GetError() != nil {
		e.logger.Error().Err(result.GetError()).Msg("Pipeline execution failed")
		return nil, errors.Wrap(result.GetError(), errors.ErrExport, "failed to write site").
			WithDetail("dir", e.dir)
	}

	for _, f := range files {
		res.Written = append(res.Written, f.Path)
	}
	e.logger.Info().Msg("Site exported")
	return res, nil
}

// prepareTargets refuses to overwrite files unless forced, and removes them
// when forced.
func (e *Exporter) prepareTargets(files []File) error {
	for _, f := range files {
		target := filepath.Join(e.dir, f.Path)
		if _, err := os.Lstat(target); err != nil {
			continue
		}
		if !e.opts.Force {
			return errors.Newf(errors.ErrAlreadyExists, "refusing to overwrite %s", target).
				WithDetail("path", target)
		}
		e.logger.Debug().Str("target", target).Msg("Removing existing file to allow overwrite in force mode")
		if err := os.Remove(target); err != nil {
			return errors.Wrapf(err, errors.ErrExport, "failed to remove %s", target)
		}
	}
	return nil
}

// operations converts the files to synthfs operations, creating missing
// directories first
func (e *Exporter) operations(files []File) []synthfs.Operation {
	var ops []synthfs.Operation
	seen := make(map[string]bool)

	addDir := func(abs string) {
		if seen[abs] {
			return
		}
		seen[abs] = true
		if _, err := os.Stat(abs); err == nil {
			return
		}
		rel := relToRoot(abs)
		createOp := operations.NewCreateDirectoryOperation(core.OperationID("create-dir-"+abs), rel)
		createOp.SetItem(&directoryItem{path: rel, mode: dirMode})
		ops = append(ops, synthfs.NewOperationsPackageAdapter(createOp))
	}

	addDir(e.dir)
	for _, f := range files {
		target := filepath.Join(e.dir, f.Path)
		addDir(filepath.Dir(target))

		rel := relToRoot(target)
		e.logger.Debug().
			Str("target", target).
			Int("contentLen", len(f.Content)).
			Msg("Creating write file operation")

		createOp := operations.NewCreateFileOperation(core.OperationID(fmt.Sprintf("write-file-%s", target)), rel)
		createOp.SetItem(&fileItem{path: rel, content: f.Content, mode: fileMode})
		ops = append(ops, synthfs.NewOperationsPackageAdapter(createOp))
	}
	return ops
}

func relToRoot(abs string) string {
	rel, err := filepath.Rel("/", abs)
	if err != nil {
		return abs
	}
	return rel
}

// fileItem implements the interface needed for file creation
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

// directoryItem implements the interface needed for directory operations
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }
