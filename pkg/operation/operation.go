// Package operation wires the line splicer to the file system and the user logger
package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/portfix/pkg/log"
	"github.com/walteh/portfix/pkg/splice"
	"github.com/walteh/portfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work the Runner can execute
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Path is the file to fix
	Path string
	// Logger prints user-facing results. Falls back to the logger in the context.
	Logger *log.Logger
}

// 📋 Result is what a fix did
type Result struct {
	Removed bool
	Region  splice.Region
	Before  int // line count before the fix
	After   int // line count after the fix
}

// 🩹 FixOperation removes the duplicated portfolio loop from one file
type FixOperation struct {
	Options
	result *Result
}

// 🏭 NewFixOperation creates a fix operation
func NewFixOperation(opts Options) *FixOperation {
	if opts.Path == "" {
		opts.Path = splice.DefaultPath
	}
	return &FixOperation{Options: opts}
}

// Result returns the outcome of the last Execute, or nil
func (op *FixOperation) Result() *Result {
	return op.result
}

// 🏃 Execute runs load, locate, splice and persist.
// A missing region is reported to the user and is not an error.
func (op *FixOperation) Execute(ctx context.Context) error {
	if op.Logger == nil {
		op.Logger = log.FromContext(ctx)
	}

	logger := zerolog.Ctx(ctx)

	lines, err := splice.Load(ctx, op.Path)
	if err != nil {
		op.Logger.LogFileResult(ctx, status.FileResult{Path: op.Path, IsFailed: true})
		return errors.Errorf("loading file: %w", err)
	}

	region, err := splice.Locate(lines)
	if errors.Is(err, splice.ErrNotFound) {
		logger.Debug().Str("path", op.Path).Int("lines", len(lines)).Msg("no duplicate region")
		op.result = &Result{Before: len(lines), After: len(lines)}
		op.Logger.Error("Could not find the duplicate code")
		return nil
	}
	if err != nil {
		return errors.Errorf("locating duplicate code: %w", err)
	}

	op.Logger.Info(status.FormatRemoval(region.Lines()))

	fixed := splice.Splice(lines, region)

	if logger.GetLevel() <= zerolog.DebugLevel {
		diff, err := status.UnifiedDiff(op.Path, lines, fixed)
		if err != nil {
			logger.Warn().Err(err).Msg("rendering diff")
		} else {
			logger.Debug().Str("diff", diff).Msg("splice preview")
		}
	}

	if err := splice.Persist(ctx, op.Path, fixed); err != nil {
		op.Logger.LogFileResult(ctx, status.FileResult{Path: op.Path, IsFailed: true})
		return errors.Errorf("writing file: %w", err)
	}

	op.result = &Result{
		Removed: true,
		Region:  region,
		Before:  len(lines),
		After:   len(fixed),
	}

	op.Logger.LogFileResult(ctx, status.FileResult{
		Path:       op.Path,
		IsModified: true,
		Removed:    region.Len(),
		Added:      len(splice.Replacement),
	})
	op.Logger.Success("Duplicate portfolio code removed")

	return nil
}
