package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/portfix/pkg/log"
	"github.com/walteh/portfix/pkg/operation"
	"github.com/walteh/portfix/pkg/splice"
	"gitlab.com/tozd/go/errors"
)

// Handler holds the flags and output streams for one run
type Handler struct {
	debug   bool
	path    string
	console io.Writer
	logOut  io.Writer
}

// newRootCmd builds the portfix command. It takes no arguments.
func newRootCmd(console io.Writer) *cobra.Command {
	h := &Handler{
		path:    splice.DefaultPath,
		console: console,
		logOut:  os.Stderr,
	}

	cmd := &cobra.Command{
		Use:   "portfix",
		Short: "Remove the duplicated portfolio loop from index.html",
		Long: `portfix edits index.html in the current directory in place.
It finds the old "Portfolio with accordion" block, removes it through the end of
its active.forEach callback, and puts back the corrected listDiv declaration.

A file without the block is left untouched.`,
		Args:          cobra.NoArgs,
		Version:       GetVersionInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.Run(cmd.Context())
		},
	}

	cmd.SetVersionTemplate(FormatVersion())
	cmd.PersistentFlags().BoolVarP(&h.debug, "debug", "d", false, "enable debug logging")

	return cmd
}

// setupLogging builds the zerolog logger for this run
func (h *Handler) setupLogging() zerolog.Logger {
	level := zerolog.InfoLevel
	if h.debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: h.logOut}).Level(level).With().Timestamp().Logger()
}

// Run fixes the file at h.path
func (h *Handler) Run(ctx context.Context) error {
	zlog := h.setupLogging()
	ctx = zlog.WithContext(ctx)

	userLogger := log.New(h.console, zlog)
	ctx = log.NewContext(ctx, userLogger)

	userLogger.Header("removing duplicate portfolio code")

	runner := operation.NewRunner(&zlog)
	op := operation.NewFixOperation(operation.Options{
		Path: h.path,
	})

	if err := runner.Run(ctx, op); err != nil {
		userLogger.Errorf("%v", err)
		return errors.Errorf("fixing %s: %w", h.path, err)
	}

	return nil
}
