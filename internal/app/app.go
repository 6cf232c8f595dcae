// Package app wires the pipe grid engine to its input file, logger and
// output: one call reads a grid file, optionally renders it, and reports
// the sinks connected to the source.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/pipegrid/bfs"
	"github.com/katalvlaran/pipegrid/dfs"
	"github.com/katalvlaran/pipegrid/gridgraph"
	"github.com/katalvlaran/pipegrid/internal/config"
	"github.com/katalvlaran/pipegrid/internal/ctxlog"
	"github.com/katalvlaran/pipegrid/pipefile"
)

// App runs queries against grid files.
type App struct {
	out    io.Writer
	logger *slog.Logger
}

// NewApp returns an App writing results to out and logs to logw, configured
// by cfg's log level and format.
func NewApp(out, logw io.Writer, cfg *config.Config) *App {
	return &App{
		out:    out,
		logger: NewLogger(logw, cfg.LogFormat, cfg.LogLevel),
	}
}

// NewLogger builds a slog.Logger for format ("text" or "json") and level.
// Unknown levels fall back to info.
func NewLogger(w io.Writer, format, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Run executes one query for cfg and prints "connectedSinks = <labels>",
// preceded by the grid when cfg.Render is set.
func (a *App) Run(ctx context.Context, cfg *config.Config) error {
	logger := a.logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)

	labels, err := findConnectedSinks(ctx, cfg.InputPath, cfg.Render, cfg.Traversal, a.out)
	if err != nil {
		logger.Error("Query failed.", "path", cfg.InputPath, "error", err)
		return err
	}
	_, err = fmt.Fprintf(a.out, "connectedSinks = %s\n", labels)
	return err
}

// FindConnectedSinks reads the grid file at path and returns the sorted
// labels of the sinks connected to its source. When render is set the grid
// is drawn to w first. Malformed input aborts with no partial result; a grid
// without a source yields "".
func FindConnectedSinks(ctx context.Context, path string, render bool, w io.Writer) (string, error) {
	return findConnectedSinks(ctx, path, render, "bfs", w)
}

// findConnectedSinks is FindConnectedSinks with the search selectable by
// name; "dfs" uses depth-first search, anything else breadth-first.
func findConnectedSinks(ctx context.Context, path string, render bool, traversal string, w io.Writer) (string, error) {
	logger := ctxlog.FromContext(ctx)

	recs, err := pipefile.ReadFile(path)
	if err != nil {
		return "", err
	}
	logger.Debug("Grid file parsed.", "path", path, "records", len(recs))

	g, err := gridgraph.Build(recs, gridgraph.WithOnOverwrite(func(at gridgraph.Coord, old, new gridgraph.Glyph) {
		logger.Warn("Cell written twice; keeping the later glyph.", "x", at.X, "y", at.Y, "old", string(old), "new", string(new))
	}))
	if err != nil {
		return "", err
	}
	if _, ok := g.Source(); !ok {
		logger.Warn("Grid has no source; no sink can be reached.", "path", path)
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug("Grid built.", "cells", g.Len(), "sinks", len(g.Sinks()), "networks", len(g.Components()))
	}

	if render {
		if err := g.Render(w); err != nil {
			return "", fmt.Errorf("app: render: %w", err)
		}
	}

	var res *gridgraph.SinkResult
	if traversal == "dfs" {
		res, err = dfs.ConnectedSinks(g, dfs.WithContext(ctx))
	} else {
		res, err = bfs.ConnectedSinks(g, bfs.WithContext(ctx))
	}
	if err != nil {
		return "", err
	}
	logger.Debug("Traversal complete.", "traversal", traversal, "visited", res.Visited, "reached", len(res.Coords), "labels", res.Labels)
	return res.Labels, nil
}
