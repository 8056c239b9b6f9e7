// Package domain implements the logger import repair: the pure text rules and
// the workflow that applies them to a source tree.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"
	"loggerfix.dev/pkg/loggerfix/internal/adapter"
	"loggerfix.dev/pkg/loggerfix/internal/controller"
	m "loggerfix.dev/pkg/loggerfix/internal/model"
)

// ErrFixesPending is returned by Check when at least one file needs fixing.
var ErrFixesPending = errors.New("files need fixing")

// DefaultRoot is the directory scanned when no root is configured.
const DefaultRoot = "src"

// DefaultExtensions are the source extensions scanned, in pattern order.
var DefaultExtensions = []string{".ts", ".tsx"}

const (
	defaultParallel = 4
	diffContext     = 3
)

// ScanArgs selects the candidate files and the logger module to repair.
type ScanArgs struct {
	Root       m.Path
	Extensions []string
	Module     string
}

// FixArgs holds the arguments of a fix run.
type FixArgs struct {
	ScanArgs
}

// CheckArgs holds the arguments of a read-only check run.
type CheckArgs struct {
	ScanArgs
	Parallel int
	Diff     bool
	Format   controller.ReportFormat
}

// Workflow runs the repair over a source tree.
type Workflow interface {
	// Discover returns the candidate paths, one glob per extension,
	// concatenated in extension order without deduplication.
	Discover(ctx context.Context, args ScanArgs) ([]m.Path, error)
	// Fix rewrites every malformed candidate in place, one file at a time,
	// and returns the number of files rewritten.
	Fix(ctx context.Context, args FixArgs) (int, error)
	// Check reports the malformed candidates without writing anything.
	Check(ctx context.Context, args CheckArgs) ([]m.Finding, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	controller.UI
}

// NewWorkflow creates a Workflow backed by the given filesystem and UI.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
	}
}

// Patterns builds the glob patterns for root and extensions.
func Patterns(root m.Path, extensions []string) []string {
	if root == "" {
		root = DefaultRoot
	}

	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	base := filepath.ToSlash(string(root))
	patterns := make([]string, 0, len(extensions))

	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		patterns = append(patterns, path.Join(base, "**", "*"+ext))
	}

	return patterns
}

func (w *workflow) Discover(ctx context.Context, args ScanArgs) ([]m.Path, error) {
	var paths []m.Path

	for _, pattern := range Patterns(args.Root, args.Extensions) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		matched, err := w.Glob(pattern)
		if err != nil {
			slog.Error("Failed to discover candidates", "pattern", pattern, "error", err)
			return nil, fmt.Errorf("discover %s: %w", pattern, err)
		}

		paths = append(paths, matched...)
	}

	slog.Debug("discovered candidates", "root", args.Root, "count", len(paths))

	return paths, nil
}

func (w *workflow) Fix(ctx context.Context, args FixArgs) (int, error) {
	rules, err := rulesFor(args.ScanArgs)
	if err != nil {
		return 0, err
	}

	paths, err := w.Discover(ctx, args.ScanArgs)
	if err != nil {
		return 0, err
	}

	fixed := 0

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return fixed, err
		}

		ok, err := w.fixFile(ctx, rules, p)
		if err != nil {
			slog.Error("Failed to fix file", "path", p, "fixed_so_far", fixed, "error", err)
			return fixed, err
		}

		if ok {
			fixed++
		}
	}

	slog.Info("fix run complete", "module", rules.Module(), "candidates", len(paths), "fixed", fixed)
	w.DisplayFixedCount(ctx, fixed)

	return fixed, nil
}

func (w *workflow) fixFile(ctx context.Context, rules *Rules, p m.Path) (bool, error) {
	file, err := w.ReadFile(p)
	if err != nil {
		return false, err
	}

	repair, ok := rules.Repair(file.Content)
	if !ok {
		return false, nil
	}

	w.DisplayFixing(ctx, p)

	if err := w.WriteFile(p, repair.Text); err != nil {
		return false, err
	}

	slog.Info("fixed file", "path", p, "removed", repair.Removed, "inserted", repair.Inserted)

	return true, nil
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) ([]m.Finding, error) {
	rules, err := rulesFor(args.ScanArgs)
	if err != nil {
		return nil, err
	}

	paths, err := w.Discover(ctx, args.ScanArgs)
	if err != nil {
		return nil, err
	}

	parallel := args.Parallel
	if parallel <= 0 {
		parallel = defaultParallel
	}

	results := make([]*m.Finding, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			finding, ok, err := w.inspect(rules, p, args.Diff)
			if err != nil {
				return err
			}

			if ok {
				results[i] = &finding
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("Failed to check candidates", "error", err)
		return nil, err
	}

	findings := make([]m.Finding, 0, len(results))

	for _, result := range results {
		if result != nil {
			findings = append(findings, *result)
		}
	}

	if err := w.DisplayFindings(ctx, findings, args.Format); err != nil {
		return findings, fmt.Errorf("display: %w", err)
	}

	if args.Diff && args.Format != controller.FormatYAML {
		if err := w.DisplayDiffs(ctx, findings); err != nil {
			return findings, fmt.Errorf("display diffs: %w", err)
		}
	}

	slog.Info("check run complete", "module", rules.Module(), "candidates", len(paths), "malformed", len(findings))

	if len(findings) > 0 {
		return findings, fmt.Errorf("%d %w", len(findings), ErrFixesPending)
	}

	return findings, nil
}

func (w *workflow) inspect(rules *Rules, p m.Path, withDiff bool) (m.Finding, bool, error) {
	file, err := w.ReadFile(p)
	if err != nil {
		return m.Finding{}, false, err
	}

	repair, ok := rules.Repair(file.Content)
	if !ok {
		return m.Finding{}, false, nil
	}

	finding := m.Finding{Path: p, Removed: repair.Removed, Inserted: repair.Inserted}

	if withDiff {
		diff, err := unifiedDiff(p, file.Content, repair.Text)
		if err != nil {
			return m.Finding{}, false, fmt.Errorf("diff %s: %w", p, err)
		}

		finding.Diff = diff
	}

	return finding, true, nil
}

func unifiedDiff(p m.Path, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(p),
		ToFile:   string(p),
		Context:  diffContext,
	})
}

func rulesFor(args ScanArgs) (*Rules, error) {
	module := args.Module
	if module == "" {
		module = DefaultLoggerModule
	}

	return NewRules(module)
}
