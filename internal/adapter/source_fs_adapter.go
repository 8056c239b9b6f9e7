// Package adapter contains the filesystem adapter used by the loggerfix workflow.
package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"
	m "loggerfix.dev/pkg/loggerfix/internal/model"
)

// ErrInvalidUTF8 is returned when a candidate file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

const (
	defaultFileMode  = os.FileMode(0o644)
	globSeparator    = '/'
	globMetaChars    = "*?[{"
	recursiveSegment = "**/"
)

// SourceFSAdapter abstracts the filesystem operations the workflow relies on
// when scanning a project. It hides direct `os` access so the workflow can be
// tested against an in-memory filesystem.
type SourceFSAdapter interface {
	// Glob returns the regular files matching pattern in walk order. `**`
	// matches zero or more directories; `*` never crosses a separator.
	// Hidden entries are skipped. Symlinks to regular files are matched by
	// their own path. A missing base directory yields no paths.
	Glob(pattern string) ([]m.Path, error)

	// ReadFile loads a file and validates that it is UTF-8 text.
	ReadFile(path m.Path) (m.File, error)

	// WriteFile overwrites the file at path, keeping its permission bits.
	WriteFile(path m.Path, content string) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter is the afero backed SourceFSAdapter.
type LocalSourceFSAdapter struct {
	fs afero.Fs
}

// NewLocalSourceFSAdapter constructs an adapter over the host filesystem.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return NewSourceFSAdapter(afero.NewOsFs())
}

// NewSourceFSAdapter constructs an adapter over the provided filesystem.
func NewSourceFSAdapter(fs afero.Fs) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: fs}
}

// Glob walks the static prefix of pattern and collects matching files.
func (a *LocalSourceFSAdapter) Glob(pattern string) ([]m.Path, error) {
	pattern = path.Clean(filepath.ToSlash(pattern))

	matchers, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	base := staticPrefix(pattern)
	if _, err := a.fs.Stat(base); err != nil {
		if os.IsNotExist(err) {
			slog.Debug("glob base does not exist", "pattern", pattern, "base", base)
			return nil, nil
		}

		return nil, fmt.Errorf("stat %s: %w", base, err)
	}

	var paths []m.Path

	err = afero.Walk(a.fs, base, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if p != base && strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if !a.isRegularFile(p, info) {
			return nil
		}

		slashed := filepath.ToSlash(p)
		for _, g := range matchers {
			if g.Match(slashed) {
				paths = append(paths, m.Path(p))
				break
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", base, err)
	}

	slog.Debug("glob matched", "pattern", pattern, "count", len(paths))

	return paths, nil
}

// ReadFile loads file contents and rejects anything that is not UTF-8.
func (a *LocalSourceFSAdapter) ReadFile(p m.Path) (m.File, error) {
	data, err := afero.ReadFile(a.fs, string(p))
	if err != nil {
		return m.File{}, fmt.Errorf("read %s: %w", p, err)
	}

	if !utf8.Valid(data) {
		return m.File{}, fmt.Errorf("read %s: %w", p, ErrInvalidUTF8)
	}

	return m.File{Path: p, Content: string(data)}, nil
}

// WriteFile truncates and rewrites the file in place.
func (a *LocalSourceFSAdapter) WriteFile(p m.Path, content string) error {
	perm := defaultFileMode

	info, err := a.FileInfo(p)

	switch {
	case err == nil:
		perm = info.Mode().Perm()
	case !os.IsNotExist(err):
		return fmt.Errorf("stat %s: %w", p, err)
	}

	if err := afero.WriteFile(a.fs, string(p), []byte(content), perm); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}

	return nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(p m.Path) (os.FileInfo, error) {
	return a.fs.Stat(string(p))
}

// isRegularFile reports whether info, as returned by the walk's Lstat, is a
// regular file or a symlink that resolves to one. Directory links are not
// followed.
func (a *LocalSourceFSAdapter) isRegularFile(p string, info os.FileInfo) bool {
	if info.Mode().IsRegular() {
		return true
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}

	target, err := a.FileInfo(m.Path(p))
	if err != nil {
		slog.Debug("skipping unresolved symlink", "path", p, "error", err)
		return false
	}

	return target.Mode().IsRegular()
}

// compilePattern compiles pattern plus every variant where a `**/` segment
// matches zero directories.
func compilePattern(pattern string) ([]glob.Glob, error) {
	variants := expandRecursive(pattern)
	matchers := make([]glob.Glob, 0, len(variants))

	for _, variant := range variants {
		g, err := glob.Compile(variant, globSeparator)
		if err != nil {
			return nil, fmt.Errorf("compile glob %q: %w", variant, err)
		}

		matchers = append(matchers, g)
	}

	return matchers, nil
}

func expandRecursive(pattern string) []string {
	idx := strings.Index(pattern, recursiveSegment)
	if idx < 0 || (idx > 0 && pattern[idx-1] != globSeparator) {
		return []string{pattern}
	}

	head := pattern[:idx+len(recursiveSegment)]
	tail := pattern[idx+len(recursiveSegment):]

	var out []string
	for _, rest := range expandRecursive(tail) {
		out = append(out, head+rest, pattern[:idx]+rest)
	}

	return out
}

// staticPrefix returns the leading directory of pattern that holds no glob
// meta characters.
func staticPrefix(pattern string) string {
	segments := strings.Split(pattern, string(globSeparator))

	var static []string

	for _, segment := range segments[:len(segments)-1] {
		if strings.ContainsAny(segment, globMetaChars) {
			break
		}

		static = append(static, segment)
	}

	if len(static) == 0 {
		return "."
	}

	prefix := strings.Join(static, string(globSeparator))
	if prefix == "" {
		return string(globSeparator)
	}

	return filepath.FromSlash(prefix)
}
