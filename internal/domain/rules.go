package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "loggerfix.dev/pkg/loggerfix/internal/model"
)

// DefaultLoggerModule is the module the logger symbol is imported from.
const DefaultLoggerModule = "@/core/utils/logger"

// RE2 `\s` and `\w` are ASCII only. These classes also cover Unicode
// whitespace (NBSP, U+2028, NEL) and non-ASCII identifiers such as `Ñame`.
const (
	spaceClass = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`
	wordClass  = `[\p{L}\p{N}_]`
)

// followedByWord stands in for a `(?=\s+\w)` lookahead, which RE2 lacks.
var followedByWord = regexp.MustCompile(`^` + spaceClass + `+` + wordClass)

// anchor matches a plain import line directly followed by a type-only import opener.
var anchor = regexp.MustCompile(`(import .+ from .+;\n)(import type \{)`)

// Rules holds the compiled text rules for one logger module path. All methods
// are pure string transformations.
type Rules struct {
	module     string
	malformed  *regexp.Regexp
	misplaced  *regexp.Regexp
	loggerLine string
}

// NewRules compiles the detection and repair rules for module.
func NewRules(module string) (*Rules, error) {
	if strings.TrimSpace(module) == "" {
		return nil, fmt.Errorf("logger module path is empty")
	}

	loggerImport := `import \{ logger \} from ['"]` + regexp.QuoteMeta(module) + `['"];`

	malformed, err := regexp.Compile(`import type \{` + spaceClass + `*\n` + loggerImport)
	if err != nil {
		return nil, fmt.Errorf("compile detection rule: %w", err)
	}

	misplaced, err := regexp.Compile(`\n` + loggerImport)
	if err != nil {
		return nil, fmt.Errorf("compile removal rule: %w", err)
	}

	return &Rules{
		module:     module,
		malformed:  malformed,
		misplaced:  misplaced,
		loggerLine: "import { logger } from '" + module + "';\n",
	}, nil
}

// Module returns the logger module path the rules were compiled for.
func (r *Rules) Module() string {
	return r.module
}

// Detect reports whether text has a logger import directly inside an
// `import type {` block.
func (r *Rules) Detect(text string) bool {
	return r.malformed.MatchString(text)
}

// RemoveMisplaced deletes every logger import line that is followed by more
// import content, and returns the new text with the number of lines removed.
// A logger import at the end of the text is left alone.
func (r *Rules) RemoveMisplaced(text string) (string, int) {
	matches := r.misplaced.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text, 0
	}

	var (
		b       strings.Builder
		last    int
		removed int
	)

	b.Grow(len(text))

	for _, loc := range matches {
		if !followedByWord.MatchString(text[loc[1]:]) {
			continue
		}

		b.WriteString(text[last:loc[0]])
		last = loc[1]
		removed++
	}

	b.WriteString(text[last:])

	return b.String(), removed
}

// InsertLogger inserts a standalone logger import between the first plain
// import line that directly precedes an `import type {` opener and that
// opener. Only the first such anchor in the text is used, even when the file
// has several type-only blocks.
func (r *Rules) InsertLogger(text string) (string, bool) {
	loc := anchor.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, false
	}

	// loc[3] is the end of the plain import line.
	at := loc[3]

	return text[:at] + r.loggerLine + text[at:], true
}

// Repair applies removal then insertion when the text is malformed. The bool
// is false, and the text untouched, when nothing was detected.
func (r *Rules) Repair(text string) (m.Repair, bool) {
	if !r.Detect(text) {
		return m.Repair{Text: text}, false
	}

	fixed, removed := r.RemoveMisplaced(text)
	fixed, inserted := r.InsertLogger(fixed)

	return m.Repair{Text: fixed, Removed: removed, Inserted: inserted}, true
}
