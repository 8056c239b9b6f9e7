// Package controller provides the console output for loggerfix runs.
package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	m "loggerfix.dev/pkg/loggerfix/internal/model"
)

// ReportFormat selects how check findings are rendered.
type ReportFormat string

// Available ReportFormat values.
const (
	FormatText  ReportFormat = "text"
	FormatTable ReportFormat = "table"
	FormatYAML  ReportFormat = "yaml"
)

// ReportFormats lists the accepted formats in help order.
var ReportFormats = []ReportFormat{FormatText, FormatTable, FormatYAML}

// ParseReportFormat validates a user supplied format name.
func ParseReportFormat(value string) (ReportFormat, error) {
	format := ReportFormat(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range ReportFormats {
		if format == known {
			return format, nil
		}
	}

	return "", fmt.Errorf("unknown report format %q (want one of %v)", value, ReportFormats)
}

// UI defines the interface for reporting fix and check progress.
type UI interface {
	// DisplayFixing announces a file the moment it is rewritten.
	DisplayFixing(ctx context.Context, path m.Path)
	// DisplayFixedCount prints the closing summary of a fix run.
	DisplayFixedCount(ctx context.Context, count int)
	// DisplayFindings renders the result of a read-only check.
	DisplayFindings(ctx context.Context, findings []m.Finding, format ReportFormat) error
	// DisplayDiffs prints the unified diff of each finding.
	DisplayDiffs(ctx context.Context, findings []m.Finding) error
}

// NewUI returns the UI bound to cmd's output. Status labels are styled only
// when the output is a terminal.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	return NewSimpleUI(cmd, isTTY)
}
