package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "loggerfix.dev/pkg/loggerfix/internal/model"
)

// SimpleUI implements UI by printing to the cobra command's stdout.
type SimpleUI struct {
	cmd     *cobra.Command
	palette palette
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{
		cmd:     cmd,
		palette: newPalette(cmd.OutOrStdout(), styled),
	}
}

// DisplayFixing prints the path of a file that is being rewritten.
func (s *SimpleUI) DisplayFixing(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Fixing: %s\n", path)
}

// DisplayFixedCount prints the number of rewritten files.
func (s *SimpleUI) DisplayFixedCount(ctx context.Context, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\nFixed %d files\n", count)
}

// DisplayFindings renders check findings in the requested format.
func (s *SimpleUI) DisplayFindings(ctx context.Context, findings []m.Finding, format ReportFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case FormatTable:
		s.printf("%s", renderFindingsTable(findings))
		return nil
	case FormatYAML:
		return s.encodeYAML(findings)
	case FormatText, "":
		for _, finding := range findings {
			s.printf("%s %s\n", s.palette.Warn("Needs fixing:"), finding.Path)
		}

		s.printf("\n%d files need fixing\n", len(findings))

		return nil
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// DisplayDiffs prints each finding's diff, skipping findings without one.
func (s *SimpleUI) DisplayDiffs(ctx context.Context, findings []m.Finding) error {
	for _, finding := range findings {
		if err := ctx.Err(); err != nil {
			return err
		}

		if finding.Diff == "" {
			continue
		}

		s.printf("\n%s\n%s", s.palette.Header("# "+string(finding.Path)), finding.Diff)
	}

	return nil
}

type findingsReport struct {
	Total    int         `yaml:"total"`
	Findings []m.Finding `yaml:"findings"`
}

func (s *SimpleUI) encodeYAML(findings []m.Finding) error {
	if findings == nil {
		findings = []m.Finding{}
	}

	encoder := yaml.NewEncoder(s.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(findingsReport{Total: len(findings), Findings: findings}); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	return encoder.Close()
}

func renderFindingsTable(findings []m.Finding) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Removed", "Inserted"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	removed := 0

	for _, finding := range findings {
		table.Append([]string{
			string(finding.Path),
			fmt.Sprintf("%d", finding.Removed),
			fmt.Sprintf("%t", finding.Inserted),
		})

		removed += finding.Removed
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(findings)),
		fmt.Sprintf("%d", removed),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
