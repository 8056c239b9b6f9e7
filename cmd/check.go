package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"loggerfix.dev/pkg/loggerfix/internal/controller"
	"loggerfix.dev/pkg/loggerfix/internal/domain"
)

const checkLongDescription = `Report the files that would be fixed, without modifying anything.

The command exits with a non-zero status when at least one file needs fixing,
which makes it usable as a CI gate. Use --diff to preview the rewrite.`

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report files with a misplaced logger import without fixing them",
		Long:  checkLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := controller.ParseReportFormat(viper.GetString(checkFormatKey))
			if err != nil {
				return err
			}

			_, err = newWorkflow(cmd).Check(cmd.Context(), domain.CheckArgs{
				ScanArgs: scanArgs(),
				Parallel: viper.GetInt(checkParallelKey),
				Diff:     viper.GetBool(checkDiffKey),
				Format:   format,
			})

			return err
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().String(formatFlagName, defaultCheckFormat, fmt.Sprintf("report format, one of %v", controller.ReportFormats))
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), checkFormatKey)

	cmd.Flags().Bool(diffFlagName, defaultCheckDiff, "print a unified diff of each pending fix")
	bindFlagToConfig(cmd.Flags().Lookup(diffFlagName), checkDiffKey)

	cmd.Flags().IntP(parallelFlagName, "p", defaultCheckParallel, "number of files analysed concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), checkParallelKey)
}
