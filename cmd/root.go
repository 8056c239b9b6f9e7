// Package cmd provides the root command and CLI setup for loggerfix.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"loggerfix.dev/pkg/loggerfix/internal/adapter"
	"loggerfix.dev/pkg/loggerfix/internal/controller"
	"loggerfix.dev/pkg/loggerfix/internal/domain"
	m "loggerfix.dev/pkg/loggerfix/internal/model"
)

// fsAdapter is the filesystem every command reads and writes through.
var fsAdapter adapter.SourceFSAdapter = adapter.NewLocalSourceFSAdapter()

const rootLongDescription = `loggerfix repairs source files where an automated refactor inserted
the logger import inside a type-only import block:

  import type {
  import { logger } from '@/core/utils/logger';
    Foo
  } from './types';

Every matching file under the scan root is rewritten so the logger import
becomes a standalone statement placed right before the "import type {" line.
Files without the pattern are never opened for writing.

Run without arguments to fix src/**/*.ts and src/**/*.tsx in place. Commit
your work first: files are overwritten without a backup.`

// rootCmd represents the base command; run on its own it fixes the tree.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "loggerfix",
		Short:        "Move misplaced logger imports out of type-only import blocks",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if configErr != nil {
				slog.Error("Failed to load configuration", "error", configErr)
				return configErr
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := newWorkflow(cmd).Fix(cmd.Context(), domain.FixArgs{ScanArgs: scanArgs()})
			return err
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(rootFlagName, domain.DefaultRoot, "directory scanned for source files")
	bindFlagToConfig(flags.Lookup(rootFlagName), scanRootKey)

	flags.StringSlice(extFlagName, append([]string(nil), domain.DefaultExtensions...), "source file extensions, one glob per extension in order")
	bindFlagToConfig(flags.Lookup(extFlagName), scanExtensionsKey)

	flags.String(moduleFlagName, domain.DefaultLoggerModule, "module path the logger symbol is imported from")
	bindFlagToConfig(flags.Lookup(moduleFlagName), loggerModuleKey)

	flags.String(logFileFlagName, defaultLogFilename, "path of the rotating log file")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolP(verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newWorkflow(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	return domain.NewWorkflow(fsAdapter, ui)
}

func scanArgs() domain.ScanArgs {
	return domain.ScanArgs{
		Root:       m.Path(viper.GetString(scanRootKey)),
		Extensions: parseExtensions(viper.GetStringSlice(scanExtensionsKey)),
		Module:     viper.GetString(loggerModuleKey),
	}
}

// parseExtensions flattens comma separated entries so env and config values
// behave like the repeated flag.
func parseExtensions(values []string) []string {
	extensions := make([]string, 0, len(values))

	for _, value := range values {
		for _, ext := range strings.Split(value, ",") {
			if ext = strings.TrimSpace(ext); ext != "" {
				extensions = append(extensions, ext)
			}
		}
	}

	return extensions
}
