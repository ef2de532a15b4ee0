// Package cli builds punter's cobra command tree
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/punter/internal/version"
	"github.com/arthur-debert/punter/pkg/config"
	"github.com/arthur-debert/punter/pkg/logging"
	"github.com/arthur-debert/punter/pkg/topics"
	"github.com/arthur-debert/punter/pkg/ui"
)

// Global flag names
const (
	flagPath    = "path"
	flagConfig  = "config"
	flagVerbose = "verbose"
	flagFormat  = "format"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "punter",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringP(flagPath, "p", "", MsgFlagPath)
	rootCmd.PersistentFlags().StringP(flagConfig, "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().CountVarP(&verbosity, flagVerbose, "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().String(flagFormat, "auto", MsgFlagFormat)

	_ = rootCmd.RegisterFlagCompletionFunc(flagFormat, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagDirname(flagPath)
	_ = rootCmd.MarkPersistentFlagFilename(flagConfig, "toml")

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	opts := topics.Options{Renderer: &topics.PlainRenderer{}}
	if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
		opts.Renderer = topics.NewGlamourRenderer()
	}
	if tm, err := topics.Default(opts); err == nil {
		topics.Install(rootCmd, tm)
		rootCmd.SetHelpCommandGroupID("misc")
	}

	return rootCmd
}

// cliConfigFrom collects the flags the user actually set.
// Flags left at their defaults stay empty so the file config can fill them.
func cliConfigFrom(cmd *cobra.Command, command string) config.CliConfig {
	flags := cmd.Flags()
	cli := config.CliConfig{Command: command}

	if flags.Changed(flagPath) {
		cli.BasePath, _ = flags.GetString(flagPath)
	}
	if flags.Changed(flagConfig) {
		cli.ConfigPath, _ = flags.GetString(flagConfig)
	}
	if flags.Changed(flagVerbose) {
		v, _ := flags.GetCount(flagVerbose)
		cli.Verbosity = &v
	}
	if flags.Changed(flagSrc) {
		cli.Source, _ = flags.GetString(flagSrc)
	}
	if flags.Changed(flagDest) {
		cli.Destination, _ = flags.GetString(flagDest)
	}
	return cli
}

// newRenderer builds the report renderer selected by --format
func newRenderer(cmd *cobra.Command) (ui.Renderer, error) {
	name, _ := cmd.Flags().GetString(flagFormat)
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, fmt.Errorf(MsgErrFormat, err)
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}
