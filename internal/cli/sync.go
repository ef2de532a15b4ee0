package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/punter/pkg/commands"
	"github.com/arthur-debert/punter/pkg/config"
	"github.com/arthur-debert/punter/pkg/filesystem"
	"github.com/arthur-debert/punter/pkg/logging"
	"github.com/arthur-debert/punter/pkg/paths"
	"github.com/arthur-debert/punter/pkg/types"
	"github.com/arthur-debert/punter/pkg/ui"
)

const (
	flagSrc  = "src"
	flagDest = "dest"
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		Example: MsgSyncExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, filesystem.NewOS(), paths.GetHomeDirectory)
		},
	}

	cmd.Flags().StringP(flagSrc, "s", "", MsgFlagSrc)
	cmd.Flags().StringP(flagDest, "d", "", MsgFlagDest)
	_ = cmd.MarkFlagDirname(flagSrc)
	_ = cmd.MarkFlagDirname(flagDest)

	return cmd
}

func runSync(cmd *cobra.Command, fsys filesystem.FS, home paths.HomeFunc) error {
	cli := cliConfigFrom(cmd, string(commands.CommandSync))

	basePath := cli.BasePath
	if basePath == "" {
		basePath = paths.DefaultBasePath
	}

	file, err := config.Load(fsys, basePath, cli.ConfigPath)
	if err != nil {
		return err
	}
	ctx := types.NewContext(basePath, cli, file)

	// The file may raise or lower verbosity set up from the flags alone
	logging.SetLevel(ctx.Args.VerbosityOr(0))

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	syncCmd, err := commands.New(commands.CommandSync, commands.Options{
		FileSystem: fsys,
		Renderer:   renderer,
		Home:       home,
	})
	if err != nil {
		return err
	}

	result, err := commands.Run(syncCmd, ctx)
	if err != nil {
		return err
	}

	return renderer.RenderSummary(ui.Summary{Command: result.Command, Executed: result.Executed})
}
