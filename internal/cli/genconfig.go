package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/punter/pkg/commands/genconfig"
	"github.com/arthur-debert/punter/pkg/filesystem"
)

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			basePath, _ := cmd.Flags().GetString(flagPath)

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				BasePath:   basePath,
				Write:      write,
				FileSystem: filesystem.NewOS(),
			})
			if err != nil {
				return err
			}

			if !write {
				_, err = fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
				return err
			}

			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			if result.Skipped {
				return renderer.RenderMessage(fmt.Sprintf(MsgConfigExists, "punter.toml"))
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, result.FileWritten))
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)

	return cmd
}
