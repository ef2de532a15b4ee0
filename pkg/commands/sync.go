package commands

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/punter/pkg/errors"
	"github.com/arthur-debert/punter/pkg/filesystem"
	"github.com/arthur-debert/punter/pkg/logging"
	"github.com/arthur-debert/punter/pkg/paths"
	"github.com/arthur-debert/punter/pkg/types"
	"github.com/arthur-debert/punter/pkg/ui"
)

// SyncCommand reports the direct entries of the source directory.
// Configured [files] links are resolved and logged but not applied yet.
type SyncCommand struct {
	fs       filesystem.FS
	renderer ui.Renderer
	home     paths.HomeFunc
}

// Name implements types.Command
func (c *SyncCommand) Name() string {
	return string(CommandSync)
}

// Prepare resolves the sync directories and returns one ReportEntryAction
// per direct entry of the source directory, in directory order
func (c *SyncCommand) Prepare(ctx types.Context) ([]types.Action, error) {
	logger := logging.GetLogger("commands.sync")

	op, err := paths.ResolveSyncOp(c.fs, ctx, c.home)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("source", op.Source).
		Str("destination", op.Destination).
		Msg("Resolved sync directories")

	links, err := paths.ResolveLinks(ctx, op, c.home)
	if err != nil {
		return nil, err
	}
	for _, link := range links {
		logger.Debug().
			Str("name", link.Name).
			Str("source", link.Source).
			Str("destination", link.Destination).
			Msg("Planned link (not applied)")
	}

	entries, err := c.fs.ReadDir(op.Source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read source directory %q", op.Source)
	}

	actions := make([]types.Action, 0, len(entries))
	for _, entry := range entries {
		actions = append(actions, &ReportEntryAction{
			Entry: types.Entry{
				Name: entry.Name(),
				Path: filepath.Join(op.Source, entry.Name()),
				Kind: types.EntryKindOf(entry.Type()),
			},
			renderer: c.renderer,
		})
	}

	return actions, nil
}

// ReportEntryAction writes one source entry to the report
type ReportEntryAction struct {
	Entry    types.Entry
	renderer ui.Renderer
}

// Execute implements types.Action
func (a *ReportEntryAction) Execute() error {
	return a.renderer.RenderEntry(a.Entry)
}

// Description implements types.Action
func (a *ReportEntryAction) Description() string {
	return fmt.Sprintf("Report %s %s", a.Entry.Kind, a.Entry.Path)
}
