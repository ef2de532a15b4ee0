package commands

import (
	"github.com/arthur-debert/punter/pkg/errors"
	"github.com/arthur-debert/punter/pkg/filesystem"
	"github.com/arthur-debert/punter/pkg/logging"
	"github.com/arthur-debert/punter/pkg/paths"
	"github.com/arthur-debert/punter/pkg/types"
	"github.com/arthur-debert/punter/pkg/ui"
)

// CommandType identifies one of punter's commands
type CommandType string

const (
	// CommandSync synchronizes the source directory into the destination
	CommandSync CommandType = "sync"
)

// Options carries the dependencies a command may need
type Options struct {
	FileSystem filesystem.FS
	Renderer   ui.Renderer
	Home       paths.HomeFunc
}

// Result records what a run executed
type Result struct {
	Command  string
	Executed []string
}

// New builds the command for cmdType
func New(cmdType CommandType, opts Options) (types.Command, error) {
	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}
	if opts.Home == nil {
		opts.Home = paths.GetHomeDirectory
	}

	switch cmdType {
	case CommandSync:
		if opts.Renderer == nil {
			return nil, errors.New(errors.ErrInvalidInput, "sync needs a renderer")
		}
		return &SyncCommand{fs: opts.FileSystem, renderer: opts.Renderer, home: opts.Home}, nil
	default:
		return nil, errors.Newf(errors.ErrUnknownCommand, "unknown command %q", cmdType)
	}
}

// Run prepares cmd and executes the resulting actions in order.
// The first failing action aborts the run; actions already executed are
// not undone.
func Run(cmd types.Command, ctx types.Context) (*Result, error) {
	logger := logging.GetLogger("commands")
	done := logging.LogOperationStart(logger, cmd.Name())
	defer done()

	actions, err := cmd.Prepare(ctx)
	if err != nil {
		logger.Debug().Err(err).Str("command", cmd.Name()).Msg("Prepare failed")
		return nil, err
	}

	logger.Info().
		Str("command", cmd.Name()).
		Int("actions", len(actions)).
		Msg("Executing actions")

	result := &Result{Command: cmd.Name(), Executed: make([]string, 0, len(actions))}
	for i, action := range actions {
		logger.Trace().Str("action", action.Description()).Msg("Executing action")
		if err := action.Execute(); err != nil {
			return result, errors.Wrapf(err, errors.ErrActionExecute,
				"action %d of %d failed: %s", i+1, len(actions), action.Description())
		}
		result.Executed = append(result.Executed, action.Description())
	}

	return result, nil
}
