package types

// Action is a unit of deferred work produced by a Command's Prepare phase.
// Each action is self-contained and knows how to execute itself.
type Action interface {
	// Execute performs the action
	Execute() error

	// Description returns a human-readable description of the action
	Description() string
}

// Command turns a Context into the list of actions to run
type Command interface {
	// Name returns the subcommand name
	Name() string

	// Prepare inspects the context and the filesystem and returns the
	// actions to execute, in order. It must not modify anything.
	Prepare(ctx Context) ([]Action, error)
}
