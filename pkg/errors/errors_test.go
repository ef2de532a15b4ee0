package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/punter/pkg/errors"
)

func TestErrorString(t *testing.T) {
	assert.Equal(t, "[NO_DESTINATION] no destination given",
		errors.New(errors.ErrNoDestination, "no destination given").Error())

	err := errors.Wrapf(fs.ErrNotExist, errors.ErrSourceNotDir, "source %q is not a directory", "/dots")
	assert.Equal(t, `[SOURCE_NOT_DIR] source "/dots" is not a directory: file does not exist`, err.Error())
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrFileAccess, "read"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrFileAccess, "read %s", "x"))
}

func TestDetails(t *testing.T) {
	err := errors.Newf(errors.ErrConfigPath, "invalid config path %q", "/etc").
		WithDetail("path", "/etc")
	wrapped := fmt.Errorf("loading: %w", err)

	assert.Equal(t, map[string]interface{}{"path": "/etc"}, errors.GetErrorDetails(wrapped))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))

	// zero-value errors still accept details
	bare := &errors.PunterError{Code: errors.ErrConfigInvalid}
	assert.Equal(t, 3, bare.WithDetail("line", 3).Details["line"])
}

func TestCodeMatching(t *testing.T) {
	inner := errors.Wrap(fs.ErrPermission, errors.ErrFileAccess, "read punter.toml")
	outer := errors.Wrap(inner, errors.ErrConfigInvalid, "invalid config")
	wrapped := fmt.Errorf("sync: %w", outer)

	t.Run("outermost code wins", func(t *testing.T) {
		assert.True(t, errors.IsErrorCode(wrapped, errors.ErrConfigInvalid))
		assert.False(t, errors.IsErrorCode(wrapped, errors.ErrFileAccess))
		assert.Equal(t, errors.ErrConfigInvalid, errors.GetErrorCode(wrapped))
	})

	t.Run("errors.Is compares codes at any depth", func(t *testing.T) {
		assert.True(t, stderrors.Is(wrapped, errors.New(errors.ErrFileAccess, "")))
		assert.False(t, stderrors.Is(wrapped, errors.New(errors.ErrDestNotDir, "")))
	})

	t.Run("plain errors", func(t *testing.T) {
		plain := stderrors.New("boom")
		assert.False(t, errors.IsErrorCode(plain, errors.ErrActionExecute))
		assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
		assert.False(t, errors.IsErrorCode(nil, errors.ErrUnknown))
	})

	var target *errors.PunterError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "invalid config", target.Message)
}
