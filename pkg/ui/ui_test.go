package ui_test

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/punter/pkg/errors"
	"github.com/arthur-debert/punter/pkg/types"
	"github.com/arthur-debert/punter/pkg/ui"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"", ui.FormatAuto, false},
		{"auto", ui.FormatAuto, false},
		{"term", ui.FormatTerminal, false},
		{"Terminal", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"yaml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectFormatNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestDetectFormatNotATerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
}

func TestNewRendererAutoWithBufferIsText(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderEntry(types.Entry{Name: "a", Path: "/src/a", Kind: types.EntryFile}))
	assert.Equal(t, "/src/a\n", buf.String())
}

func TestNewRendererUnknownFormat(t *testing.T) {
	_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderEntry(types.Entry{Name: "vimrc", Path: "/src/vimrc", Kind: types.EntryFile}))
	require.NoError(t, r.RenderSummary(ui.Summary{Command: "sync", Executed: []string{"a", "b"}}))
	require.NoError(t, r.RenderError(stderrors.New("boom")))
	require.NoError(t, r.RenderMessage("hello"))

	assert.Equal(t, "/src/vimrc\nsync: 2 action(s) executed\nError: boom\nhello\n", buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderEntry(types.Entry{Name: "nvim", Path: "/src/nvim", Kind: types.EntryDir}))
	require.NoError(t, r.RenderSummary(ui.Summary{Command: "sync", Executed: []string{"a"}}))
	require.NoError(t, r.RenderError(stderrors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, "/src/nvim/")
	assert.Contains(t, out, "1 action(s) executed")
	assert.Contains(t, out, "Error: boom")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderEntry(types.Entry{Name: "vimrc", Path: "/src/vimrc", Kind: types.EntryFile}))
	require.NoError(t, r.RenderSummary(ui.Summary{Command: "sync"}))
	require.NoError(t, r.RenderError(errors.New(errors.ErrNoDestination, "no destination")))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.JSONEq(t, `{"entry":{"name":"vimrc","path":"/src/vimrc","kind":"file"}}`, string(lines[0]))
	assert.JSONEq(t, `{"summary":{"command":"sync","executed":[]}}`, string(lines[1]))
	assert.JSONEq(t, `{"error":"[NO_DESTINATION] no destination","code":"NO_DESTINATION"}`, string(lines[2]))
}
