package clipboard

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForOS(t *testing.T) {
	tests := map[string]Backend{
		"windows": BackendWindows,
		"darwin":  BackendDarwin,
		"linux":   BackendUnix,
		"freebsd": BackendUnix,
		"plan9":   BackendEmpty,
		"js":      BackendEmpty,
	}

	for goos, expected := range tests {
		t.Run(goos, func(t *testing.T) {
			assert.Equal(t, expected, ForOS(goos))
		})
	}
}

func TestNewBackends(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	tests := []struct {
		backend  Backend
		expected Clipboard
	}{
		{BackendUnix, &UnixClipboard{}},
		{BackendDarwin, &DarwinClipboard{}},
		{BackendEmpty, &EmptyClipboard{}},
		{BackendAtotto, &AtottoClipboard{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			c, err := New(Options{Backend: tt.backend})
			require.NoError(t, err)
			assert.IsType(t, tt.expected, c)
		})
	}
}

func TestNewAutoMatchesPlatform(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)

	switch ForOS(runtime.GOOS) {
	case BackendUnix:
		assert.IsType(t, &UnixClipboard{}, c)
	case BackendDarwin:
		assert.IsType(t, &DarwinClipboard{}, c)
	case BackendEmpty:
		assert.IsType(t, &EmptyClipboard{}, c)
	}
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(Options{Backend: "clippy"})
	assert.ErrorIs(t, err, ErrUnsupportedBackend)
}

func TestNewWindowsElsewhere(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("native backend is available on windows")
	}
	_, err := New(Options{Backend: BackendWindows})
	assert.ErrorIs(t, err, ErrUnsupportedBackend)
}

func TestNewUnixPrefersExtraCandidates(t *testing.T) {
	bin := t.TempDir()
	t.Setenv("PATH", bin)
	for _, name := range []string{"my-paste", "my-copy", "xsel"} {
		writeExecutable(t, bin, name)
	}

	c, err := New(Options{
		Backend:         BackendUnix,
		PasteCandidates: []Candidate{{Name: "my-paste", Args: "-p"}},
	})
	require.NoError(t, err)

	res := c.(*UnixClipboard).Resolution()
	assert.Equal(t, Candidate{Name: "my-paste", Args: "-p"}, res.Paste)
	assert.Equal(t, "xsel", res.Copy.Name)
	assert.True(t, res.Trim)
}

func TestSystemIsShared(t *testing.T) {
	assert.Same(t, System(), System())
}

func TestEmptyClipboard(t *testing.T) {
	c := NewEmptyClipboard()

	for _, text := range []string{"", "hello world", "💩☃"} {
		require.NoError(t, c.Write(text))
		got, err := c.Read()
		require.NoError(t, err)
		assert.Equal(t, "", got)

		require.NoError(t, c.WriteContext(context.Background(), text))
		got, err = c.ReadContext(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "", got)
	}
}
