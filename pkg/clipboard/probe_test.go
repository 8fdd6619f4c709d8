package clipboard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFS answers Exists from a fixed set of paths.
func fakeFS(paths ...string) func(string) bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return func(p string) bool { return set[p] }
}

func searchPath(dirs ...string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}

func TestProbeFind(t *testing.T) {
	binA := filepath.Join("opt", "a", "bin")
	binB := filepath.Join("opt", "b", "bin")

	tests := []struct {
		name     string
		exists   []string
		expected Candidate
		found    bool
	}{
		{
			name:     "first candidate wins",
			exists:   []string{filepath.Join(binA, "wl-paste"), filepath.Join(binB, "xsel")},
			expected: Candidate{Name: "wl-paste", Args: "--no-newline"},
			found:    true,
		},
		{
			name:     "later directory still counts",
			exists:   []string{filepath.Join(binB, "xclip")},
			expected: Candidate{Name: "xclip", Args: "-out -selection clipboard"},
			found:    true,
		},
		{
			name:     "name used directly as a path",
			exists:   []string{"termux-clipboard-get"},
			expected: Candidate{Name: "termux-clipboard-get"},
			found:    true,
		},
		{
			name:  "nothing installed",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Probe{Path: searchPath(binA, binB), Exists: fakeFS(tt.exists...)}
			got, ok := p.Find(PasteCandidates())
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestProbeResolve(t *testing.T) {
	bin := filepath.Join("usr", "bin")

	t.Run("matching utility does not trim", func(t *testing.T) {
		p := &Probe{Path: bin, Exists: fakeFS(filepath.Join(bin, "xsel"))}
		res := p.Resolve(PasteCandidates(), CopyCandidates())

		assert.Equal(t, "xsel", res.Paste.Name)
		assert.Equal(t, "--output --clipboard", res.Paste.Args)
		assert.Equal(t, "xsel", res.Copy.Name)
		assert.Equal(t, "--input --clipboard", res.Copy.Args)
		assert.False(t, res.Trim)
		assert.False(t, res.Unsupported)
	})

	t.Run("halves resolve independently", func(t *testing.T) {
		p := &Probe{Path: bin, Exists: fakeFS(filepath.Join(bin, "xclip"), filepath.Join(bin, "wl-copy"))}
		res := p.Resolve(PasteCandidates(), CopyCandidates())

		assert.Equal(t, "xclip", res.Paste.Name)
		assert.Equal(t, "wl-copy", res.Copy.Name)
		assert.True(t, res.Trim)
		assert.False(t, res.Unsupported)
	})

	t.Run("wayland pair has different names", func(t *testing.T) {
		p := &Probe{Path: bin, Exists: fakeFS(filepath.Join(bin, "wl-paste"), filepath.Join(bin, "wl-copy"))}
		res := p.Resolve(PasteCandidates(), CopyCandidates())

		assert.True(t, res.Trim)
	})

	t.Run("missing copy half is unsupported", func(t *testing.T) {
		p := &Probe{Path: bin, Exists: fakeFS(filepath.Join(bin, "wl-paste"))}
		res := p.Resolve(PasteCandidates(), CopyCandidates())

		assert.Equal(t, "wl-paste", res.Paste.Name)
		assert.True(t, res.Copy.IsZero())
		assert.True(t, res.Unsupported)
	})

	t.Run("empty search path", func(t *testing.T) {
		p := &Probe{Path: "", Exists: fakeFS()}
		res := p.Resolve(PasteCandidates(), CopyCandidates())

		assert.True(t, res.Unsupported)
		assert.True(t, res.Paste.IsZero())
		assert.True(t, res.Copy.IsZero())
	})

	t.Run("case matters for trim", func(t *testing.T) {
		p := &Probe{Path: bin, Exists: fakeFS(filepath.Join(bin, "XSEL"), filepath.Join(bin, "xsel"))}
		res := p.Resolve([]Candidate{{Name: "XSEL"}}, []Candidate{{Name: "xsel"}})

		assert.True(t, res.Trim)
	})
}

func TestProbeResolveIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"xclip", "wl-copy"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755))
	}

	p := &Probe{Path: searchPath(t.TempDir(), dir)}
	first := p.Resolve(PasteCandidates(), CopyCandidates())
	second := p.Resolve(PasteCandidates(), CopyCandidates())

	assert.Equal(t, first, second)
	assert.Equal(t, "xclip", first.Paste.Name)
	assert.Equal(t, "wl-copy", first.Copy.Name)
}

func TestProbeIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "wl-paste"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "xsel"), nil, 0o755))

	p := &Probe{Path: dir}
	got, ok := p.Find(PasteCandidates())

	require.True(t, ok)
	assert.Equal(t, "xsel", got.Name)
}

func TestNewProbeReadsPATH(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PATH", dir)

	p := NewProbe()
	assert.Equal(t, dir, p.Path)
}

func TestCandidateTablesAreCopies(t *testing.T) {
	paste := PasteCandidates()
	paste[0].Name = "changed"

	assert.Equal(t, "wl-paste", PasteCandidates()[0].Name)
	assert.Equal(t, "wl-copy", CopyCandidates()[0].Name)
	assert.Len(t, CopyCandidates(), 5)
}

func TestCandidateString(t *testing.T) {
	assert.Equal(t, "wl-copy", Candidate{Name: "wl-copy"}.String())
	assert.Equal(t, "xsel --input --clipboard", Candidate{Name: "xsel", Args: "--input --clipboard"}.String())
}
