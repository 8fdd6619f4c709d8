package clipboard

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolution is the outcome of probing the paste and copy candidate lists.
// A zero Paste or Copy means nothing in that list was found.
type Resolution struct {
	Paste       Candidate `json:"paste"`
	Copy        Candidate `json:"copy"`
	Trim        bool      `json:"trim"`
	Unsupported bool      `json:"unsupported"`
}

// Probe looks candidates up on an executable search path.
type Probe struct {
	// Path is the search path, entries separated by os.PathListSeparator.
	Path string
	// Exists reports whether a file exists at the given path.
	Exists func(string) bool
}

// NewProbe returns a Probe over the PATH of the current process.
func NewProbe() *Probe {
	return &Probe{
		Path:   os.Getenv("PATH"),
		Exists: fileExists,
	}
}

// Find returns the first candidate that exists, either as a path of its own
// or inside one of the search path directories.
func (p *Probe) Find(candidates []Candidate) (Candidate, bool) {
	for _, c := range candidates {
		if p.onPath(c.Name) {
			return c, true
		}
	}
	return Candidate{}, false
}

// Resolve probes paste and copy independently. The two halves may land on
// different utilities, in which case Trim is set.
func (p *Probe) Resolve(pasteList, copyList []Candidate) Resolution {
	pc, _ := p.Find(pasteList)
	cc, _ := p.Find(copyList)

	return Resolution{
		Paste:       pc,
		Copy:        cc,
		Trim:        pc.Name != cc.Name,
		Unsupported: pc.IsZero() || cc.IsZero(),
	}
}

func (p *Probe) onPath(name string) bool {
	if name == "" {
		return false
	}

	exists := p.Exists
	if exists == nil {
		exists = fileExists
	}

	if exists(name) {
		return true
	}

	for _, dir := range strings.Split(p.Path, string(os.PathListSeparator)) {
		if exists(filepath.Join(dir, name)) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
