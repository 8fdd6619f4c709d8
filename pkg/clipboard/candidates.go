package clipboard

// Candidate is a clipboard utility and the argument string it is invoked
// with. Args is split on whitespace; no shell is involved.
type Candidate struct {
	Name string `json:"name" yaml:"name"`
	Args string `json:"args" yaml:"args"`
}

// IsZero reports whether c names no command.
func (c Candidate) IsZero() bool {
	return c.Name == ""
}

func (c Candidate) String() string {
	if c.Args == "" {
		return c.Name
	}
	return c.Name + " " + c.Args
}

// Wayland first, then X11, then WSL and Termux.
var (
	pasteCandidates = []Candidate{
		{Name: "wl-paste", Args: "--no-newline"},
		{Name: "xsel", Args: "--output --clipboard"},
		{Name: "xclip", Args: "-out -selection clipboard"},
		{Name: "powershell.exe", Args: "Get-Clipboard"},
		{Name: "termux-clipboard-get"},
	}

	copyCandidates = []Candidate{
		{Name: "wl-copy"},
		{Name: "xsel", Args: "--input --clipboard"},
		{Name: "xclip", Args: "-in -selection clipboard"},
		{Name: "clip.exe"},
		{Name: "termux-clipboard-set"},
	}
)

// PasteCandidates returns a copy of the default paste utilities in priority order.
func PasteCandidates() []Candidate {
	return append([]Candidate(nil), pasteCandidates...)
}

// CopyCandidates returns a copy of the default copy utilities in priority order.
func CopyCandidates() []Candidate {
	return append([]Candidate(nil), copyCandidates...)
}
