// Package session reports which display and clipboard environment the
// process runs in. It is informational only; clipboard backends never depend
// on it.
package session

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Kind names a detected environment
type Kind string

const (
	KindWayland Kind = "wayland"
	KindX11     Kind = "x11"
	KindTermux  Kind = "termux"
	KindWSL     Kind = "wsl"
)

// X11Report describes what the X server said when asked about CLIPBOARD
type X11Report struct {
	Display      string `json:"display"`
	Reachable    bool   `json:"reachable"`
	SelectionSet bool   `json:"selection_set"`
	Owner        uint32 `json:"owner,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Report is the outcome of Detect
type Report struct {
	Kinds          []Kind     `json:"kinds"`
	WaylandDisplay string     `json:"wayland_display,omitempty"`
	X11            *X11Report `json:"x11,omitempty"`
	WSLDistro      string     `json:"wsl_distro,omitempty"`
}

// Has reports whether kind was detected
func (r Report) Has(kind Kind) bool {
	for _, k := range r.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// String renders the kinds as a comma separated list, or "none"
func (r Report) String() string {
	if len(r.Kinds) == 0 {
		return "none"
	}
	names := make([]string, len(r.Kinds))
	for i, k := range r.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ",")
}

// X11Conn is the part of an X connection the detector needs
type X11Conn interface {
	SelectionOwner(selection string) (uint32, error)
	Close()
}

// Detector inspects the environment. Zero fields fall back to the process
// environment and a real X connection.
type Detector struct {
	Getenv func(string) string
	Dial   func(display string) (X11Conn, error)
}

// Detect runs a Detector with the defaults
func Detect() Report {
	return Detector{}.Detect()
}

// Detect collects every environment that looks present
func (d Detector) Detect() Report {
	getenv := d.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	dial := d.Dial
	if dial == nil {
		dial = dialX11
	}

	var report Report

	if display := getenv("WAYLAND_DISPLAY"); display != "" {
		report.Kinds = append(report.Kinds, KindWayland)
		report.WaylandDisplay = display
	}

	if display := getenv("DISPLAY"); display != "" {
		report.X11 = probeX11(dial, display)
		if report.X11.Reachable {
			report.Kinds = append(report.Kinds, KindX11)
		}
	}

	if getenv("TERMUX_VERSION") != "" {
		report.Kinds = append(report.Kinds, KindTermux)
	}

	if distro := getenv("WSL_DISTRO_NAME"); distro != "" {
		report.Kinds = append(report.Kinds, KindWSL)
		report.WSLDistro = distro
	}

	return report
}

func probeX11(dial func(string) (X11Conn, error), display string) *X11Report {
	report := &X11Report{Display: display}

	conn, err := dial(display)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	defer conn.Close()
	report.Reachable = true

	owner, err := conn.SelectionOwner("CLIPBOARD")
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Owner = owner
	report.SelectionSet = owner != 0
	return report
}

type xgbConn struct {
	conn *xgb.Conn
}

func dialX11(display string) (X11Conn, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X display %s: %w", display, err)
	}
	return &xgbConn{conn: conn}, nil
}

func (c *xgbConn) SelectionOwner(selection string) (uint32, error) {
	atom, err := xproto.InternAtom(c.conn, true, uint16(len(selection)), selection).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to intern atom %s: %w", selection, err)
	}
	if atom.Atom == 0 {
		return 0, nil
	}

	reply, err := xproto.GetSelectionOwner(c.conn, atom.Atom).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to query selection owner: %w", err)
	}
	return uint32(reply.Owner), nil
}

func (c *xgbConn) Close() {
	c.conn.Close()
}
