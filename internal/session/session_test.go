package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	owner  uint32
	err    error
	asked  []string
	closed bool
}

func (c *fakeConn) SelectionOwner(selection string) (uint32, error) {
	c.asked = append(c.asked, selection)
	return c.owner, c.err
}

func (c *fakeConn) Close() { c.closed = true }

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetectNothing(t *testing.T) {
	d := Detector{
		Getenv: env(nil),
		Dial: func(string) (X11Conn, error) {
			t.Fatal("dial without DISPLAY")
			return nil, nil
		},
	}

	report := d.Detect()
	assert.Empty(t, report.Kinds)
	assert.Nil(t, report.X11)
	assert.Equal(t, "none", report.String())
}

func TestDetectX11WithOwner(t *testing.T) {
	conn := &fakeConn{owner: 0x1200007}
	var dialed string
	d := Detector{
		Getenv: env(map[string]string{"DISPLAY": ":0"}),
		Dial: func(display string) (X11Conn, error) {
			dialed = display
			return conn, nil
		},
	}

	report := d.Detect()
	assert.Equal(t, ":0", dialed)
	assert.True(t, report.Has(KindX11))
	require.NotNil(t, report.X11)
	assert.True(t, report.X11.Reachable)
	assert.True(t, report.X11.SelectionSet)
	assert.Equal(t, uint32(0x1200007), report.X11.Owner)
	assert.Equal(t, []string{"CLIPBOARD"}, conn.asked)
	assert.True(t, conn.closed)
}

func TestDetectX11Unreachable(t *testing.T) {
	d := Detector{
		Getenv: env(map[string]string{"DISPLAY": ":9"}),
		Dial: func(string) (X11Conn, error) {
			return nil, errors.New("connection refused")
		},
	}

	report := d.Detect()
	assert.False(t, report.Has(KindX11))
	require.NotNil(t, report.X11)
	assert.False(t, report.X11.Reachable)
	assert.Equal(t, "connection refused", report.X11.Error)
}

func TestDetectX11EmptySelection(t *testing.T) {
	conn := &fakeConn{}
	d := Detector{
		Getenv: env(map[string]string{"DISPLAY": ":0"}),
		Dial:   func(string) (X11Conn, error) { return conn, nil },
	}

	report := d.Detect()
	assert.True(t, report.X11.Reachable)
	assert.False(t, report.X11.SelectionSet)
}

func TestDetectSeveralKinds(t *testing.T) {
	d := Detector{
		Getenv: env(map[string]string{
			"WAYLAND_DISPLAY": "wayland-0",
			"TERMUX_VERSION":  "0.118",
			"WSL_DISTRO_NAME": "Ubuntu",
		}),
	}

	report := d.Detect()
	assert.Equal(t, []Kind{KindWayland, KindTermux, KindWSL}, report.Kinds)
	assert.Equal(t, "wayland-0", report.WaylandDisplay)
	assert.Equal(t, "Ubuntu", report.WSLDistro)
	assert.Equal(t, "wayland,termux,wsl", report.String())
}
