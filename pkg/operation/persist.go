package operation

import (
	"fmt"
	"path/filepath"

	"github.com/godbus/dbus/v5"

	"github.com/hoppxi/shades/pkg/backlight"
)

// Persister writes a validated brightness to the device.
type Persister interface {
	Persist(s *backlight.Status) error
}

// SysfsPersister writes straight to the device's brightness file.
type SysfsPersister struct{}

func (SysfsPersister) Persist(s *backlight.Status) error {
	return s.Save()
}

const (
	logindBus         = "org.freedesktop.login1"
	logindSessionPath = "/org/freedesktop/login1/session/auto"
	logindSetMethod   = "org.freedesktop.login1.Session.SetBrightness"
)

// LogindPersister asks systemd-logind to set the brightness on behalf of
// the current session, so the brightness file need not be writable.
type LogindPersister struct {
	// Session opens the session object and returns a func releasing it.
	// Nil means the caller's session on the system bus.
	Session func() (dbus.BusObject, func(), error)
}

func systemSession() (dbus.BusObject, func(), error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to system bus: %w", err)
	}
	return conn.Object(logindBus, logindSessionPath), func() { conn.Close() }, nil
}

func (p LogindPersister) Persist(s *backlight.Status) error {
	open := p.Session
	if open == nil {
		open = systemSession
	}

	obj, release, err := open()
	if err != nil {
		return &backlight.IOError{Op: "opening logind session for", Path: s.Path(), Err: err}
	}
	defer release()

	name := DeviceName(s.Path())
	err = obj.Call(logindSetMethod, 0, "backlight", name, uint32(s.Brightness)).Store()
	if err != nil {
		return &backlight.IOError{Op: "setting brightness via logind for", Path: s.Path(), Err: err}
	}
	return nil
}

// DeviceName returns the sysfs device name of a backlight directory,
// e.g. "amdgpu_bl0" for /sys/class/backlight/amdgpu_bl0/. Relative paths
// are resolved against the working directory first.
func DeviceName(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return filepath.Base(filepath.Clean(path))
}

// NewPersister returns the persister for a writer name: sysfs (the default)
// or logind.
func NewPersister(writer string) (Persister, error) {
	switch writer {
	case "", "sysfs":
		return SysfsPersister{}, nil
	case "logind":
		return LogindPersister{}, nil
	default:
		return nil, fmt.Errorf("unknown writer %q (want sysfs or logind)", writer)
	}
}
