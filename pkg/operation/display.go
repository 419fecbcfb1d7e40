package operation

import (
	"context"
	"fmt"
	"strconv"

	"github.com/godbus/dbus/v5"
	"github.com/hoppxi/bright/internal/manager"
	log "github.com/sirupsen/logrus"
)

// Bus is the part of *dbus.Conn used to reach logind.
type Bus interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	Close() error
}

// Connector opens a fresh bus connection for a single call.
type Connector func() (Bus, error)

// ConnectSystemBus opens a private connection to the system bus.
func ConnectSystemBus() (Bus, error) {
	log.Debug("Trying to connect to system bus")
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to system bus: %w", err)
	}
	return conn, nil
}

type DisplayController struct {
	Connect  Connector
	Settings manager.Settings
}

// Display is the exported instance.
var Display = NewDisplay(ConnectSystemBus, manager.Config.Settings())

func NewDisplay(connect Connector, settings manager.Settings) *DisplayController {
	return &DisplayController{Connect: connect, Settings: settings}
}

// ParseBrightness accepts a plain decimal uint32 only: no sign, whitespace
// or radix prefix.
func ParseBrightness(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &Error{Kind: InvalidBrightness, Err: err}
	}
	return uint32(n), nil
}

// Run sets the brightness found at argv[1]. argv[0] is the program name and
// anything past argv[1] is ignored. The bus is not touched unless the
// argument parses.
func (d *DisplayController) Run(ctx context.Context, argv []string) error {
	if len(argv) < 2 {
		return ErrMissingArgument
	}

	brightness, err := ParseBrightness(argv[1])
	if err != nil {
		return err
	}

	return d.SetBrightness(ctx, brightness)
}

// SetBrightness asks logind to set the backlight device to brightness. The
// value is forwarded as is; logind decides what is in range.
func (d *DisplayController) SetBrightness(ctx context.Context, brightness uint32) error {
	conn, err := d.Connect()
	if err != nil {
		return &Error{Kind: RemoteCallFailed, Err: err}
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, d.Settings.Timeout)
	defer cancel()

	s := d.Settings
	obj := conn.Object(s.Destination, dbus.ObjectPath(s.Path))

	log.WithFields(log.Fields{
		"device":     s.Subsystem + "/" + s.Device,
		"brightness": brightness,
	}).Debug("Calling ", s.Method)

	err = obj.CallWithContext(ctx, s.Interface+"."+s.Method, 0, s.Subsystem, s.Device, brightness).Store()
	if err != nil {
		return &Error{Kind: RemoteCallFailed, Err: fmt.Errorf("failed to call %s: %w", s.Method, err)}
	}

	return nil
}
