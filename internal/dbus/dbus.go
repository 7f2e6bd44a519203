package dbus

import (
	"time"

	"github.com/godbus/dbus/v5"
)

// DefaultTimeout is the timeout used for all D-Bus calls.
var DefaultTimeout = 5 * time.Second

// CallWithTimeout executes a D-Bus call with the default timeout.
func CallWithTimeout(call *dbus.Call) error {
	done := make(chan error, 1)
	go func() { done <- call.Err }()
	select {
	case err := <-done:
		return err
	case <-time.After(DefaultTimeout):
		return &TimeoutError{}
	}
}

// Call invokes a method on a D-Bus object and returns the call for result
// extraction.
func Call(obj dbus.BusObject, method string, args ...interface{}) (*dbus.Call, error) {
	call := obj.Call(method, 0, args...)
	if err := CallWithTimeout(call); err != nil {
		return nil, err
	}
	return call, nil
}

// GetProperty retrieves a single property from a D-Bus object.
func GetProperty(obj dbus.BusObject, iface, prop string) (dbus.Variant, error) {
	var v dbus.Variant
	call, err := Call(obj, PROP_GET, iface, prop)
	if err != nil {
		return dbus.Variant{}, err
	}
	if err := call.Store(&v); err != nil {
		return dbus.Variant{}, err
	}
	return v, nil
}

// GetObject returns a D-Bus object for the given service and object path.
func GetObject(conn *dbus.Conn, service string, path dbus.ObjectPath) dbus.BusObject {
	return conn.Object(service, path)
}

// ExtractBool extracts a bool from a dbus.Variant.
func ExtractBool(v dbus.Variant) (bool, bool) {
	val, ok := v.Value().(bool)
	return val, ok
}
