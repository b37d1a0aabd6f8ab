package wiihid

import (
	"errors"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/muka/go-bluetooth/bluez"
	"github.com/muka/go-bluetooth/bluez/profile/adapter"
	"github.com/muka/go-bluetooth/bluez/profile/device"

	"dio.wtf/wiimote/wiimote/log"
)

// Names a remote advertises depending on hardware revision: the base
// remote, the built-in Motion Plus revision, and the Wii U Pro
// Controller.
var remoteNames = []string{
	"Nintendo RVL-CNT-01",
	"Nintendo RVL-CNT-01-TR",
	"Nintendo RVL-CNT-01-UC",
}

// RemoteInfo describes one controller known to BlueZ.
type RemoteInfo struct {
	Address   string
	Alias     string
	Path      dbus.ObjectPath
	Connected bool
}

var errNoAdapter = errors.New("no bluetooth adapter found")

// Device wraps the local BlueZ adapter.
type Device struct {
	*adapter.Adapter1
	devicePath string
	deviceId   string
}

func NewDevice() (*Device, error) {
	objects, err := getManagedObjects()
	if nil != err {
		return nil, err
	}

	path, ok := findAdapterPath(objects)
	if !ok {
		return nil, errNoAdapter
	}
	adapter1, err := adapter.NewAdapter1(path)
	if nil != err {
		return nil, err
	}

	objectPath := string(path)
	s := strings.Split(objectPath, "/")
	deviceId := s[len(s)-1]
	log.DebugF("Using adapter under object path: %s", objectPath)
	return &Device{
		Adapter1:   adapter1,
		devicePath: objectPath,
		deviceId:   deviceId,
	}, nil
}

// findAdapterPath picks the first BlueZ object exposing an adapter
// interface.
func findAdapterPath(objects map[dbus.ObjectPath]map[string]map[string]dbus.Variant) (dbus.ObjectPath, bool) {
	for path, ifaces := range objects {
		if _, ok := ifaces[adapter.Adapter1Interface]; ok {
			return path, true
		}
	}
	return "", false
}

// DiscoverRemotes lists the controllers BlueZ currently knows about,
// paired or freshly inquired.
func (d *Device) DiscoverRemotes() (remotes []RemoteInfo, err error) {
	objects, err := getManagedObjects()
	if nil != err {
		return
	}

	for path, ifaces := range objects {
		iface, ok := ifaces[device.Device1Interface]
		if !ok {
			continue
		}
		prop := new(device.Device1Properties)
		prop, err = prop.FromDBusMap(iface)
		if nil != err {
			return
		}
		if !isRemoteName(prop.Name) && !isRemoteName(prop.Alias) {
			continue
		}
		remotes = append(remotes, RemoteInfo{
			Address:   prop.Address,
			Alias:     prop.Alias,
			Path:      path,
			Connected: prop.Connected,
		})
	}
	return
}

func isRemoteName(name string) bool {
	for _, candidate := range remoteNames {
		if name == candidate {
			return true
		}
	}
	return false
}

// Forget drops a flapping controller from the system so the next
// sync attempt starts clean.
func (d *Device) Forget(path dbus.ObjectPath) error {
	return d.RemoveDevice(path)
}

func getManagedObjects() (map[dbus.ObjectPath]map[string]map[string]dbus.Variant, error) {
	om, err := bluez.GetObjectManager()
	if nil != err {
		return nil, err
	}
	objects, err := om.GetManagedObjects()
	if nil != err {
		return nil, err
	}
	return objects, nil
}
