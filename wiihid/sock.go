package wiihid

import (
	"errors"
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

// L2CAP PSMs of the HID control and interrupt channels.
const (
	ctrlPsm uint16 = 17
	intrPsm uint16 = 19
)

var errInvalidMAC = errors.New("bluetooth: Bad MAC address")

// ConnectSocket opens an outgoing L2CAP SEQPACKET channel to the
// remote at the given PSM.
func ConnectSocket(addr string, psm uint16) (fd int, err error) {
	fd, err = unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_SEQPACKET, unix.BTPROTO_L2CAP)
	if nil != err {
		err = fmt.Errorf("unix.Socket %s", err)
		return
	}
	sa, err := ParseBluetoothSockaddr(addr, psm)
	if nil != err {
		unix.Close(fd)
		return
	}
	if err = unix.Connect(fd, sa); nil != err {
		unix.Close(fd)
		err = fmt.Errorf("unix.Connect %s", err)
		return
	}
	return
}

// ParseBluetoothSockaddr builds an L2CAP sockaddr from a MAC string.
// The kernel wants the address bytes in reverse order.
func ParseBluetoothSockaddr(addr string, psm uint16) (unix.Sockaddr, error) {
	hwAddr, _ := net.ParseMAC(addr)
	if len(hwAddr) != 6 {
		return nil, errInvalidMAC
	}
	var d [6]byte
	for i := range d {
		d[i] = hwAddr[5-i]
	}
	sa := &unix.SockaddrL2{
		PSM:      psm,
		Addr:     d,
		AddrType: unix.BDADDR_BREDR,
	}
	return sa, nil
}
