//go:build unix

package sockets

import (
	"golang.org/x/sys/unix"
)

// Sockaddr converts sa for use with the golang.org/x/sys/unix socket calls.
func (sa SocketAddress) Sockaddr() (v unix.Sockaddr, err error) {
	switch sa.family {
	case FamilyIPv4:
		v = &unix.SockaddrInet4{Port: int(sa.port), Addr: [4]byte(sa.ip[:4])}
	case FamilyIPv6:
		v = &unix.SockaddrInet6{Port: int(sa.port), ZoneId: sa.scope, Addr: sa.ip}
	case FamilyUnix:
		v = &unix.SockaddrUnix{Name: sa.unixPath()}
	default:
		err = unsupportedFamily(errMetaOpNative, sa.family.String())
	}
	return
}

// FromSockaddr converts an address returned by accept, getsockname or getpeername.
func FromSockaddr(v unix.Sockaddr, host string) (sa SocketAddress, err error) {
	switch s := v.(type) {
	case *unix.SockaddrInet4:
		sa = NewIPv4(s.Addr, uint16(s.Port), host)
	case *unix.SockaddrInet6:
		sa = NewIPv6(s.Addr, uint16(s.Port), host, 0, s.ZoneId)
	case *unix.SockaddrUnix:
		sa = fromRawUnixPath(s.Name)
	default:
		err = unsupportedFamily(errMetaOpNative, "unknown")
	}
	return
}
