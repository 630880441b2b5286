package sockets

import (
	"strconv"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Native encodes sa as the structure a Linux socket call expects, returning it with its length.
// For Unix domain addresses only the path and one terminating NUL count toward the length
// (no NUL when the path fills sun_path),
// and abstract paths (leading '@') are written with a leading NUL and no terminator.
func (sa SocketAddress) Native() (rsa *unix.RawSockaddrAny, size uint32, err error) {
	rsa = &unix.RawSockaddrAny{}
	switch sa.family {
	case FamilyIPv4:
		raw := (*unix.RawSockaddrInet4)(unsafe.Pointer(rsa))
		raw.Family = unix.AF_INET
		p := (*[2]byte)(unsafe.Pointer(&raw.Port))
		p[0] = byte(sa.port >> 8)
		p[1] = byte(sa.port)
		raw.Addr = [4]byte(sa.ip[:4])
		size = unix.SizeofSockaddrInet4
	case FamilyIPv6:
		raw := (*unix.RawSockaddrInet6)(unsafe.Pointer(rsa))
		raw.Family = unix.AF_INET6
		p := (*[2]byte)(unsafe.Pointer(&raw.Port))
		p[0] = byte(sa.port >> 8)
		p[1] = byte(sa.port)
		raw.Flowinfo = sa.flow
		raw.Scope_id = sa.scope
		raw.Addr = sa.ip
		size = unix.SizeofSockaddrInet6
	case FamilyUnix:
		raw := (*unix.RawSockaddrUnix)(unsafe.Pointer(rsa))
		raw.Family = unix.AF_UNIX
		path := sa.unixPath()
		n := len(path)
		if n > len(raw.Path) {
			rsa = nil
			err = unixPathTooLong(n)
			return
		}
		for i := 0; i < n; i++ {
			raw.Path[i] = int8(path[i])
		}
		size = uint32(unsafe.Offsetof(raw.Path)) + uint32(n)
		if n > 0 && path[0] == '@' {
			raw.Path[0] = 0
		} else if n < len(raw.Path) {
			size++
		}
	default:
		rsa = nil
		err = unsupportedFamily(errMetaOpNative, sa.family.String())
	}
	return
}

// FromNative decodes a structure filled by a Linux socket call.
// Unix domain paths end at the first NUL; bytes after it are ignored.
func FromNative(rsa *unix.RawSockaddrAny, host string) (sa SocketAddress, err error) {
	switch rsa.Addr.Family {
	case unix.AF_INET:
		raw := (*unix.RawSockaddrInet4)(unsafe.Pointer(rsa))
		p := (*[2]byte)(unsafe.Pointer(&raw.Port))
		sa = NewIPv4(raw.Addr, uint16(p[0])<<8|uint16(p[1]), host)
	case unix.AF_INET6:
		raw := (*unix.RawSockaddrInet6)(unsafe.Pointer(rsa))
		p := (*[2]byte)(unsafe.Pointer(&raw.Port))
		sa = NewIPv6(raw.Addr, uint16(p[0])<<8|uint16(p[1]), host, raw.Flowinfo, raw.Scope_id)
	case unix.AF_UNIX:
		raw := (*unix.RawSockaddrUnix)(unsafe.Pointer(rsa))
		start := 0
		if raw.Path[0] == 0 {
			// abstract socket, rendered with a leading '@'
			start = 1
		}
		n := start
		for n < len(raw.Path) && raw.Path[n] != 0 {
			n++
		}
		path := make([]byte, 0, n-start+1)
		if start == 1 && n > 1 {
			path = append(path, '@')
		}
		for i := start; i < n; i++ {
			path = append(path, byte(raw.Path[i]))
		}
		// a path filling sun_path has no terminator, so the FromUnixPath bound does not apply
		sa = fromRawUnixPath(string(path))
	default:
		err = unsupportedFamily(errMetaOpNative, "AF("+strconv.Itoa(int(rsa.Addr.Family))+")")
	}
	return
}
