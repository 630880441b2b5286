package sockets

import (
	"encoding/binary"
	"net"
	"net/netip"
	"strconv"
	"strings"

	"github.com/brickingsoft/wire/pkg/bytebuffers"
	"github.com/cespare/xxhash/v2"
)

type Family uint8

const (
	FamilyUnspecified Family = iota
	FamilyIPv4
	FamilyIPv6
	FamilyUnix
)

func (family Family) String() string {
	switch family {
	case FamilyIPv4:
		return "IPv4"
	case FamilyIPv6:
		return "IPv6"
	case FamilyUnix:
		return "Unix"
	case FamilyUnspecified:
		return "Unspecified"
	default:
		return "Family(" + strconv.Itoa(int(family)) + ")"
	}
}

// SocketAddress
// IPv4、IPv6 与 Unix 域套接字地址的统一值类型。
//
// 相等与哈希只取决于地址族、地址字节、端口（IP 地址族）以及第一个 NUL 之前的路径（Unix）。
// host 只是描述信息；IPv6 的 flow info 与 scope id 会被保留，但不参与比较。
// 零值的地址族为 FamilyUnspecified。
type SocketAddress struct {
	family Family
	ip     [16]byte
	port   uint16
	flow   uint32
	scope  uint32
	host   string
	path   string
}

// NewIPv4 builds an IPv4 address from its native field values.
func NewIPv4(addr [4]byte, port uint16, host string) (sa SocketAddress) {
	sa.family = FamilyIPv4
	copy(sa.ip[:], addr[:])
	sa.port = port
	sa.host = host
	return
}

// NewIPv6 builds an IPv6 address from its native field values.
func NewIPv6(addr [16]byte, port uint16, host string, flow uint32, scope uint32) (sa SocketAddress) {
	sa.family = FamilyIPv6
	sa.ip = addr
	sa.port = port
	sa.host = host
	sa.flow = flow
	sa.scope = scope
	return
}

// ParseIP parses an IPv4 or IPv6 literal. Zoned IPv6 literals are rejected.
func ParseIP(text string, port uint16) (sa SocketAddress, err error) {
	addr, parseErr := netip.ParseAddr(text)
	if parseErr != nil {
		err = invalidAddressString(text, parseErr)
		return
	}
	if addr.Zone() != "" {
		err = invalidAddressString(text, nil)
		return
	}
	sa = fromAddr(addr, port)
	return
}

// ParseAddrPort parses "ip:port", "[ipv6]:port" or ":port", the last meaning 0.0.0.0.
func ParseAddrPort(text string) (sa SocketAddress, err error) {
	text = strings.TrimSpace(text)
	i := strings.LastIndexByte(text, ':')
	if i == -1 {
		err = invalidAddressString(text, nil)
		return
	}
	ip, port := text[:i], text[i+1:]
	if len(port) == 0 {
		err = invalidAddressString(text, nil)
		return
	}
	portNum, portErr := strconv.ParseUint(port, 10, 16)
	if portErr != nil {
		err = invalidAddressString(text, portErr)
		return
	}
	if len(ip) == 0 {
		ip = "0.0.0.0"
	} else if ip[0] == '[' {
		if len(ip) < 2 || ip[len(ip)-1] != ']' {
			err = invalidAddressString(text, nil)
			return
		}
		ip = ip[1 : len(ip)-1]
	}
	sa, err = ParseIP(ip, uint16(portNum))
	return
}

// FromPackedIP builds an address from raw network-order bytes: 4 bytes for IPv4, 16 for IPv6.
func FromPackedIP(p []byte, port uint16) (sa SocketAddress, err error) {
	switch len(p) {
	case net.IPv4len:
		sa = NewIPv4([4]byte(p), port, "")
	case net.IPv6len:
		sa = NewIPv6([16]byte(p), port, "", 0, 0)
	default:
		err = invalidAddressLength(len(p))
	}
	return
}

// FromPackedBuffer is FromPackedIP over the readable bytes of buf. buf is not consumed.
func FromPackedBuffer(buf *bytebuffers.Buffer, port uint16) (SocketAddress, error) {
	return FromPackedIP(buf.Bytes(), port)
}

// FromUnixPath builds a Unix domain socket address.
// A leading '@' names a Linux abstract socket.
func FromUnixPath(path string) (sa SocketAddress, err error) {
	if len(path) > MaxUnixPathLength {
		err = unixPathTooLong(len(path))
		return
	}
	sa = fromRawUnixPath(path)
	return
}

// fromRawUnixPath wraps a path reported by the kernel, which may fill sun_path without a terminator.
func fromRawUnixPath(path string) (sa SocketAddress) {
	sa.family = FamilyUnix
	sa.path = path
	return
}

func fromAddr(addr netip.Addr, port uint16) SocketAddress {
	if addr.Is4() {
		return NewIPv4(addr.As4(), port, "")
	}
	return NewIPv6(addr.As16(), port, "", 0, 0)
}

func (sa SocketAddress) Family() Family {
	return sa.family
}

func (sa SocketAddress) Host() string {
	return sa.host
}

// WithHost returns a copy of sa carrying host as its description.
func (sa SocketAddress) WithHost(host string) SocketAddress {
	sa.host = host
	return sa
}

// Port reports the port of an IP address. Unix domain addresses have none.
func (sa SocketAddress) Port() (port uint16, ok bool) {
	switch sa.family {
	case FamilyIPv4, FamilyIPv6:
		port, ok = sa.port, true
	}
	return
}

// SetPort changes the port of an IP address.
func (sa *SocketAddress) SetPort(port uint16) error {
	switch sa.family {
	case FamilyIPv4, FamilyIPv6:
		sa.port = port
		return nil
	default:
		return unsupportedFamily(errMetaOpSetPort, sa.family.String())
	}
}

// ClearPort resets the port of an IP address to 0 and does nothing for other families.
func (sa *SocketAddress) ClearPort() {
	switch sa.family {
	case FamilyIPv4, FamilyIPv6:
		sa.port = 0
	}
}

func (sa SocketAddress) FlowInfo() uint32 {
	return sa.flow
}

func (sa SocketAddress) ScopeID() uint32 {
	return sa.scope
}

// Path returns the Unix domain socket path up to its first NUL.
func (sa SocketAddress) Path() (path string, ok bool) {
	if sa.family != FamilyUnix {
		return
	}
	path, ok = sa.unixPath(), true
	return
}

func (sa SocketAddress) unixPath() string {
	if i := strings.IndexByte(sa.path, 0); i > -1 {
		return sa.path[:i]
	}
	return sa.path
}

// Addr returns the IP of an IP address.
func (sa SocketAddress) Addr() (addr netip.Addr, ok bool) {
	switch sa.family {
	case FamilyIPv4:
		addr, ok = netip.AddrFrom4([4]byte(sa.ip[:4])), true
	case FamilyIPv6:
		addr, ok = netip.AddrFrom16(sa.ip), true
	}
	return
}

func (sa SocketAddress) AddrPort() (ap netip.AddrPort, ok bool) {
	addr, isIP := sa.Addr()
	if !isIP {
		return
	}
	ap, ok = netip.AddrPortFrom(addr, sa.port), true
	return
}

// IPAddress renders the IP in its canonical text form, IPv6 zero runs compressed.
func (sa SocketAddress) IPAddress() (ip string, ok bool) {
	addr, isIP := sa.Addr()
	if !isIP {
		return
	}
	ip, ok = addr.String(), true
	return
}

// String renders "[IPv4]host/ip:port", "[IPv6]host/ip:port" or the Unix path.
// The host part is omitted when empty.
func (sa SocketAddress) String() string {
	switch sa.family {
	case FamilyIPv4, FamilyIPv6:
		b := strings.Builder{}
		b.WriteByte('[')
		b.WriteString(sa.family.String())
		b.WriteByte(']')
		if sa.host != "" {
			b.WriteString(sa.host)
			b.WriteByte('/')
		}
		ip, _ := sa.IPAddress()
		b.WriteString(ip)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(sa.port)))
		return b.String()
	case FamilyUnix:
		return sa.unixPath()
	default:
		return "[" + sa.family.String() + "]"
	}
}

// Key is a comparable identity of a SocketAddress, usable as a map key.
type Key struct {
	family Family
	ip     [16]byte
	port   uint16
	path   string
}

func (sa SocketAddress) Key() (key Key) {
	key.family = sa.family
	switch sa.family {
	case FamilyIPv4, FamilyIPv6:
		key.ip = sa.ip
		key.port = sa.port
	case FamilyUnix:
		key.path = sa.unixPath()
	}
	return
}

func (sa SocketAddress) Equal(other SocketAddress) bool {
	return sa.Key() == other.Key()
}

// Hash is consistent with Equal.
func (sa SocketAddress) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(sa.family)})
	switch sa.family {
	case FamilyIPv4:
		_, _ = d.Write(sa.ip[:net.IPv4len])
		_, _ = d.Write(binary.BigEndian.AppendUint16(nil, sa.port))
	case FamilyIPv6:
		_, _ = d.Write(sa.ip[:])
		_, _ = d.Write(binary.BigEndian.AppendUint16(nil, sa.port))
	case FamilyUnix:
		_, _ = d.WriteString(sa.unixPath())
	}
	return d.Sum64()
}
