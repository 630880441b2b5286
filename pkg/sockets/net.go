package sockets

import (
	"net"
	"net/netip"
	"strings"
)

// NetAddr converts sa to the net.Addr type matching network:
// tcp, udp and ip networks for IP families, unix networks for Unix domain addresses.
func (sa SocketAddress) NetAddr(network string) (addr net.Addr, err error) {
	proto := network
	if colon := strings.IndexByte(network, ':'); colon > -1 {
		proto = network[:colon]
	}
	if sa.family == FamilyUnix {
		switch proto {
		case "unix", "unixgram", "unixpacket":
			addr = &net.UnixAddr{Net: network, Name: sa.unixPath()}
		default:
			err = unsupportedFamily(errMetaOpNetAddr, sa.family.String())
		}
		return
	}
	ap, ok := sa.AddrPort()
	if !ok {
		err = unsupportedFamily(errMetaOpNetAddr, sa.family.String())
		return
	}
	ip := net.IP(ap.Addr().AsSlice())
	zone := sa.zone()
	switch proto {
	case "tcp", "tcp4", "tcp6":
		addr = &net.TCPAddr{IP: ip, Port: int(ap.Port()), Zone: zone}
	case "udp", "udp4", "udp6":
		addr = &net.UDPAddr{IP: ip, Port: int(ap.Port()), Zone: zone}
	case "ip", "ip4", "ip6":
		addr = &net.IPAddr{IP: ip, Zone: zone}
	default:
		err = unsupportedFamily(errMetaOpNetAddr, network)
	}
	return
}

// FromNetAddr converts a *net.TCPAddr, *net.UDPAddr, *net.IPAddr or *net.UnixAddr.
// IPv4-mapped IPv6 addresses become IPv4.
func FromNetAddr(addr net.Addr) (sa SocketAddress, err error) {
	switch a := addr.(type) {
	case *net.TCPAddr:
		sa, err = fromIP(a.IP, uint16(a.Port), a.Zone)
	case *net.UDPAddr:
		sa, err = fromIP(a.IP, uint16(a.Port), a.Zone)
	case *net.IPAddr:
		sa, err = fromIP(a.IP, 0, a.Zone)
	case *net.UnixAddr:
		sa, err = FromUnixPath(a.Name)
	default:
		network := "<nil>"
		if addr != nil {
			network = addr.Network()
		}
		err = unsupportedFamily(errMetaOpNetAddr, network)
	}
	return
}

func fromIP(ip net.IP, port uint16, zone string) (sa SocketAddress, err error) {
	if len(ip) == 0 {
		ip = net.IPv4zero
	}
	addr, ok := netip.AddrFromSlice(ip)
	if !ok {
		err = invalidAddressLength(len(ip))
		return
	}
	sa = fromAddr(addr.Unmap(), port)
	if sa.family == FamilyIPv6 && zone != "" {
		if ifi, ifiErr := net.InterfaceByName(zone); ifiErr == nil {
			sa.scope = uint32(ifi.Index)
		}
	}
	return
}

func (sa SocketAddress) zone() (zone string) {
	if sa.family != FamilyIPv6 || sa.scope == 0 {
		return
	}
	if ifi, err := net.InterfaceByIndex(int(sa.scope)); err == nil {
		zone = ifi.Name
	}
	return
}
