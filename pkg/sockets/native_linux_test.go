package sockets_test

import (
	"testing"
	"unsafe"

	"github.com/brickingsoft/wire/pkg/sockets"
	"golang.org/x/sys/unix"
)

func TestNative_IPv4(t *testing.T) {
	sa := mustParseIP(t, "127.0.0.1", 80)
	rsa, size, err := sa.Native()
	if err != nil {
		t.Fatal(err)
	}
	if size != unix.SizeofSockaddrInet4 {
		t.Fatal("size:", size)
	}
	raw := (*unix.RawSockaddrInet4)(unsafe.Pointer(rsa))
	if raw.Family != unix.AF_INET || raw.Addr != [4]byte{127, 0, 0, 1} {
		t.Fatal(raw)
	}
	port := (*[2]byte)(unsafe.Pointer(&raw.Port))
	if port[0] != 0 || port[1] != 80 {
		t.Fatal("port must be in network byte order:", port)
	}
}

func TestNative_IPv6(t *testing.T) {
	sa := mustParseIP(t, "fe80::5", 443)
	rsa, size, err := sa.Native()
	if err != nil {
		t.Fatal(err)
	}
	if size != unix.SizeofSockaddrInet6 {
		t.Fatal("size:", size)
	}
	raw := (*unix.RawSockaddrInet6)(unsafe.Pointer(rsa))
	if raw.Family != unix.AF_INET6 || raw.Scope_id != 0 || raw.Flowinfo != 0 {
		t.Fatal(raw)
	}
	port := (*[2]byte)(unsafe.Pointer(&raw.Port))
	if port[0] != 1 || port[1] != 187 {
		t.Fatal("port must be in network byte order:", port)
	}
}

func TestNative_RoundTrip(t *testing.T) {
	addresses := []sockets.SocketAddress{
		mustParseIP(t, "127.0.0.1", 80),
		mustParseIP(t, "::1", 80),
		sockets.NewIPv6([16]byte{0xfe, 0x80, 15: 1}, 8080, "", 7, 2),
		mustUnix(t, "/definitely/a/path"),
		mustUnix(t, "@abstract"),
	}
	for _, sa := range addresses {
		rsa, size, err := sa.Native()
		if err != nil {
			t.Fatal(sa, err)
		}
		back, err := sockets.FromNative(rsa, "")
		if err != nil {
			t.Fatal(sa, err)
		}
		if !back.Equal(sa) || back.String() != sa.String() {
			t.Errorf("round trip: got %s, want %s", back, sa)
		}
		if back.FlowInfo() != sa.FlowInfo() || back.ScopeID() != sa.ScopeID() {
			t.Errorf("%s: flow info or scope id lost", sa)
		}
		again, againSize, _ := back.Native()
		if againSize != size || *again != *rsa {
			t.Errorf("%s: native bytes differ after a round trip", sa)
		}
	}
}

func TestNative_UnixLength(t *testing.T) {
	path := "/var/tmp"
	rsa, size, err := mustUnix(t, path).Native()
	if err != nil {
		t.Fatal(err)
	}
	raw := (*unix.RawSockaddrUnix)(unsafe.Pointer(rsa))
	if want := uint32(unsafe.Offsetof(raw.Path)) + uint32(len(path)) + 1; size != want {
		t.Fatalf("size: got %d, want %d", size, want)
	}
	for i := len(path); i < len(raw.Path); i++ {
		if raw.Path[i] != 0 {
			t.Fatal("bytes after the path must be zero")
		}
	}

	_, size, _ = mustUnix(t, "@a").Native()
	if want := uint32(unsafe.Offsetof(raw.Path)) + 2; size != want {
		t.Fatalf("abstract size: got %d, want %d", size, want)
	}
}

func TestFromNative_UnixTrailingJunk(t *testing.T) {
	rsa := &unix.RawSockaddrAny{}
	raw := (*unix.RawSockaddrUnix)(unsafe.Pointer(rsa))
	raw.Family = unix.AF_UNIX
	for i, c := range []byte("/var/tmp\x00") {
		raw.Path[i] = int8(c)
	}
	first, err := sockets.FromNative(rsa, "")
	if err != nil {
		t.Fatal(err)
	}
	raw.Path[100] = 60
	second, err := sockets.FromNative(rsa, "")
	if err != nil {
		t.Fatal(err)
	}
	if !first.Equal(second) || first.Hash() != second.Hash() {
		t.Fatal("bytes after NUL must be ignored")
	}
}

func TestFromNative_UnixFullPath(t *testing.T) {
	rsa := &unix.RawSockaddrAny{}
	raw := (*unix.RawSockaddrUnix)(unsafe.Pointer(rsa))
	raw.Family = unix.AF_UNIX
	raw.Path[0] = '/'
	for i := 1; i < len(raw.Path); i++ {
		raw.Path[i] = 'a'
	}
	sa, err := sockets.FromNative(rsa, "")
	if err != nil {
		t.Fatal(err)
	}
	path, ok := sa.Path()
	if !ok || len(path) != len(raw.Path) {
		t.Fatal("unexpected path length:", len(path))
	}

	back, size, err := sa.Native()
	if err != nil {
		t.Fatal(err)
	}
	if want := uint32(unsafe.Offsetof(raw.Path)) + uint32(len(raw.Path)); size != want {
		t.Fatalf("size: got %d, want %d", size, want)
	}
	again, err := sockets.FromNative(back, "")
	if err != nil {
		t.Fatal(err)
	}
	if !again.Equal(sa) {
		t.Fatal("round trip:", again)
	}

	sa2, err := sockets.FromSockaddr(&unix.SockaddrUnix{Name: path}, "")
	if err != nil || !sa2.Equal(sa) {
		t.Fatal(sa2, err)
	}
}

func TestFromNative_Unsupported(t *testing.T) {
	rsa := &unix.RawSockaddrAny{}
	rsa.Addr.Family = unix.AF_NETLINK
	if _, err := sockets.FromNative(rsa, ""); !sockets.IsUnsupportedFamily(err) {
		t.Fatal("expected unsupported family, got", err)
	}
	if _, _, err := (sockets.SocketAddress{}).Native(); !sockets.IsUnsupportedFamily(err) {
		t.Fatal("expected unsupported family, got", err)
	}
}

func TestSockaddr(t *testing.T) {
	for _, sa := range []sockets.SocketAddress{
		mustParseIP(t, "10.0.0.1", 1),
		mustParseIP(t, "fe80::5", 2),
		mustUnix(t, "/tmp/x.sock"),
	} {
		v, err := sa.Sockaddr()
		if err != nil {
			t.Fatal(err)
		}
		back, err := sockets.FromSockaddr(v, "")
		if err != nil || !back.Equal(sa) {
			t.Errorf("round trip: got %s (%v), want %s", back, err, sa)
		}
	}
}
