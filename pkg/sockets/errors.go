package sockets

import (
	"strconv"

	"github.com/brickingsoft/errors"
)

var (
	ErrInvalidAddressString = errors.Define("invalid address string")
	ErrInvalidAddressLength = errors.Define("invalid packed address length")
	ErrUnixPathTooLong      = errors.Define("unix domain socket path too long")
	ErrUnsupportedFamily    = errors.Define("unsupported address family")
)

func IsInvalidAddressString(err error) bool {
	return errors.Is(err, ErrInvalidAddressString)
}

func IsInvalidAddressLength(err error) bool {
	return errors.Is(err, ErrInvalidAddressLength)
}

func IsUnixPathTooLong(err error) bool {
	return errors.Is(err, ErrUnixPathTooLong)
}

func IsUnsupportedFamily(err error) bool {
	return errors.Is(err, ErrUnsupportedFamily)
}

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "sockets"
)

const (
	errMetaOpKey      = "op"
	errMetaOpParse    = "parse"
	errMetaOpPacked   = "packed"
	errMetaOpUnix     = "unix"
	errMetaOpNative   = "native"
	errMetaOpNetAddr  = "net_addr"
	errMetaOpSetPort  = "set_port"
	errMetaAddressKey = "address"
	errMetaLengthKey  = "length"
	errMetaMaxKey     = "max"
	errMetaFamilyKey  = "family"
	errMetaNetworkKey = "network"
)

func invalidAddressString(address string, cause error) error {
	if cause == nil {
		return errors.From(
			ErrInvalidAddressString,
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaOpKey, errMetaOpParse),
			errors.WithMeta(errMetaAddressKey, address),
		)
	}
	return errors.From(
		ErrInvalidAddressString,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, errMetaOpParse),
		errors.WithMeta(errMetaAddressKey, address),
		errors.WithWrap(cause),
	)
}

func invalidAddressLength(length int) error {
	return errors.From(
		ErrInvalidAddressLength,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, errMetaOpPacked),
		errors.WithMeta(errMetaLengthKey, strconv.Itoa(length)),
	)
}

func unixPathTooLong(length int) error {
	return errors.From(
		ErrUnixPathTooLong,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, errMetaOpUnix),
		errors.WithMeta(errMetaLengthKey, strconv.Itoa(length)),
		errors.WithMeta(errMetaMaxKey, strconv.Itoa(MaxUnixPathLength)),
	)
}

func unsupportedFamily(op string, family string) error {
	return errors.From(
		ErrUnsupportedFamily,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, op),
		errors.WithMeta(errMetaFamilyKey, family),
	)
}
