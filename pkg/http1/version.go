package http1

import (
	"strconv"
	"strings"
)

type Version struct {
	Major int
	Minor int
}

var (
	HTTP10 = Version{Major: 1, Minor: 0}
	HTTP11 = Version{Major: 1, Minor: 1}
)

// ParseVersion accepts "HTTP/1.1" as well as the bare "1.1".
func ParseVersion(s string) (v Version, err error) {
	text := strings.TrimPrefix(s, "HTTP/")
	dot := strings.IndexByte(text, '.')
	if dot < 1 || dot == len(text)-1 {
		err = invalidVersion(s)
		return
	}
	major, majorErr := strconv.Atoi(text[:dot])
	minor, minorErr := strconv.Atoi(text[dot+1:])
	if majorErr != nil || minorErr != nil || major < 0 || minor < 0 {
		err = invalidVersion(s)
		return
	}
	v = Version{Major: major, Minor: minor}
	return
}

func (v Version) AtLeast(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}

func (v Version) String() string {
	return "HTTP/" + strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}
