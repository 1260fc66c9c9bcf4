package bytekit

import (
	"fmt"
	"strconv"
	"strings"
)

// Version mirrors the classic dotted four-part version. Build and
// Revision are -1 when absent; Major and Minor are always present.
type Version struct {
	Major    int
	Minor    int
	Build    int
	Revision int
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d", v.Major, v.Minor)
	if v.Build >= 0 {
		s += "." + strconv.Itoa(v.Build)
		if v.Revision >= 0 {
			s += "." + strconv.Itoa(v.Revision)
		}
	}
	return s
}

// ParseVersion parses "major.minor[.build[.revision]]". Non-numeric or
// negative segments are format errors.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 4 {
		return Version{}, fmt.Errorf("%w: version %q needs 2 to 4 segments", ErrMalformed, s)
	}
	nums := [4]int{0, 0, -1, -1}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: version segment %q", ErrMalformed, p)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Build: nums[2], Revision: nums[3]}, nil
}

// ReadVersionString reads n bytes (ToEnd for the rest) as UTF-8 text
// and parses it as a dotted version.
func ReadVersionString(buf []byte, cursor *int, n int) (Version, error) {
	local := *cursor
	s, err := ReadUTF8String(buf, &local, n)
	if err != nil {
		return Version{}, err
	}
	v, err := ParseVersion(s)
	if err != nil {
		return Version{}, err
	}
	*cursor = local
	return v, nil
}

// ReadVersionBinary reads four consecutive little-endian int32 values
// (major, minor, build, revision); -1 in the build or revision slot
// means the field is absent.
func ReadVersionBinary(buf []byte, cursor *int) (Version, error) {
	local := *cursor
	var nums [4]int32
	for i := range nums {
		n, err := ReadInt32(buf, &local)
		if err != nil {
			return Version{}, err
		}
		nums[i] = n
	}
	if nums[0] < 0 || nums[1] < 0 {
		return Version{}, fmt.Errorf("%w: negative major/minor in binary version", ErrMalformed)
	}
	if nums[2] < 0 && nums[3] >= 0 {
		return Version{}, fmt.Errorf("%w: revision present without build", ErrMalformed)
	}
	*cursor = local
	return Version{Major: int(nums[0]), Minor: int(nums[1]), Build: int(nums[2]), Revision: int(nums[3])}, nil
}

func ReadVersionBinaryOrDefault(buf []byte, cursor *int, def Version) Version {
	return orDefault(buf, cursor, def, ReadVersionBinary)
}

func ReadVersionStringOrDefault(buf []byte, cursor *int, n int, def Version) Version {
	return orDefault(buf, cursor, def, func(b []byte, c *int) (Version, error) {
		return ReadVersionString(b, c, n)
	})
}

func PutVersionBinary(buf []byte, cursor *int, v Version) error {
	local := *cursor
	for _, n := range [4]int{v.Major, v.Minor, v.Build, v.Revision} {
		if err := PutInt32(buf, &local, int32(n)); err != nil {
			return err
		}
	}
	*cursor = local
	return nil
}
