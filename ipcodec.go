package bytekit

import "net/netip"

// IPFamily selects the on-wire width of an address. There is no
// auto-detection from buffer length.
type IPFamily int

const (
	IPv4 IPFamily = iota // 4 bytes
	IPv6                 // 16 bytes
)

func (f IPFamily) width() int {
	if f == IPv6 {
		return 16
	}
	return 4
}

// ReadIP decodes an address of the given family at the cursor.
func ReadIP(buf []byte, cursor *int, family IPFamily) (netip.Addr, error) {
	return readFixed(buf, cursor, family.width(), func(b []byte) netip.Addr {
		if family == IPv6 {
			return netip.AddrFrom16([16]byte(b[:16]))
		}
		return netip.AddrFrom4([4]byte(b[:4]))
	})
}

func ReadIPAt(buf []byte, offset int, family IPFamily) (netip.Addr, error) {
	return ReadIP(buf, &offset, family)
}

func ReadIPOrDefault(buf []byte, cursor *int, family IPFamily, def netip.Addr) netip.Addr {
	return orDefault(buf, cursor, def, func(b []byte, c *int) (netip.Addr, error) {
		return ReadIP(b, c, family)
	})
}

func PutIP(buf []byte, cursor *int, addr netip.Addr) error {
	raw := addr.AsSlice()
	return writeFixed(buf, cursor, len(raw), func(b []byte) { copy(b, raw) })
}

// ReadEndpoint decodes an address of the given family followed by a
// 2-byte port in network (big-endian) order.
func ReadEndpoint(buf []byte, cursor *int, family IPFamily) (netip.AddrPort, error) {
	local := *cursor
	addr, err := ReadIP(buf, &local, family)
	if err != nil {
		return netip.AddrPort{}, err
	}
	port, err := ReadUint16BE(buf, &local)
	if err != nil {
		return netip.AddrPort{}, err
	}
	*cursor = local
	return netip.AddrPortFrom(addr, port), nil
}

func ReadEndpointOrDefault(buf []byte, cursor *int, family IPFamily, def netip.AddrPort) netip.AddrPort {
	return orDefault(buf, cursor, def, func(b []byte, c *int) (netip.AddrPort, error) {
		return ReadEndpoint(b, c, family)
	})
}

func PutEndpoint(buf []byte, cursor *int, ep netip.AddrPort) error {
	local := *cursor
	if err := PutIP(buf, &local, ep.Addr()); err != nil {
		return err
	}
	if err := PutUint16BE(buf, &local, ep.Port()); err != nil {
		return err
	}
	*cursor = local
	return nil
}
