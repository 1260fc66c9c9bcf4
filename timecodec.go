package bytekit

import "time"

// Durations on the wire are tick counts, one tick being 100ns.
const nanosPerTick = 100

// ReadDateTime decodes the 8-byte opaque timestamp blob written by
// PutDateTime (little-endian nanoseconds since the Unix epoch). The
// blob is a round-trip format, not a semantic interchange format.
func ReadDateTime(buf []byte, cursor *int) (time.Time, error) {
	nanos, err := ReadInt64(buf, cursor)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, nanos).UTC(), nil
}

func ReadDateTimeAt(buf []byte, offset int) (time.Time, error) {
	return ReadDateTime(buf, &offset)
}

func ReadDateTimeOrDefault(buf []byte, cursor *int, def time.Time) time.Time {
	return orDefault(buf, cursor, def, ReadDateTime)
}

func PutDateTime(buf []byte, cursor *int, t time.Time) error {
	return PutInt64(buf, cursor, t.UnixNano())
}

// ReadUnixTimestamp decodes a 4-byte little-endian signed
// seconds-since-epoch value, independent of the 8-byte blob form.
func ReadUnixTimestamp(buf []byte, cursor *int) (time.Time, error) {
	secs, err := ReadInt32(buf, cursor)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(secs), 0).UTC(), nil
}

func ReadUnixTimestampOrDefault(buf []byte, cursor *int, def time.Time) time.Time {
	return orDefault(buf, cursor, def, ReadUnixTimestamp)
}

func PutUnixTimestamp(buf []byte, cursor *int, t time.Time) error {
	return PutInt32(buf, cursor, int32(t.Unix()))
}

// ReadDuration decodes an 8-byte little-endian signed tick count.
func ReadDuration(buf []byte, cursor *int) (time.Duration, error) {
	ticks, err := ReadInt64(buf, cursor)
	if err != nil {
		return 0, err
	}
	return time.Duration(ticks * nanosPerTick), nil
}

func ReadDurationOrDefault(buf []byte, cursor *int, def time.Duration) time.Duration {
	return orDefault(buf, cursor, def, ReadDuration)
}

func PutDuration(buf []byte, cursor *int, d time.Duration) error {
	return PutInt64(buf, cursor, int64(d)/nanosPerTick)
}

// ReadDateTimeOffset decodes the 8-byte timestamp blob followed by an
// 8-byte tick count carrying the UTC offset, 16 bytes total. The
// returned time sits in a fixed zone at that offset.
func ReadDateTimeOffset(buf []byte, cursor *int) (time.Time, error) {
	local := *cursor
	t, err := ReadDateTime(buf, &local)
	if err != nil {
		return time.Time{}, err
	}
	offTicks, err := ReadInt64(buf, &local)
	if err != nil {
		return time.Time{}, err
	}
	offSecs := int(offTicks * nanosPerTick / int64(time.Second))
	*cursor = local
	return t.In(time.FixedZone("", offSecs)), nil
}

// ReadDateTimeOffsetOrDefault keeps a long-observed wart: when the
// timestamp component decodes but the offset component does not, the
// cursor still advances by 8 even though the default is returned.
// Callers depend on that exact behavior; do not roll it back.
func ReadDateTimeOffsetOrDefault(buf []byte, cursor *int, def time.Time) time.Time {
	if buf == nil {
		panic("bytekit: nil buffer")
	}
	local := *cursor
	t, err := ReadDateTime(buf, &local)
	if err != nil {
		return def
	}
	*cursor = local
	offTicks, err := ReadInt64(buf, &local)
	if err != nil {
		return def
	}
	*cursor = local
	offSecs := int(offTicks * nanosPerTick / int64(time.Second))
	return t.In(time.FixedZone("", offSecs))
}

func PutDateTimeOffset(buf []byte, cursor *int, t time.Time) error {
	local := *cursor
	if err := PutDateTime(buf, &local, t); err != nil {
		return err
	}
	_, offSecs := t.Zone()
	offTicks := int64(offSecs) * int64(time.Second) / nanosPerTick
	if err := PutInt64(buf, &local, offTicks); err != nil {
		return err
	}
	*cursor = local
	return nil
}
