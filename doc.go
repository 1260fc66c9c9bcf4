// Package bytekit provides stateless helpers for reading, writing and
// manipulating byte slices: a bounds-checked positional codec with a
// caller-owned cursor, fail-soft "OrDefault" read variants, slice
// utilities, hex/base64/binary-string conversions, an append-only
// builder over pooled storage, bounded parallel chunk processing and
// context-aware whole-file I/O.
//
// Every read and write takes the buffer and a *int cursor owned by the
// caller. A successful operation advances the cursor by exactly the
// number of bytes consumed; a failed one leaves it untouched. The
// OrDefault variants swallow out-of-range and malformed input, return
// the supplied default and never move the cursor, but a nil buffer is
// still a hard failure (panic) even there.
//
// Protocol helpers (TLV, framing, checksums), compression codecs,
// named-digest hashing and entropy analysis live in the pkg/
// subpackages and are built by composition on top of this package.
package bytekit
