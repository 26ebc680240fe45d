package continuum

import (
	"crypto/md5"
	"encoding/binary"
)

// digest concatenates segments, computes their MD5 sum, and reinterprets the
// resulting 16 bytes as four 32-bit points in the machine's native byte
// order. MD5 here is used purely for its output distribution, not as a
// security primitive, and has no error outcome. It must not be swapped for
// a faster non-cryptographic hash, which would silently change ring layout
// and break compatibility with peer routers built against the same group.
//
// The native-endian reinterpretation is a deliberate, documented choice
// (DESIGN.md) rather than an oversight: it preserves bit-compatibility with
// deployments built against the original little-endian implementation.
func digest(segments ...[]byte) [4]uint32 {
	h := md5.New()
	for _, s := range segments {
		h.Write(s)
	}
	sum := h.Sum(nil)

	var points [4]uint32
	for i := range points {
		points[i] = binary.NativeEndian.Uint32(sum[i*4 : i*4+4])
	}
	return points
}

// stepBytes returns the raw native-endian byte representation of a
// build-time step counter as a 64-bit platform word, matching a modern
// 64-bit build of the original implementation's `size_t` (see DESIGN.md).
func stepBytes(step uint64) []byte {
	b := make([]byte, 8)
	binary.NativeEndian.PutUint64(b, step)
	return b
}
