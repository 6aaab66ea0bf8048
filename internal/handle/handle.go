// Package handle maps fixture-table indices to opaque device handles.
//
// A handle is index+1, so the zero value is never a valid device. Handles
// are plain integers and never carry an address.
package handle

import "math"

// Handle is the caller-facing token for one device.
type Handle uint32

// Invalid is the zero handle. It never decodes.
const Invalid Handle = 0

// NoIndex is returned by Decode for handles outside the table.
const NoIndex = math.MaxUint32

// Codec encodes and decodes handles for a table of fixed size.
type Codec struct {
	count uint32
}

// NewCodec returns a codec for a table holding count devices.
func NewCodec(count int) Codec {
	if count < 0 {
		count = 0
	}
	return Codec{count: uint32(count)}
}

// Count returns the number of devices the codec covers.
func (c Codec) Count() int {
	return int(c.count)
}

// Encode returns the handle for index. ok is false when index is outside
// [0, Count()).
func (c Codec) Encode(index int) (Handle, bool) {
	if index < 0 || uint64(index) >= uint64(c.count) {
		return Invalid, false
	}
	return Handle(index + 1), true
}

// Decode returns the table index behind h, or NoIndex and false when h is
// not in [1, Count()].
func (c Codec) Decode(h Handle) (uint32, bool) {
	if h == Invalid || uint32(h) > c.count {
		return NoIndex, false
	}
	return uint32(h) - 1, true
}

// Valid reports whether h decodes.
func (c Codec) Valid(h Handle) bool {
	_, ok := c.Decode(h)
	return ok
}

// All returns every handle in index order.
func (c Codec) All() []Handle {
	out := make([]Handle, c.count)
	for i := range out {
		out[i] = Handle(i + 1)
	}
	return out
}
