package fastcdc

// Descriptor identifies one chunk within a stream: its position, length, and
// Gear-hash fingerprint. It carries no data of its own — callers that need
// the bytes read them from the source at [Offset, Offset+Length).
type Descriptor struct {
	Offset uint64
	Length uint64
	Hash   uint64
}

// End returns the offset one past the chunk's last byte.
func (d Descriptor) End() uint64 {
	return d.Offset + d.Length
}
