package fastcdc

// ChunkBytes chunks an in-memory slice without going through an io.Reader
// or the streaming buffer policy. It produces byte-identical descriptors to
// streaming the same bytes through Chunks, for any read granularity the
// reader happens to use. The error return exists to keep this method's
// signature consistent with the rest of the package's chunking entry
// points; findCutPoint never fails for a valid Config, so it is always nil.
func (c *Config) ChunkBytes(data []byte) ([]Descriptor, error) {
	var descs []Descriptor
	var offset uint64
	rest := data
	for len(rest) > 0 {
		length, hash, _ := findCutPoint(rest, c, true)
		descs = append(descs, Descriptor{Offset: offset, Length: uint64(length), Hash: hash})
		rest = rest[length:]
		offset += uint64(length)
	}
	return descs, nil
}
