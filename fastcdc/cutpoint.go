package fastcdc

// findCutPoint scans data (a window starting at the current chunk's offset)
// for the next chunk boundary, per the FastCDC normalized-chunking algorithm:
// sub-minimum bytes are skipped without hashing, then the strict mask is
// checked in [minSize, avgSize), then the loose mask in [avgSize, maxSize).
//
// It returns the chunk length and its Gear-hash fingerprint. needMore is
// true when data does not yet contain enough bytes to decide — the caller
// must supply a longer window (more bytes read from the source) and call
// again; it is only ever true when eof is false and len(data) < maxSize, so
// a caller that always fills data to at least maxSize before calling (or
// passes eof=true for the final window) never observes it.
func findCutPoint(data []byte, cfg *Config, eof bool) (length int, hash uint64, needMore bool) {
	n := len(data)

	// A window of maxSize bytes is always decided below, even when
	// minSize == maxSize.
	if n <= cfg.minSize && n < cfg.maxSize {
		if !eof {
			return 0, 0, true
		}
		// Terminal partial chunk no longer than minSize: hash the whole
		// thing since there is no skipped prefix to omit.
		return n, gearHash(data, &cfg.gear), false
	}

	limit := n
	if limit > cfg.maxSize {
		limit = cfg.maxSize
	}

	strictEnd := limit
	if strictEnd > cfg.avgSize {
		strictEnd = cfg.avgSize
	}

	var h uint64
	i := cfg.minSize
	for ; i < strictEnd; i++ {
		h = (h << 1) + cfg.gear[data[i]]
		if h&cfg.maskS == 0 {
			return i + 1, h, false
		}
	}
	for ; i < limit; i++ {
		h = (h << 1) + cfg.gear[data[i]]
		if h&cfg.maskL == 0 {
			return i + 1, h, false
		}
	}

	if limit == cfg.maxSize {
		return limit, h, false
	}
	// limit == n < maxSize: no mask matched within the available bytes.
	if !eof {
		return 0, 0, true
	}
	return limit, h, false
}

// gearHash computes the Gear rolling hash over the full window, used only
// for terminal chunks no longer than minSize (spec.md's hash convention
// carve-out — there is no skipped prefix to exclude in that case).
func gearHash(data []byte, gear *[256]uint64) uint64 {
	var h uint64
	for _, b := range data {
		h = (h << 1) + gear[b]
	}
	return h
}
