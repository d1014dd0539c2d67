package fastcdc

// SmallPreset targets small files: an 8 KB average chunk size.
func SmallPreset() (*Config, error) {
	return New(2*1024, 8*1024, 64*1024, Level2)
}

// MediumPreset targets general-purpose content: a 64 KB average chunk
// size. It is a reasonable default when the caller has no specific size
// requirement.
func MediumPreset() (*Config, error) {
	return New(16*1024, 64*1024, 256*1024, Level2)
}

// LargePreset targets large media and archive files: a 256 KB average
// chunk size.
func LargePreset() (*Config, error) {
	return New(64*1024, 256*1024, 2*1024*1024, Level2)
}
