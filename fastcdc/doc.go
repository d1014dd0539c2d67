// Package fastcdc implements FastCDC content-defined chunking: splitting a
// byte stream into variable-sized chunks whose boundaries are determined by
// a Gear rolling hash over the stream's content rather than by fixed offsets.
//
// A localized edit to the input perturbs only the chunks near the edit; the
// rest of the chunk sequence is unchanged. This is the property deduplication,
// delta encoding, and incremental backup systems build on. This package only
// produces the chunk boundaries and their rolling-hash fingerprints — what a
// caller does with them (storing chunks, indexing by a cryptographic hash of
// their contents, deduplicating) is outside its scope.
//
// # Quick start
//
//	cfg, err := fastcdc.New(16*1024, 64*1024, 256*1024, fastcdc.Level2)
//	if err != nil {
//		// invalid size/level combination
//	}
//	ch := cfg.Chunks(r)
//	for {
//		d, err := ch.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			// err is a *fastcdc.IoError
//		}
//		// use d.Offset, d.Length, d.Hash
//	}
//
// The same Config also drives an async variant (ChunksAsync) for callers
// whose reader may suspend, and a ChunkBytes convenience for data already
// held in memory. A Config is immutable after New and is safe to share
// across many concurrent Chunker/AsyncChunker instances; a Chunker itself is
// not safe for concurrent use and must be driven by a single goroutine.
package fastcdc
