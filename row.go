package chunkstore

// ChunkID identifies a chunk within a table by its position in the
// table's chunk sequence.
type ChunkID uint32

// ChunkOffset identifies a row within a chunk.
type ChunkOffset uint32

// RowID is the canonical reference to a logical row within a table: a
// (chunk index, chunk offset) pair.
type RowID struct {
	ChunkID     ChunkID
	ChunkOffset ChunkOffset
}

// PositionList is an ordered sequence of row identifiers. A scan produces
// one, then publishes it read-only to every reference segment of its
// result table; once published it is never mutated again.
type PositionList []RowID

// InvalidID is the all-ones identifier sentinel. Because of
// two's-complement-style truncation to narrower attribute-vector widths,
// it evaluates to 2^(8*width)-1 at every supported width.
const InvalidID uint32 = 1<<32 - 1
