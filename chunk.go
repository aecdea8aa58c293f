package chunkstore

import "fmt"

// Chunk is an ordered sequence of segments forming a horizontal partition
// of a table. A chunk is either empty or all of its segments have equal
// length — the chunk's row count.
type Chunk struct {
	segments []Segment
}

// NewChunk returns an empty chunk with no segments.
func NewChunk() *Chunk {
	return &Chunk{}
}

// AddSegment appends a segment as the next column. Callers are
// responsible for adding all columns before appending rows.
func (c *Chunk) AddSegment(s Segment) {
	c.segments = append(c.segments, s)
}

// Segment returns the segment at column index i.
func (c *Chunk) Segment(i uint16) (Segment, error) {
	if int(i) >= len(c.segments) {
		return nil, fmt.Errorf("%w: segment index %d (have %d)", ErrIndexOutOfRange, i, len(c.segments))
	}
	return c.segments[i], nil
}

// SegmentCount returns the number of segments (columns) in the chunk.
func (c *Chunk) SegmentCount() uint16 {
	return uint16(len(c.segments))
}

// Size returns the chunk's row count: 0 if it has no segments, otherwise
// the length of segment 0.
func (c *Chunk) Size() uint32 {
	if len(c.segments) == 0 {
		return 0
	}
	return uint32(c.segments[0].Size())
}

// Append appends one row, element-wise, to every segment. row must carry
// exactly as many values as the chunk has segments.
func (c *Chunk) Append(row []Value) error {
	if len(row) != len(c.segments) {
		return fmt.Errorf("%w: row has %d values, chunk has %d segments", ErrArityMismatch, len(row), len(c.segments))
	}
	for i, v := range row {
		if err := c.segments[i].Append(v); err != nil {
			return err
		}
	}
	return nil
}
