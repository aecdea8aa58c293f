package chunkstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_chunk_append_requires_matching_arity(t *testing.T) {
	should := require.New(t)

	chunk := NewChunk()
	chunk.AddSegment(newValueSegmentFor(ElementInt32))
	chunk.AddSegment(newValueSegmentFor(ElementString))

	err := chunk.Append([]Value{Int32Value(1)})
	should.ErrorIs(err, ErrArityMismatch)

	should.Nil(chunk.Append([]Value{Int32Value(1), StringValue("x")}))
	should.Equal(uint32(1), chunk.Size())
}

func Test_chunk_size_with_no_segments_is_zero(t *testing.T) {
	should := require.New(t)
	chunk := NewChunk()
	should.Equal(uint32(0), chunk.Size())
}

func Test_chunk_segment_out_of_range(t *testing.T) {
	should := require.New(t)
	chunk := NewChunk()
	chunk.AddSegment(newValueSegmentFor(ElementInt32))
	_, err := chunk.Segment(5)
	should.ErrorIs(err, ErrIndexOutOfRange)
}
