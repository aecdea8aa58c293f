package chunkstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_value_segment_append_and_at(t *testing.T) {
	should := require.New(t)

	seg := NewValueSegment[int32](ElementInt32)
	should.Equal(ElementInt32, seg.ElementType())
	should.Equal(0, seg.Size())

	should.Nil(seg.Append(Int32Value(7)))
	should.Nil(seg.Append(Int32Value(9)))
	should.Equal(2, seg.Size())
	should.Equal(Int32Value(7), seg.At(0))
	should.Equal(Int32Value(9), seg.At(1))
}

func Test_value_segment_append_casts(t *testing.T) {
	should := require.New(t)

	seg := NewValueSegment[int64](ElementInt64)
	should.Nil(seg.Append(Int32Value(3)))
	should.Equal(Int64Value(3), seg.At(0))
}

func Test_value_segment_append_rejects_incompatible_string(t *testing.T) {
	should := require.New(t)

	seg := NewValueSegment[int32](ElementInt32)
	err := seg.Append(StringValue("not a number"))
	should.ErrorIs(err, ErrTypeMismatch)
}

func Test_new_value_segment_for_dispatches_every_type(t *testing.T) {
	should := require.New(t)

	for _, typ := range []ElementType{ElementInt32, ElementInt64, ElementFloat32, ElementFloat64, ElementString} {
		seg := newValueSegmentFor(typ)
		should.Equal(typ, seg.ElementType())
	}
}
