package chunkstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_attribute_vector_widths_round_trip(t *testing.T) {
	should := require.New(t)

	for _, width := range []int{1, 2, 4} {
		av := NewAttributeVector(8, width)
		should.Equal(8, av.Size())
		should.Equal(width, av.Width())
		for i := 0; i < 8; i++ {
			av.Set(i, uint32(i*3))
		}
		for i := 0; i < 8; i++ {
			should.Equal(uint32(i*3), av.Get(i))
		}
	}
}

func Test_attribute_vector_unsupported_width_panics(t *testing.T) {
	should := require.New(t)
	should.Panics(func() { NewAttributeVector(1, 3) })
}

func Test_width_for(t *testing.T) {
	should := require.New(t)

	w, err := widthFor(10)
	should.Nil(err)
	should.Equal(1, w)

	w, err = widthFor((1 << 8) - 2)
	should.Nil(err)
	should.Equal(1, w)

	w, err = widthFor((1 << 8) - 1)
	should.Nil(err)
	should.Equal(2, w)

	w, err = widthFor((1 << 16) - 2)
	should.Nil(err)
	should.Equal(2, w)

	w, err = widthFor((1 << 16) - 1)
	should.Nil(err)
	should.Equal(4, w)

	_, err = widthFor(int(1<<32 - 1))
	should.ErrorIs(err, ErrDictionaryOverflow)
}
