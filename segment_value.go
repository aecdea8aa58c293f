package chunkstore

// ValueSegment is the append-only, uncompressed column segment. It owns
// a typed growable sequence of its element type, mirroring the teacher's
// typed column slices (intColumn, blobColumn) but generalised over the
// full element-type set via a type parameter.
type ValueSegment[T Element] struct {
	typ    ElementType
	values []T
}

// NewValueSegment returns an empty value segment for the given element
// type.
func NewValueSegment[T Element](typ ElementType) *ValueSegment[T] {
	return &ValueSegment[T]{typ: typ}
}

func (s *ValueSegment[T]) ElementType() ElementType { return s.typ }

func (s *ValueSegment[T]) Size() int { return len(s.values) }

func (s *ValueSegment[T]) At(i int) Value {
	return valueOf(s.typ, s.values[i])
}

func (s *ValueSegment[T]) Append(v Value) error {
	casted, err := Cast(v, s.typ)
	if err != nil {
		return err
	}
	s.values = append(s.values, elementOf[T](s.typ, casted))
	return nil
}

// Values exposes the backing slice directly, the way the teacher's
// block_column_based.go walks blk.intColumns[j] without going through a
// per-element accessor. Used by the scan's value-segment fast path and by
// dictionary compression.
func (s *ValueSegment[T]) Values() []T { return s.values }

// newValueSegmentFor dispatches on the element-type tag to build the
// right monomorphisation — the "type-tag to concrete-impl table" pattern
// spec.md §9 calls for in place of template instantiation.
func newValueSegmentFor(typ ElementType) Segment {
	switch typ {
	case ElementInt32:
		return NewValueSegment[int32](typ)
	case ElementInt64:
		return NewValueSegment[int64](typ)
	case ElementFloat32:
		return NewValueSegment[float32](typ)
	case ElementFloat64:
		return NewValueSegment[float64](typ)
	case ElementString:
		return NewValueSegment[string](typ)
	default:
		panic("unknown element type")
	}
}
