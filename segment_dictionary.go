package chunkstore

import (
	"cmp"
	"sort"
)

// DictionarySegment is the immutable column-segment encoding: a sorted,
// duplicate-free dictionary of distinct values, and an attribute vector
// of the same length as the original value segment mapping each row to
// a dictionary index.
type DictionarySegment[T Element] struct {
	typ       ElementType
	dictionary []T
	attributes AttributeVector
}

func (s *DictionarySegment[T]) ElementType() ElementType { return s.typ }

func (s *DictionarySegment[T]) Size() int { return s.attributes.Size() }

func (s *DictionarySegment[T]) At(i int) Value {
	return valueOf(s.typ, s.dictionary[s.attributes.Get(i)])
}

func (s *DictionarySegment[T]) Append(Value) error {
	return ErrImmutableSegment
}

func (s *DictionarySegment[T]) LowerBound(v Value) uint32 {
	target := elementOf[T](s.typ, mustCast(v, s.typ))
	i := sort.Search(len(s.dictionary), func(i int) bool {
		return cmp.Compare(s.dictionary[i], target) >= 0
	})
	if i == len(s.dictionary) {
		return InvalidID
	}
	return uint32(i)
}

func (s *DictionarySegment[T]) UpperBound(v Value) uint32 {
	target := elementOf[T](s.typ, mustCast(v, s.typ))
	i := sort.Search(len(s.dictionary), func(i int) bool {
		return cmp.Compare(s.dictionary[i], target) > 0
	})
	if i == len(s.dictionary) {
		return InvalidID
	}
	return uint32(i)
}

func (s *DictionarySegment[T]) ValueByID(id uint32) Value {
	return valueOf(s.typ, s.dictionary[id])
}

func (s *DictionarySegment[T]) DictionarySize() int { return len(s.dictionary) }

func (s *DictionarySegment[T]) AttributeVector() AttributeVector { return s.attributes }

// mustCast casts v to typ, panicking on failure. Used only where the
// caller already established type compatibility (the scan resolves and
// checks the search value's type before ever reaching a dictionary
// segment), matching the original source's unchecked type_cast<T> calls
// inside DictionaryColumn.
func mustCast(v Value, typ ElementType) Value {
	casted, err := Cast(v, typ)
	if err != nil {
		panic(err)
	}
	return casted
}

// buildDictionarySegment compresses a value segment into a dictionary
// segment per spec.md §4.7: sort a copy of the values, deduplicate, pick
// the narrowest fitting attribute-vector width, then binary-search every
// original row into the new dictionary.
func buildDictionarySegment[T Element](vs *ValueSegment[T]) (*DictionarySegment[T], error) {
	original := vs.Values()

	dict := make([]T, len(original))
	copy(dict, original)
	sort.Slice(dict, func(i, j int) bool { return cmp.Compare(dict[i], dict[j]) < 0 })
	dict = compactSorted(dict)

	width, err := widthFor(len(dict))
	if err != nil {
		return nil, err
	}

	attrs := NewAttributeVector(len(original), width)
	for row, value := range original {
		idx := sort.Search(len(dict), func(i int) bool {
			return cmp.Compare(dict[i], value) >= 0
		})
		attrs.Set(row, uint32(idx))
	}

	return &DictionarySegment[T]{typ: vs.typ, dictionary: dict, attributes: attrs}, nil
}

// compactSorted removes consecutive duplicate elements from a sorted
// slice in place, returning the deduplicated prefix.
func compactSorted[T Element](sorted []T) []T {
	if len(sorted) == 0 {
		return sorted
	}
	j := 0
	for i := 1; i < len(sorted); i++ {
		if cmp.Compare(sorted[i], sorted[j]) != 0 {
			j++
			sorted[j] = sorted[i]
		}
	}
	return sorted[:j+1]
}

// newDictionarySegmentFor dispatches compression on the element-type tag.
func newDictionarySegmentFor(typ ElementType, source Segment) (Segment, error) {
	switch typ {
	case ElementInt32:
		return buildDictionarySegment(source.(*ValueSegment[int32]))
	case ElementInt64:
		return buildDictionarySegment(source.(*ValueSegment[int64]))
	case ElementFloat32:
		return buildDictionarySegment(source.(*ValueSegment[float32]))
	case ElementFloat64:
		return buildDictionarySegment(source.(*ValueSegment[float64]))
	case ElementString:
		return buildDictionarySegment(source.(*ValueSegment[string]))
	default:
		panic("unknown element type")
	}
}
