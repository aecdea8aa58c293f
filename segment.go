package chunkstore

// Segment is the polymorphic column-segment capability shared by all
// three encodings: value, dictionary, and reference.
type Segment interface {
	// ElementType reports the element type this segment stores.
	ElementType() ElementType
	// Size returns the segment's row count.
	Size() int
	// At returns the element at offset i, boxed as a Value. Panics if
	// i is out of range, mirroring the teacher's indexed-access
	// contract and the original source's .at()-based bounds checks.
	At(i int) Value
	// Append adds one value to the segment. Dictionary and reference
	// segments always fail with ErrImmutableSegment.
	Append(v Value) error
}

// dictionarySegment is the extra surface a dictionary segment exposes to
// the scan's fast path, independent of its element type parameter.
type dictionarySegment interface {
	Segment
	// LowerBound returns the dictionary index of the first entry >= v,
	// or InvalidID if none exists.
	LowerBound(v Value) uint32
	// UpperBound returns the dictionary index of the first entry > v,
	// or InvalidID if none exists.
	UpperBound(v Value) uint32
	// ValueByID returns the dictionary entry at the given id.
	ValueByID(id uint32) Value
	// DictionarySize returns the number of distinct dictionary entries.
	DictionarySize() int
	// AttributeVector returns the shared attribute-vector handle.
	AttributeVector() AttributeVector
}

// referenceSegment is the extra surface a reference segment exposes.
type referenceSegment interface {
	Segment
	PosList() PositionList
	ReferencedTable() *Table
	ReferencedColumn() uint16
}
