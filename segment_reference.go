package chunkstore

import "github.com/chunkstore/chunkstore/ref"

// ReferenceSegment projects a shared position list over a base table's
// column. It owns no values; indexed read at offset i returns the
// element at positions[i] of the referenced table. Per spec.md §3, the
// referenced table must be a base table — never itself a table of
// reference segments.
type ReferenceSegment struct {
	typ       ElementType
	table     *ref.Counted[*Table]
	column    uint16
	positions PositionList
}

// NewReferenceSegment builds a reference segment over column of table,
// sharing the published position list positions and acquiring a
// reference on table's shared handle.
func NewReferenceSegment(table *Table, column uint16, positions PositionList) (*ReferenceSegment, error) {
	typ, err := table.ColumnType(column)
	if err != nil {
		return nil, err
	}
	handle := table.Handle()
	handle.Acquire()
	return &ReferenceSegment{typ: typ, table: handle, column: column, positions: positions}, nil
}

func (s *ReferenceSegment) ElementType() ElementType { return s.typ }

func (s *ReferenceSegment) Size() int { return len(s.positions) }

func (s *ReferenceSegment) At(i int) Value {
	rowID := s.positions[i]
	chunk, err := s.table.Value().Chunk(rowID.ChunkID)
	if err != nil {
		panic(err)
	}
	segment, err := chunk.Segment(s.column)
	if err != nil {
		panic(err)
	}
	return segment.At(int(rowID.ChunkOffset))
}

func (s *ReferenceSegment) Append(Value) error {
	return ErrImmutableSegment
}

func (s *ReferenceSegment) PosList() PositionList { return s.positions }

func (s *ReferenceSegment) ReferencedTable() *Table { return s.table.Value() }

func (s *ReferenceSegment) ReferencedColumn() uint16 { return s.column }

// Release drops this segment's share of the referenced base table. It is
// not required for correctness — the GC reclaims the table once nothing
// references it — but keeps the refcount accurate for callers that
// inspect it (registry bookkeeping, tests).
func (s *ReferenceSegment) Release() bool {
	return s.table.Release()
}
