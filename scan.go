package chunkstore

import (
	"fmt"

	"github.com/chunkstore/chunkstore/search"
	"github.com/v2pro/plz/countlog"
)

// ScanType re-exports the search package's predicate enumeration at the
// package's public surface.
type ScanType = search.ScanType

const (
	OpEquals            = search.OpEquals
	OpNotEquals         = search.OpNotEquals
	OpLessThan          = search.OpLessThan
	OpLessThanEquals    = search.OpLessThanEquals
	OpGreaterThan       = search.OpGreaterThan
	OpGreaterThanEquals = search.OpGreaterThanEquals
)

// TableScan is the engine-critical predicate evaluator: it dispatches on
// the target column's element type, then per chunk on the segment
// encoding, producing a single result table of reference segments over
// the original base table.
type TableScan struct {
	baseOperator
	in          Operator
	column      uint16
	scanType    ScanType
	searchValue Value
}

// NewTableScan builds a scan over column of in's eventual output,
// evaluating scanType against searchValue.
func NewTableScan(in Operator, column uint16, scanType ScanType, searchValue Value) *TableScan {
	return &TableScan{in: in, column: column, scanType: scanType, searchValue: searchValue}
}

func (s *TableScan) ColumnID() uint16        { return s.column }
func (s *TableScan) Type() ScanType          { return s.scanType }
func (s *TableScan) SearchValue() Value      { return s.searchValue }

func (s *TableScan) Execute() error {
	if s.executed {
		return nil
	}
	if err := s.in.Execute(); err != nil {
		return err
	}
	table := s.in.GetOutput()

	columnType, err := table.ColumnType(s.column)
	if err != nil {
		return err
	}
	if s.searchValue.Type() != columnType {
		return fmt.Errorf("%w: search value is %v, column %d is %v", ErrTypeMismatch, s.searchValue.Type(), s.column, columnType)
	}

	countlog.Trace("event!scan.execute", "column", s.column, "scanType", s.scanType)

	result, err := dispatchScan(columnType, table, s.column, s.scanType, s.searchValue)
	if err != nil {
		return err
	}
	s.output = result
	s.executed = true
	return nil
}

// dispatchScan dispatches on the column's element-type tag, the
// type-tag-to-concrete-impl table spec.md §9 calls for in place of
// template instantiation over the scan body.
func dispatchScan(typ ElementType, table *Table, column uint16, op ScanType, searchValue Value) (*Table, error) {
	switch typ {
	case ElementInt32:
		return scanTyped[int32](table, column, op, searchValue)
	case ElementInt64:
		return scanTyped[int64](table, column, op, searchValue)
	case ElementFloat32:
		return scanTyped[float32](table, column, op, searchValue)
	case ElementFloat64:
		return scanTyped[float64](table, column, op, searchValue)
	case ElementString:
		return scanTyped[string](table, column, op, searchValue)
	default:
		return nil, fmt.Errorf("%w: unknown element type %v", ErrTypeMismatch, typ)
	}
}

// scanTyped is the monomorphic scan body for one element type T,
// instantiated once per the five supported element types by
// dispatchScan.
func scanTyped[T Element](table *Table, column uint16, op ScanType, searchValueBoxed Value) (*Table, error) {
	typ := elementTypeOf[T]()
	casted, err := Cast(searchValueBoxed, typ)
	if err != nil {
		return nil, err
	}
	searchValue := elementOf[T](typ, casted)

	var positions PositionList
	var baseTable *Table
	unwrapped := false

	for chunkID := ChunkID(0); uint32(chunkID) < table.ChunkCount(); chunkID++ {
		chunk, err := table.Chunk(chunkID)
		if err != nil {
			return nil, err
		}
		segment, err := chunk.Segment(column)
		if err != nil {
			return nil, err
		}

		switch seg := segment.(type) {
		case *ValueSegment[T]:
			scanValueSegment(seg, searchValue, op, chunkID, &positions)

		case *DictionarySegment[T]:
			scanDictionarySegment(seg, searchValue, op, chunkID, &positions)

		case referenceSegment:
			refTable := seg.ReferencedTable()
			if !unwrapped {
				baseTable = refTable
				unwrapped = true
			} else if baseTable != refTable {
				return nil, fmt.Errorf("%w: scan input references more than one base table", ErrHeterogeneousReference)
			}
			if err := scanReferenceSegment[T](seg, column, op, searchValue, &positions); err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("%w: unrecognised segment implementation for column %d", ErrTypeMismatch, column)
		}
	}

	if !unwrapped {
		baseTable = table
	}

	return buildResultTable(baseTable, table, positions)
}

// scanValueSegment implements the linear-scan branch of spec.md §4.8
// step 4b: for each offset, test the comparator and append matches.
func scanValueSegment[T Element](seg *ValueSegment[T], searchValue T, op ScanType, chunkID ChunkID, out *PositionList) {
	compare := search.ComparatorFor[T](op)
	for i, v := range seg.Values() {
		if compare(v, searchValue) {
			*out = append(*out, RowID{ChunkID: chunkID, ChunkOffset: ChunkOffset(i)})
		}
	}
}

// scanDictionarySegment implements the dictionary fast path of spec.md
// §4.8: compute lower_bound once, then run a width-specialised
// monomorphic loop over the attribute vector.
func scanDictionarySegment[T Element](seg *DictionarySegment[T], searchValue T, op ScanType, chunkID ChunkID, out *PositionList) {
	typ := elementTypeOf[T]()
	boxedSearch := valueOf(typ, searchValue)
	vid := seg.LowerBound(boxedSearch)
	contains := vid != InvalidID && seg.ValueByID(vid) == boxedSearch

	switch av := seg.AttributeVector().(type) {
	case *attributeVector8:
		scanAttributeValues(av.values, vid, contains, op, chunkID, out)
	case *attributeVector16:
		scanAttributeValues(av.values, vid, contains, op, chunkID, out)
	case *attributeVector32:
		scanAttributeValues(av.values, vid, contains, op, chunkID, out)
	}
}

// scanAttributeValues is the per-width monomorphic inner loop: a single
// conditional (MatchesAttributeID) inside the loop, no virtual dispatch
// per element.
func scanAttributeValues[W uint8 | uint16 | uint32](values []W, vid uint32, contains bool, op ScanType, chunkID ChunkID, out *PositionList) {
	for i, id := range values {
		if search.MatchesAttributeID(op, uint32(id), vid, contains) {
			*out = append(*out, RowID{ChunkID: chunkID, ChunkOffset: ChunkOffset(i)})
		}
	}
}

// scanReferenceSegment implements the pass-through branch of spec.md
// §4.8 step 4b: walk the reference segment's already-published position
// list, re-evaluate the predicate against the ultimate base table's
// segment at each listed row, and append matching row ids verbatim
// (never rewritten).
func scanReferenceSegment[T Element](seg referenceSegment, column uint16, op ScanType, searchValue T, out *PositionList) error {
	compare := search.ComparatorFor[T](op)
	refTable := seg.ReferencedTable()

	for i := 0; i < seg.Size(); i++ {
		rowID := seg.PosList()[i]
		chunk, err := refTable.Chunk(rowID.ChunkID)
		if err != nil {
			return err
		}
		baseSegment, err := chunk.Segment(column)
		if err != nil {
			return err
		}

		var matched bool
		switch s := baseSegment.(type) {
		case *ValueSegment[T]:
			matched = compare(s.Values()[rowID.ChunkOffset], searchValue)
		case *DictionarySegment[T]:
			matched = compare(elementOf[T](s.ElementType(), s.At(int(rowID.ChunkOffset))), searchValue)
		default:
			return fmt.Errorf("%w: reference segment points at a non-base segment", ErrTypeMismatch)
		}
		if matched {
			*out = append(*out, rowID)
		}
	}
	return nil
}

// buildResultTable assembles the scan's single-chunk result table: one
// reference segment per input column, all sharing positions, all
// pointing at baseTable (spec.md §4.8 step 5).
func buildResultTable(baseTable, schemaTable *Table, positions PositionList) (*Table, error) {
	result := NewTable(0)
	result.chunks = nil // the scan supplies exactly one chunk of its own

	chunk := NewChunk()
	for col := uint16(0); col < schemaTable.ColCount(); col++ {
		name, err := schemaTable.ColumnName(col)
		if err != nil {
			return nil, err
		}
		typ, err := schemaTable.ColumnType(col)
		if err != nil {
			return nil, err
		}
		result.AddColumnDefinition(name, typ)

		refSegment, err := NewReferenceSegment(baseTable, col, positions)
		if err != nil {
			return nil, err
		}
		chunk.AddSegment(refSegment)
	}
	result.EmplaceChunk(chunk)
	return result, nil
}

func elementTypeOf[T Element]() ElementType {
	var zero T
	switch any(zero).(type) {
	case int32:
		return ElementInt32
	case int64:
		return ElementInt64
	case float32:
		return ElementFloat32
	case float64:
		return ElementFloat64
	case string:
		return ElementString
	default:
		panic("unknown element type")
	}
}
