package chunkstore

import (
	"fmt"

	"github.com/chunkstore/chunkstore/ref"
	"github.com/v2pro/plz/countlog"
)

// Table holds a column schema (names and element types), an ordered
// sequence of chunks, and a target chunk capacity (0 means unbounded —
// a single chunk).
type Table struct {
	columnNames []string
	columnTypes []ElementType
	chunks      []*Chunk
	chunkSize   uint32
	readOnly    bool
	handle      *ref.Counted[*Table]
}

// NewTable creates a table with the given target chunk capacity and one
// initial empty chunk, mirroring Table::Table(chunk_size) in the
// original source. Every table owns one canonical shared handle, used to
// let reference segments and the registry hold a reference without
// assuming disjoint ownership (spec.md §5).
func NewTable(chunkSize uint32) *Table {
	t := &Table{chunkSize: chunkSize}
	t.handle = ref.New("table", t)
	t.createNewChunk()
	return t
}

// Handle returns the table's canonical shared handle.
func (t *Table) Handle() *ref.Counted[*Table] { return t.handle }

// AddColumnDefinition appends to the schema only, without touching
// existing chunks. The table is left in a temporarily invalid state
// until AddColumn or an equivalent extends every chunk to match.
func (t *Table) AddColumnDefinition(name string, typ ElementType) {
	t.columnNames = append(t.columnNames, name)
	t.columnTypes = append(t.columnTypes, typ)
}

// AddColumn extends the schema and appends a fresh value segment of typ
// to every existing chunk. Fails with ErrNonEmptyAddColumn if the table
// already holds rows.
func (t *Table) AddColumn(name string, typ ElementType) error {
	if t.RowCount() > 0 {
		return fmt.Errorf("%w: column %q, table has %d rows", ErrNonEmptyAddColumn, name, t.RowCount())
	}
	t.AddColumnDefinition(name, typ)
	for _, chunk := range t.chunks {
		chunk.AddSegment(newValueSegmentFor(typ))
	}
	return nil
}

// Append appends one row. If the tail chunk is at target capacity, a new
// empty chunk is grown from the schema first.
func (t *Table) Append(row []Value) error {
	tail := t.chunks[len(t.chunks)-1]
	if t.chunkSize > 0 && tail.Size() >= t.chunkSize {
		t.createNewChunk()
		tail = t.chunks[len(t.chunks)-1]
	}
	return tail.Append(row)
}

func (t *Table) createNewChunk() {
	chunk := NewChunk()
	for _, typ := range t.columnTypes {
		chunk.AddSegment(newValueSegmentFor(typ))
	}
	t.chunks = append(t.chunks, chunk)
	countlog.Trace("event!table.grew chunk", "chunkCount", len(t.chunks))
}

// ColCount returns the number of columns in the schema.
func (t *Table) ColCount() uint16 { return uint16(len(t.columnNames)) }

// RowCount sums the size of every chunk (spec.md §9 adopts the
// summation form over the capacity-times-chunks shortcut, since the
// latter assumes every non-tail chunk is exactly full, which compression
// and partially-filled chunks can violate).
func (t *Table) RowCount() uint64 {
	var n uint64
	for _, c := range t.chunks {
		n += uint64(c.Size())
	}
	return n
}

// ChunkCount returns the number of chunks.
func (t *Table) ChunkCount() uint32 { return uint32(len(t.chunks)) }

// ChunkSize returns the target chunk capacity (0 = unbounded).
func (t *Table) ChunkSize() uint32 { return t.chunkSize }

// ColumnNames returns the schema's column names, in order.
func (t *Table) ColumnNames() []string { return t.columnNames }

// ColumnName returns the name of column id.
func (t *Table) ColumnName(id uint16) (string, error) {
	if int(id) >= len(t.columnNames) {
		return "", fmt.Errorf("%w: column id %d", ErrIndexOutOfRange, id)
	}
	return t.columnNames[id], nil
}

// ColumnType returns the element type of column id.
func (t *Table) ColumnType(id uint16) (ElementType, error) {
	if int(id) >= len(t.columnTypes) {
		return 0, fmt.Errorf("%w: column id %d", ErrIndexOutOfRange, id)
	}
	return t.columnTypes[id], nil
}

// ColumnIDByName resolves a column name via linear search.
func (t *Table) ColumnIDByName(name string) (uint16, error) {
	for i, n := range t.columnNames {
		if n == name {
			return uint16(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// Chunk returns the chunk at the given index.
func (t *Table) Chunk(id ChunkID) (*Chunk, error) {
	if uint32(id) >= uint32(len(t.chunks)) {
		return nil, fmt.Errorf("%w: chunk id %d (have %d)", ErrIndexOutOfRange, id, len(t.chunks))
	}
	return t.chunks[id], nil
}

// EmplaceChunk appends an already-built chunk, used by the scan operator
// to assemble its single-chunk result table.
func (t *Table) EmplaceChunk(c *Chunk) {
	t.chunks = append(t.chunks, c)
}

// MarkReadOnly declares the table read-only. CompressChunk does not
// consult this flag, but callers use it to signal that the table is done
// growing before compressing what was its tail chunk. A table-wrapper
// operator calls this when the table becomes an operator's input
// (spec.md §4.5, §5).
func (t *Table) MarkReadOnly() {
	t.readOnly = true
}

// IsReadOnly reports whether the table has been declared read-only.
func (t *Table) IsReadOnly() bool { return t.readOnly }

// CompressChunk replaces every segment of the target chunk with a
// dictionary segment built from its current value segment, unconditionally
// — like the original source's Table::compress_chunk, it does not check
// whether id is the tail chunk or whether the table is read-only. A caller
// that compresses the tail chunk of a table it keeps appending to will
// see every subsequent Append fail with ErrImmutableSegment until that
// chunk is at target capacity and a new tail chunk is grown; with a target
// capacity of 0 no new chunk is ever grown.
func (t *Table) CompressChunk(id ChunkID) error {
	chunk, err := t.Chunk(id)
	if err != nil {
		return err
	}

	compressed := NewChunk()
	for col := uint16(0); col < chunk.SegmentCount(); col++ {
		source, err := chunk.Segment(col)
		if err != nil {
			return err
		}
		dictSegment, err := newDictionarySegmentFor(source.ElementType(), source)
		if err != nil {
			return err
		}
		compressed.AddSegment(dictSegment)
	}
	t.chunks[id] = compressed
	countlog.Trace("event!table.compressed chunk", "chunkID", id)
	return nil
}
