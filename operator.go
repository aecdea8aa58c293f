package chunkstore

// Operator is a lazy unary computation node producing a table. Execute
// computes and caches the output; GetOutput returns that cache and is
// undefined before Execute runs.
type Operator interface {
	Execute() error
	GetOutput() *Table
}

// baseOperator holds the idempotent execute/cache bookkeeping shared by
// every operator, the way the original source's AbstractOperator does.
type baseOperator struct {
	output   *Table
	executed bool
}

func (b *baseOperator) GetOutput() *Table { return b.output }

// TableWrapper adapts an existing table into the operator framework. Its
// Execute marks the wrapped table read-only: once a table is an
// operator's input, the caller treats it as read-only for that
// operator's lifetime (spec.md §5). The flag only signals that the table
// is done growing; CompressChunk does not check it.
type TableWrapper struct {
	baseOperator
	table *Table
}

// NewTableWrapper wraps table for use as an operator's input.
func NewTableWrapper(table *Table) *TableWrapper {
	return &TableWrapper{table: table}
}

func (w *TableWrapper) Execute() error {
	if w.executed {
		return nil
	}
	w.table.MarkReadOnly()
	w.output = w.table
	w.executed = true
	return nil
}
