package chunkstore

// TableConfig configures a new table, playing the structural role the
// teacher's Config struct plays for Store, minus the directory and
// on-disk segment-size fields that only make sense for a persisted
// store.
type TableConfig struct {
	// ChunkSize is the target row capacity of every chunk but the tail.
	// Zero means unbounded: the table never grows past its first chunk.
	ChunkSize uint32
}

// NewTableFromConfig builds a table from cfg.
func NewTableFromConfig(cfg TableConfig) *Table {
	return NewTable(cfg.ChunkSize)
}
