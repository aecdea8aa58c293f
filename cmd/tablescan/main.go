// Command tablescan is a convenience driver, never imported by the
// storage/scan core itself: it builds a demo table, optionally
// dictionary-compresses its non-tail chunks, runs one scan against it,
// and prints a StorageManager::print-style summary of both tables.
//
// Grounded on original_source's benchmark/main.cpp create_table helper
// (int column, N chunks of rows-per-chunk rows, every chunk but the last
// compressed) and StorageManager::print (name / column count / row
// count / chunk count).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chunkstore/chunkstore"
)

func main() {
	chunks := flag.Int("chunks", 4, "number of chunks to build")
	rowsPerChunk := flag.Int("rows-per-chunk", 1000, "rows per chunk")
	compress := flag.Bool("compress", true, "dictionary-compress every chunk but the last")
	threshold := flag.Int64("ge", -1, "scan for int_column >= this value (default: half the row count)")
	flag.Parse()

	if *threshold < 0 {
		*threshold = int64(*chunks) * int64(*rowsPerChunk) / 2
	}

	table := buildDemoTable(*chunks, *rowsPerChunk, *compress)

	registry := chunkstore.Default()
	if err := registry.AddTable("demo", table); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSummary("demo", table)

	wrapper := chunkstore.NewTableWrapper(table)
	scan := chunkstore.NewTableScan(wrapper, 0, chunkstore.OpGreaterThanEquals, chunkstore.Int32Value(int32(*threshold)))
	if err := scan.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "scan error: %v\n", err)
		os.Exit(1)
	}

	printSummary("demo (scan result)", scan.GetOutput())
}

func buildDemoTable(chunks, rowsPerChunk int, compress bool) *chunkstore.Table {
	table := chunkstore.NewTableFromConfig(chunkstore.TableConfig{ChunkSize: uint32(rowsPerChunk)})
	if err := table.AddColumn("int_column", chunkstore.ElementInt32); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	row := 0
	for c := 0; c < chunks; c++ {
		for r := 0; r < rowsPerChunk; r++ {
			if err := table.Append([]chunkstore.Value{chunkstore.Int32Value(int32(row))}); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			row++
		}
	}

	if compress {
		for c := chunkstore.ChunkID(0); uint32(c) < table.ChunkCount()-1; c++ {
			if err := table.CompressChunk(c); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
		}
	}
	return table
}

func printSummary(name string, table *chunkstore.Table) {
	fmt.Printf("Name: %s\n", name)
	fmt.Printf("# Columns: %d\n", table.ColCount())
	fmt.Printf("# Rows: %d\n", table.RowCount())
	fmt.Printf("# Chunks: %d\n", table.ChunkCount())
}
