package chunkstore

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireTablesEqual is the Go analogue of the original source's
// BaseTest::ASSERT_TABLE_EQ (src/test/base_test.cpp): it compares schema
// (column count, names, and types under the spec's {int,long}/{float,double}
// equivalence classes unless strictTypes) and row content, either
// order-sensitive or as a multiset, between two tables.
func requireTablesEqual(t *testing.T, left, right *Table, orderSensitive, strictTypes bool) {
	t.Helper()
	should := require.New(t)

	should.Equal(left.ColCount(), right.ColCount(), "column count differs")
	for col := uint16(0); col < left.ColCount(); col++ {
		leftName, err := left.ColumnName(col)
		should.Nil(err)
		rightName, err := right.ColumnName(col)
		should.Nil(err)
		should.Equal(leftName, rightName, "column %d name differs", col)

		leftType, err := left.ColumnType(col)
		should.Nil(err)
		rightType, err := right.ColumnType(col)
		should.Nil(err)
		if !strictTypes {
			leftType = equivalenceClass(leftType)
			rightType = equivalenceClass(rightType)
		}
		should.Equal(leftType, rightType, "column %d type differs", col)
	}

	should.Equal(left.RowCount(), right.RowCount(), "row count differs")

	leftRows := tableToMatrix(left)
	rightRows := tableToMatrix(right)
	if !orderSensitive {
		sortRows(leftRows)
		sortRows(rightRows)
	}
	for row := range leftRows {
		for col := range leftRows[row] {
			should.True(valuesEqual(leftRows[row][col], rightRows[row][col]),
				"row %d col %d differs: %v != %v", row, col, leftRows[row][col], rightRows[row][col])
		}
	}
}

// equivalenceClass folds long into int and double into float, the way
// the original's _table_equal does for non-strict type comparisons.
func equivalenceClass(typ ElementType) ElementType {
	switch typ {
	case ElementInt64:
		return ElementInt32
	case ElementFloat64:
		return ElementFloat32
	default:
		return typ
	}
}

// tableToMatrix flattens a table into row-major values, the Go analogue
// of BaseTest::_table_to_matrix.
func tableToMatrix(t *Table) [][]Value {
	matrix := make([][]Value, 0, t.RowCount())
	for c := ChunkID(0); uint32(c) < t.ChunkCount(); c++ {
		chunk, err := t.Chunk(c)
		if err != nil {
			panic(err)
		}
		size := int(chunk.Size())
		for offset := 0; offset < size; offset++ {
			row := make([]Value, chunk.SegmentCount())
			for col := uint16(0); col < chunk.SegmentCount(); col++ {
				seg, err := chunk.Segment(col)
				if err != nil {
					panic(err)
				}
				row[col] = seg.At(offset)
			}
			matrix = append(matrix, row)
		}
	}
	return matrix
}

func sortRows(rows [][]Value) {
	sort.Slice(rows, func(i, j int) bool { return rowLess(rows[i], rows[j]) })
}

func rowLess(a, b []Value) bool {
	for i := range a {
		if c := compareValues(a[i], b[i]); c != 0 {
			return c < 0
		}
	}
	return false
}

func compareValues(a, b Value) int {
	if a.typ == ElementString || b.typ == ElementString {
		switch {
		case a.str < b.str:
			return -1
		case a.str > b.str:
			return 1
		default:
			return 0
		}
	}
	af, _, _ := toFloat64(a)
	bf, _, _ := toFloat64(b)
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

// valuesEqual compares two scalar values the way the original's
// _table_equal compares matrix cells: exact for strings, EXPECT_NEAR
// (epsilon 0.0001) for everything numeric, which also absorbs the
// int/long and float/double equivalence-class conversions.
func valuesEqual(a, b Value) bool {
	if a.typ == ElementString || b.typ == ElementString {
		return a.typ == b.typ && a.str == b.str
	}
	af, _, _ := toFloat64(a)
	bf, _, _ := toFloat64(b)
	const epsilon = 0.0001
	diff := af - bf
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}
