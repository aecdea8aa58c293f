// Package search holds the scan-type enumeration and the generic
// comparator family the table scan compiles a predicate down to. It is
// the generalisation of the teacher's per-column-type Filter structs
// (IntRangeFilter, IntValueFilter) into one comparator factory
// parameterised over the element's Go type, per spec.md §9's guidance to
// replace template instantiation with a type-tag dispatch table.
package search

import "cmp"

// ScanType enumerates the predicate kinds a table scan evaluates.
type ScanType uint8

const (
	OpEquals ScanType = iota
	OpNotEquals
	OpLessThan
	OpLessThanEquals
	OpGreaterThan
	OpGreaterThanEquals
)

// Comparator evaluates a scan predicate between a column value and the
// search value.
type Comparator[T cmp.Ordered] func(value, searchValue T) bool

// ComparatorFor returns the comparator function for op, instantiated for
// element type T.
func ComparatorFor[T cmp.Ordered](op ScanType) Comparator[T] {
	switch op {
	case OpEquals:
		return func(value, searchValue T) bool { return value == searchValue }
	case OpNotEquals:
		return func(value, searchValue T) bool { return value != searchValue }
	case OpLessThan:
		return func(value, searchValue T) bool { return value < searchValue }
	case OpLessThanEquals:
		return func(value, searchValue T) bool { return value <= searchValue }
	case OpGreaterThan:
		return func(value, searchValue T) bool { return value > searchValue }
	case OpGreaterThanEquals:
		return func(value, searchValue T) bool { return value >= searchValue }
	default:
		panic("unknown scan type")
	}
}

// MatchesAttributeID evaluates the dictionary fast-path's rewritten
// predicate directly on attribute-vector identifiers, for op and
// contains per spec.md §4.8's table. vid is the dictionary id returned
// by lower_bound(search value); the INVALID_ID sentinel compares greater
// than every attribute-vector entry, which subsumes the vid==INVALID_ID
// edge case without a separate branch.
func MatchesAttributeID(op ScanType, id, vid uint32, contains bool) bool {
	switch op {
	case OpEquals:
		return contains && id == vid
	case OpNotEquals:
		return !contains || id != vid
	case OpLessThan:
		return id < vid
	case OpLessThanEquals:
		if contains {
			return id <= vid
		}
		return id < vid
	case OpGreaterThan:
		if contains {
			return id > vid
		}
		return id >= vid
	case OpGreaterThanEquals:
		return id >= vid
	default:
		panic("unknown scan type")
	}
}
