package table

import (
	"cmp"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"
)

// Order is the sort direction of a column.
type Order int

const (
	None Order = iota
	Asc
	Desc
)

// String returns "asc", "desc" or "".
func (o Order) String() string {
	switch o {
	case Asc:
		return "asc"
	case Desc:
		return "desc"
	default:
		return ""
	}
}

// SortState names the sorted column. Key is empty exactly when Order is None.
type SortState struct {
	Key   string
	Order Order
}

// CycleSort advances the sort for a click on column key. The same column
// cycles ascending, descending, unsorted; another column starts ascending
// and drops the previous column's sort.
func CycleSort(s SortState, key string) SortState {
	if s.Key != key || s.Order == None {
		return SortState{Key: key, Order: Asc}
	}
	if s.Order == Asc {
		return SortState{Key: key, Order: Desc}
	}
	return SortState{}
}

// Compare orders two cell values. Numbers compare numerically, strings
// lexically, times chronologically and booleans false before true. Values of
// different kinds, and nil, compare equal.
func Compare(a, b any) int {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
		return 0
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
		return 0
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
		return 0
	}

	if x, ok := asInt(a); ok {
		if y, ok := asInt(b); ok {
			return cmp.Compare(x, y)
		}
	}
	if x, ok := asFloat(a); ok {
		if y, ok := asFloat(b); ok {
			return cmp.Compare(x, y)
		}
	}
	return 0
}

func asInt(v any) (int64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}

// order returns the positions of data in display order. Unsorted state
// yields the input order. Ties keep their input order.
func order(data []Row, s SortState) []int {
	idx := make([]int, len(data))
	for i := range idx {
		idx[i] = i
	}
	if s.Key == "" || s.Order == None {
		return idx
	}
	sort.SliceStable(idx, func(i, j int) bool {
		c := Compare(data[idx[i]][s.Key], data[idx[j]][s.Key])
		if s.Order == Desc {
			c = -c
		}
		return c < 0
	})
	return idx
}

// Sorted returns data in display order as a new slice. data is never
// modified.
func Sorted(data []Row, s SortState) []Row {
	out := make([]Row, len(data))
	for i, pos := range order(data, s) {
		out[i] = data[pos]
	}
	return out
}
