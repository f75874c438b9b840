package task

import (
	"fmt"
	"sort"
)

// Columns maps a column id to its ordered list of tasks.
type Columns map[string][]Task

// Bucket groups tasks by column and sorts each bucket by stored order.
// Buckets exist for every known column even when empty; tasks carrying an
// unrecognized column id keep their stored bucket.
func Bucket(tasks []Task) Columns {
	cols := Columns{}
	for _, id := range BoardColumns {
		cols[id] = []Task{}
	}
	for _, t := range tasks {
		cols[t.ColumnID] = append(cols[t.ColumnID], t)
	}
	for id := range cols {
		items := cols[id]
		sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	}
	return cols
}

// AddToColumn appends t to the end of the named column, assigning its order.
// The input map is left unmodified.
func AddToColumn(cols Columns, columnID string, t Task) (Columns, error) {
	if !KnownColumn(columnID) {
		return nil, fmt.Errorf("adding to column %q: %w", columnID, ErrUnknownColumn)
	}
	out := clone(cols)
	t.ColumnID = columnID
	t.Order = len(out[columnID])
	out[columnID] = append(out[columnID], t)
	return out, nil
}

// MoveBetweenColumns removes the task at fromIndex in fromCol and inserts it
// into toCol at toIndex, clamped to the destination bounds. The operation is
// total for any in-range fromIndex; a same-column, same-index move leaves the
// sequence unchanged. The caller is responsible for recomputing contiguous
// order values and, on a cross-column move, the task's status.
func MoveBetweenColumns(cols Columns, fromCol, toCol string, fromIndex, toIndex int) (Columns, error) {
	src := cols[fromCol]
	if fromIndex < 0 || fromIndex >= len(src) {
		return nil, fmt.Errorf("index %d out of range for column %q of length %d: %w",
			fromIndex, fromCol, len(src), ErrIndexOutOfRange)
	}

	out := clone(cols)
	moved := out[fromCol][fromIndex]
	out[fromCol] = append(append([]Task{}, out[fromCol][:fromIndex]...), out[fromCol][fromIndex+1:]...)

	dst := out[toCol]
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(dst) {
		toIndex = len(dst)
	}

	moved.ColumnID = toCol
	inserted := make([]Task, 0, len(dst)+1)
	inserted = append(inserted, dst[:toIndex]...)
	inserted = append(inserted, moved)
	inserted = append(inserted, dst[toIndex:]...)
	out[toCol] = inserted

	return out, nil
}

// Reindex rewrites order values in the named columns to be contiguous from
// zero. The input map is left unmodified.
func Reindex(cols Columns, columnIDs ...string) Columns {
	out := clone(cols)
	for _, id := range columnIDs {
		for i := range out[id] {
			out[id][i].Order = i
		}
	}
	return out
}

func clone(cols Columns) Columns {
	out := make(Columns, len(cols))
	for id, items := range cols {
		out[id] = append([]Task(nil), items...)
	}
	return out
}
