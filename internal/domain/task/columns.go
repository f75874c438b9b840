package task

// Well-known board columns. Columns are not persisted entities; they are a
// fixed set of buckets used to group tasks and derive their status.
const (
	ColumnIdeas      = "ideas"
	ColumnInProgress = "in-progress"
	ColumnCompleted  = "completed"
)

// BoardColumns lists the board columns in display order.
var BoardColumns = []string{ColumnIdeas, ColumnInProgress, ColumnCompleted}

// KnownColumn reports whether id names one of the board columns.
func KnownColumn(id string) bool {
	for _, c := range BoardColumns {
		if c == id {
			return true
		}
	}
	return false
}

// StatusForColumn maps a column to the status of the tasks it holds. The
// mapping is total: an unrecognized column falls back to todo so stale column
// ids in persisted data degrade instead of failing. Callers treat the
// fallback as a data-quality signal and log it.
func StatusForColumn(columnID string) Status {
	switch columnID {
	case ColumnInProgress:
		return StatusInProgress
	case ColumnCompleted:
		return StatusDone
	default:
		return StatusTodo
	}
}
