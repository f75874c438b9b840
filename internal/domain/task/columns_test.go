package task_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwittstock/folio/internal/domain/task"
)

func TestStatusForColumn(t *testing.T) {
	require.Equal(t, task.StatusTodo, task.StatusForColumn(task.ColumnIdeas))
	require.Equal(t, task.StatusInProgress, task.StatusForColumn(task.ColumnInProgress))
	require.Equal(t, task.StatusDone, task.StatusForColumn(task.ColumnCompleted))
	require.Equal(t, task.StatusTodo, task.StatusForColumn("archived"))
	require.Equal(t, task.StatusTodo, task.StatusForColumn(""))
}

func TestKnownColumn(t *testing.T) {
	for _, id := range task.BoardColumns {
		require.True(t, task.KnownColumn(id))
	}
	require.False(t, task.KnownColumn("backlog"))
	require.False(t, task.KnownColumn(""))
}
