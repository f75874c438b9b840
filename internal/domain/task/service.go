package task

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service orchestrates board task operations around the ordering primitives.
// The engine assumes a single logical writer per board and enforces it with a
// per-project lock: every mutation is read state, compute (pure), write state
// under that lock.
type Service struct {
	repo   Repository
	logger logrus.FieldLogger

	mu     sync.Mutex
	boards map[string]*sync.Mutex
}

// NewService creates a task service.
func NewService(repo Repository, logger logrus.FieldLogger) *Service {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Service{repo: repo, logger: logger, boards: make(map[string]*sync.Mutex)}
}

// AddRequest describes a task creation.
type AddRequest struct {
	ColumnID    string
	Title       string
	Description string
}

// UpdateRequest describes a partial task update. Nil fields are left unchanged.
type UpdateRequest struct {
	Title       *string
	Description *string
}

// MoveRequest describes a task move between (or within) columns.
type MoveRequest struct {
	FromColumn string
	ToColumn   string
	FromIndex  int
	ToIndex    int
}

// Add creates a task at the end of the requested column, deriving its status
// from the column.
func (s *Service) Add(ctx context.Context, projectID string, req AddRequest) (*Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	lock := s.boardLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	cols, err := s.loadColumns(ctx, projectID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := Task{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Title:       title,
		Description: req.Description,
		Status:      s.statusFor(req.ColumnID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	cols, err = AddToColumn(cols, req.ColumnID, t)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveColumns(ctx, projectID, Columns{req.ColumnID: cols[req.ColumnID]}); err != nil {
		return nil, fmt.Errorf("saving tasks: %w", err)
	}

	created := cols[req.ColumnID][len(cols[req.ColumnID])-1]
	return &created, nil
}

// Move relocates a task, recomputing contiguous order values for both
// affected columns and re-deriving status on a cross-column move. There is no
// optimistic-lock check against the indices the caller computed: callers with
// a stale view get an index error or must re-fetch.
func (s *Service) Move(ctx context.Context, projectID string, req MoveRequest) error {
	if !KnownColumn(req.ToColumn) {
		return fmt.Errorf("moving to column %q: %w", req.ToColumn, ErrUnknownColumn)
	}

	lock := s.boardLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	cols, err := s.loadColumns(ctx, projectID)
	if err != nil {
		return err
	}

	// Landing index after clamping, needed to touch the moved task below.
	landing := req.ToIndex
	dstLen := len(cols[req.ToColumn])
	if req.FromColumn == req.ToColumn {
		dstLen--
	}
	if landing < 0 {
		landing = 0
	}
	if landing > dstLen {
		landing = dstLen
	}

	cols, err = MoveBetweenColumns(cols, req.FromColumn, req.ToColumn, req.FromIndex, req.ToIndex)
	if err != nil {
		return err
	}
	cols = Reindex(cols, req.FromColumn, req.ToColumn)

	if req.FromColumn != req.ToColumn {
		moved := cols[req.ToColumn][landing]
		moved.Status = s.statusFor(req.ToColumn)
		moved.UpdatedAt = time.Now().UTC()
		cols[req.ToColumn][landing] = moved
	}

	save := Columns{
		req.FromColumn: cols[req.FromColumn],
		req.ToColumn:   cols[req.ToColumn],
	}
	if err := s.repo.SaveColumns(ctx, projectID, save); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}

// Update merges the given fields over an existing task. The task is looked up
// across all columns so a stale column hint from the client doesn't matter.
func (s *Service) Update(ctx context.Context, projectID, id string, req UpdateRequest) (*Task, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, ErrTitleRequired
	}

	lock := s.boardLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	cols, err := s.loadColumns(ctx, projectID)
	if err != nil {
		return nil, err
	}

	colID, idx, ok := findTask(cols, id)
	if !ok {
		return nil, ErrTaskNotFound
	}

	t := cols[colID][idx]
	if req.Title != nil {
		t.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	t.UpdatedAt = time.Now().UTC()
	cols[colID][idx] = t

	if err := s.repo.SaveColumns(ctx, projectID, Columns{colID: cols[colID]}); err != nil {
		return nil, fmt.Errorf("saving tasks: %w", err)
	}
	return &t, nil
}

// Delete removes a task and reindexes the remaining items of its column so
// order values stay contiguous.
func (s *Service) Delete(ctx context.Context, projectID, id, columnID string) error {
	lock := s.boardLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	cols, err := s.loadColumns(ctx, projectID)
	if err != nil {
		return err
	}

	colID := columnID
	idx := indexOf(cols[colID], id)
	if idx < 0 {
		// The task may have moved since the caller fetched the board.
		var ok bool
		colID, idx, ok = findTask(cols, id)
		if !ok {
			return ErrTaskNotFound
		}
	}

	cols[colID] = append(append([]Task{}, cols[colID][:idx]...), cols[colID][idx+1:]...)
	cols = Reindex(cols, colID)

	if err := s.repo.SaveColumns(ctx, projectID, Columns{colID: cols[colID]}); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}

// Reorder rewrites a column's order to match the given id sequence. Ids that
// are not in the column are dropped; column members missing from the sequence
// are appended in their prior relative order. Either mismatch is logged as a
// stale-view signal rather than failing the whole reorder.
func (s *Service) Reorder(ctx context.Context, projectID, columnID string, orderedIDs []string) error {
	if !KnownColumn(columnID) {
		return fmt.Errorf("reordering column %q: %w", columnID, ErrUnknownColumn)
	}

	lock := s.boardLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	cols, err := s.loadColumns(ctx, projectID)
	if err != nil {
		return err
	}

	current := cols[columnID]
	byID := make(map[string]Task, len(current))
	for _, t := range current {
		byID[t.ID] = t
	}

	seq := make([]Task, 0, len(current))
	seen := make(map[string]bool, len(orderedIDs))
	dropped := 0
	for _, id := range orderedIDs {
		t, ok := byID[id]
		if !ok {
			dropped++
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		seq = append(seq, t)
	}
	missing := 0
	for _, t := range current {
		if !seen[t.ID] {
			missing++
			seq = append(seq, t)
		}
	}
	if dropped > 0 || missing > 0 {
		s.logger.WithFields(logrus.Fields{
			"project": projectID,
			"column":  columnID,
			"dropped": dropped,
			"missing": missing,
		}).Warn("reorder sequence did not match column contents")
	}

	cols[columnID] = seq
	cols = Reindex(cols, columnID)

	if err := s.repo.SaveColumns(ctx, projectID, Columns{columnID: cols[columnID]}); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}

func (s *Service) boardLock(projectID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.boards[projectID]
	if !ok {
		l = &sync.Mutex{}
		s.boards[projectID] = l
	}
	return l
}

func (s *Service) loadColumns(ctx context.Context, projectID string) (Columns, error) {
	tasks, err := s.repo.FetchForProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("fetching tasks: %w", err)
	}
	cols := Bucket(tasks)
	for id := range cols {
		if !KnownColumn(id) {
			s.logger.WithFields(logrus.Fields{
				"project": projectID,
				"column":  id,
				"tasks":   len(cols[id]),
			}).Warn("tasks found in unrecognized column")
		}
	}
	return cols, nil
}

func (s *Service) statusFor(columnID string) Status {
	if !KnownColumn(columnID) {
		s.logger.WithField("column", columnID).Warn("unknown column, defaulting status to todo")
	}
	return StatusForColumn(columnID)
}

func findTask(cols Columns, id string) (string, int, bool) {
	for colID, items := range cols {
		for i := range items {
			if items[i].ID == id {
				return colID, i, true
			}
		}
	}
	return "", 0, false
}

func indexOf(items []Task, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
