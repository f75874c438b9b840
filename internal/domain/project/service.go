package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nwittstock/folio/internal/domain/task"
	"github.com/nwittstock/folio/internal/repository"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger logrus.FieldLogger
}

// NewService creates a project service.
func NewService(repo Repository, logger logrus.FieldLogger) *Service {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Title        string
	Description  string
	Status       Status
	Technologies []string
	Tags         []string
}

// Create creates a new project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	status := req.Status
	if status == "" {
		status = StatusIdea
	}
	if !status.Valid() {
		return nil, fmt.Errorf("status %q: %w", status, ErrInvalidStatus)
	}

	exists, err := s.repo.ExistsByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("checking title: %w", err)
	}
	if exists {
		return nil, ErrDuplicateTitle
	}

	now := time.Now().UTC()
	proj := &Project{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  req.Description,
		Status:       status,
		Technologies: orEmpty(req.Technologies),
		Tags:         orEmpty(req.Tags),
		Tasks:        []task.Task{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Add(ctx, proj); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return proj, nil
}

// List returns all projects with their owned tasks.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// Update merges the given fields over an existing project. A title change is
// re-checked for uniqueness.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Project, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		patch.Title = &title
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("status %q: %w", *patch.Status, ErrInvalidStatus)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}

	if patch.Title != nil && *patch.Title != current.Title {
		exists, err := s.repo.ExistsByTitle(ctx, *patch.Title)
		if err != nil {
			return nil, fmt.Errorf("checking title: %w", err)
		}
		if exists {
			return nil, ErrDuplicateTitle
		}
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrProjectNotFound
		case errors.Is(err, repository.ErrConflict):
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return updated, nil
}

// Delete removes a project and, through ownership, its tasks.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// Move shifts a project to another status bucket on the portfolio board.
func (s *Service) Move(ctx context.Context, id string, to Status) (*Project, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("status %q: %w", to, ErrInvalidStatus)
	}
	return s.Update(ctx, id, Patch{Status: &to})
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
