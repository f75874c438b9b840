package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTitleRequired indicates a blank or missing project title.
	ErrTitleRequired = errors.New("project title is required")
	// ErrDuplicateTitle indicates another project already uses the title.
	ErrDuplicateTitle = errors.New("project title already exists")
	// ErrInvalidStatus indicates a lifecycle state outside the known set.
	ErrInvalidStatus = errors.New("invalid project status")
)
