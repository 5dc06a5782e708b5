package job

import "errors"

var (
	// ErrTitleRequired indicates a create/update without a usable title.
	ErrTitleRequired = errors.New("title is required")
	// ErrInvalidStatus indicates an unknown job status.
	ErrInvalidStatus = errors.New("invalid job status")
	// ErrSlugTaken indicates a slug collision with another job.
	ErrSlugTaken = errors.New("slug must be unique")
	// ErrJobNotFound indicates the job doesn't exist.
	ErrJobNotFound = errors.New("job not found")
)
