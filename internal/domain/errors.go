package domain

import "errors"

// Common domain errors
var (
	ErrNotFound          = errors.New("entity not found")
	ErrDuplicate         = errors.New("entity already exists")
	ErrStillReferenced   = errors.New("entity is still referenced by an interview")
	ErrDanglingReference = errors.New("interview references an entity that does not exist")
)
