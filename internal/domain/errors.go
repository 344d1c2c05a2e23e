package domain

import "errors"

// Error taxonomy for plan generation. ErrInvalidFitnessIndex is always
// recovered locally (default pace table plus a warning); the others are
// fatal to the request that raised them.
var (
	ErrInvalidRequest      = errors.New("invalid plan request")
	ErrInvalidFitnessIndex = errors.New("fitness index out of supported range")
	ErrPlanTooShort        = errors.New("plan duration too short for race distance")
	ErrUnplaceableSession  = errors.New("no available day left for session")
	ErrMalformedDescriptor = errors.New("workout descriptor has no measurable content")
)
