package utils

import "errors"

var (
	ErrInvalidItinerary   = errors.New("invalid itinerary structure")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrShareNotFound      = errors.New("share link not found or expired")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPlannerUnavailable = errors.New("planner unavailable")
	ErrMalformedPlan      = errors.New("planner returned malformed plan")
	ErrDatabaseError      = errors.New("database error")
)
