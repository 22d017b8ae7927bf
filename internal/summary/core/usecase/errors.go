package usecase

import "errors"

var (
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidPlatform = errors.New("invalid platform")
	ErrNotFound        = errors.New("summary not found")
)
