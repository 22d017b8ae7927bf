package usecase

import "errors"

var (
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDeviceID    = errors.New("invalid device_id")
	ErrInvalidLimit       = errors.New("invalid limit")
	ErrInvalidStatusQuery = errors.New("date, platform and account_status are required")
	ErrNotFound           = errors.New("device data not found")
)
