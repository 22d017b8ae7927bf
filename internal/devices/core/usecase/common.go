package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"device-status-service/internal/devices/core/domain"
	"device-status-service/internal/devices/core/ports"
	summarydomain "device-status-service/internal/summary/core/domain"
)

const (
	dateLayout     = "2006-01-02"
	maxDeviceIDLen = 128
	MaxLimit       = 1000
)

func validateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

func normalizeDeviceID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxDeviceIDLen {
		return "", ErrInvalidDeviceID
	}
	return id, nil
}

// optional returns nil for blank values.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func mapSourceError(err error, what string) error {
	if errors.Is(err, ports.ErrSourceNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}

// classify fills Category on a copy of records.
func classify(records []domain.DeviceRecord) []domain.DeviceRecord {
	out := make([]domain.DeviceRecord, len(records))
	for i, r := range records {
		r.Category = string(summarydomain.Classify(r.AccountStatus))
		out[i] = r
	}
	return out
}
