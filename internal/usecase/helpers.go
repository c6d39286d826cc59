package usecase

import (
	"errors"
	"time"

	"clinic-management/internal/domain/entity"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

// actorAccountID returns the account to attribute an audit row to; nil for system actions.
func actorAccountID(actor *entity.Identity) *uint {
	if actor == nil {
		return nil
	}
	id := actor.AccountID
	return &id
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// parseOptionalDate maps an empty string to nil.
func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
