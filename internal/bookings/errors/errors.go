package errors

import "errors"

var (
	ErrStayTooShort = errors.New("same-day stay is shorter than the minimum duration")

	ErrWindowInverted = errors.New("checkout date is before checkin date")

	ErrInvalidGuestCount = errors.New("guest count must be at least 1")

	ErrSubmissionFailed = errors.New("booking could not be handed to the submission pipeline")
)
