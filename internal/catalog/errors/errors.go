package errors

import "errors"

var (
	ErrFacilityNotFound = errors.New("facility not found")

	ErrRoomNotFound = errors.New("room not found")
)
