package errors

import "errors"

var (
	ErrUnknownRoomType = errors.New("room type is not in the catalog")

	ErrInvalidDateFormat = errors.New("date must be a valid YYYY-MM-DD calendar date")

	ErrNoRoomsAvailable = errors.New("no rooms available for the requested date")
)
