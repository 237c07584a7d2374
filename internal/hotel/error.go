package hotel

import "errors"

// ErrRoomNotBooked means an active booking pointed at a room that was already free.
var ErrRoomNotBooked = errors.New("room of active booking was not booked")
