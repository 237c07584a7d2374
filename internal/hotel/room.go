package hotel

import (
	"fmt"

	"github.com/avstrong/roombook/internal/roomtype"
)

// Room is owned by a Hotel. Its state only changes through Hotel operations.
type Room struct {
	number      int
	roomType    string
	nightlyRate float64
	booked      bool
}

func newRoom(number int, t roomtype.Type) *Room {
	//nolint:exhaustruct
	return &Room{
		number:      number,
		roomType:    t.Name,
		nightlyRate: t.NightlyRate,
	}
}

func (r *Room) Number() int {
	return r.number
}

func (r *Room) Type() string {
	return r.roomType
}

func (r *Room) NightlyRate() float64 {
	return r.nightlyRate
}

func (r *Room) IsBooked() bool {
	return r.booked
}

func (r *Room) book() Result {
	if r.booked {
		return result(AlreadyInState, fmt.Sprintf("Room %d is already booked.", r.number))
	}

	r.booked = true

	return result(Success, fmt.Sprintf("Room %d booked successfully.", r.number))
}

func (r *Room) release() Result {
	if !r.booked {
		return result(AlreadyInState, fmt.Sprintf("Room %d is not currently booked.", r.number))
	}

	r.booked = false

	return result(Success, fmt.Sprintf("Booking for room %d has been canceled.", r.number))
}
