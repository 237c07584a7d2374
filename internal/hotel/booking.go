package hotel

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for input and in messages.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

type Booking struct {
	reference string
	customer  string
	room      *Room
	checkIn   time.Time
	checkOut  time.Time
	createdAt time.Time
	active    bool
}

func newBooking(reference, customer string, room *Room, checkIn, checkOut, createdAt time.Time) *Booking {
	return &Booking{
		reference: reference,
		customer:  customer,
		room:      room,
		checkIn:   civilDate(checkIn),
		checkOut:  civilDate(checkOut),
		createdAt: createdAt,
		active:    true,
	}
}

func (b *Booking) Reference() string {
	return b.reference
}

func (b *Booking) Customer() string {
	return b.customer
}

func (b *Booking) Room() *Room {
	return b.room
}

func (b *Booking) CheckIn() time.Time {
	return b.checkIn
}

func (b *Booking) CheckOut() time.Time {
	return b.checkOut
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Booking) IsActive() bool {
	return b.active
}

// Nights is zero or negative when the dates are inverted; that is not rejected.
func (b *Booking) Nights() int {
	return daysBetween(b.checkIn, b.checkOut)
}

func (b *Booking) Cost() float64 {
	return float64(b.Nights()) * b.room.NightlyRate()
}

// NoticeDays is the number of whole days from today until check-in.
func (b *Booking) NoticeDays(today time.Time) int {
	return daysBetween(today, b.checkIn)
}

// cancel frees the room unless the booking is already inactive or check-in
// is fewer than minNotice days away from today. The booking is canceled even
// when its room was already free; that case is reported as ErrRoomNotBooked.
func (b *Booking) cancel(today time.Time, minNotice int) (Result, error) {
	if !b.active {
		return result(AlreadyInState, "Booking is already canceled."), nil
	}

	if b.NoticeDays(today) < minNotice {
		return result(PolicyDenied, "Cancellation denied. Insufficient notice."), nil
	}

	var err error
	if released := b.room.release(); !released.OK() {
		err = fmt.Errorf("booking %s: %s: %w", b.reference, released.Message, ErrRoomNotBooked)
	}

	b.active = false

	return result(Success, "Booking canceled successfully."), err
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayNumber(t time.Time) int64 {
	return civilDate(t).Unix() / secondsPerDay
}

func daysBetween(from, to time.Time) int {
	return int(dayNumber(to) - dayNumber(from))
}
