package hotel

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avstrong/roombook/internal/logger"
	"github.com/avstrong/roombook/internal/roomtype"
)

// DefaultMinNoticeDays is how many days before check-in a booking can still be canceled.
const DefaultMinNoticeDays = 2

type idGenerator interface {
	NextID() string
}

type Conf struct {
	L           *logger.Logger
	Name        string
	Catalog     *roomtype.Catalog
	IDGenerator idGenerator
	// MinNoticeDays defaults to DefaultMinNoticeDays. Point at 0 to allow cancellation up to check-in.
	MinNoticeDays *int
	// Now defaults to time.Now.
	Now func() time.Time
}

// Hotel exclusively owns its rooms and bookings. It is not safe for concurrent use.
type Hotel struct {
	l             *logger.Logger
	name          string
	catalog       *roomtype.Catalog
	idGenerator   idGenerator
	minNoticeDays int
	now           func() time.Time
	rooms         []*Room
	roomNumbers   map[int]struct{}
	bookings      []*Booking
}

func New(conf Conf) *Hotel {
	now := conf.Now
	if now == nil {
		now = time.Now
	}

	catalog := conf.Catalog
	if catalog == nil {
		catalog = roomtype.Default()
	}

	l := conf.L
	if l == nil {
		l = logger.Nop()
	}

	minNoticeDays := DefaultMinNoticeDays
	if conf.MinNoticeDays != nil {
		minNoticeDays = *conf.MinNoticeDays
	}

	//nolint:exhaustruct
	return &Hotel{
		l:             l,
		name:          conf.Name,
		catalog:       catalog,
		idGenerator:   conf.IDGenerator,
		minNoticeDays: minNoticeDays,
		now:           now,
		roomNumbers:   make(map[int]struct{}),
	}
}

func (h *Hotel) Name() string {
	return h.name
}

func (h *Hotel) Catalog() *roomtype.Catalog {
	return h.catalog
}

func (h *Hotel) MinNoticeDays() int {
	return h.minNoticeDays
}

// Rooms returns the rooms in the order they were added.
func (h *Hotel) Rooms() []*Room {
	rooms := make([]*Room, len(h.rooms))
	copy(rooms, h.rooms)

	return rooms
}

// Bookings returns every booking, canceled ones included, in creation order.
func (h *Hotel) Bookings() []*Booking {
	bookings := make([]*Booking, len(h.bookings))
	copy(bookings, h.bookings)

	return bookings
}

func (h *Hotel) AddRoom(number int, roomType string) Result {
	t, ok := h.catalog.Lookup(roomType)
	if !ok {
		return result(InvalidInput, "Invalid room type.")
	}

	if _, exists := h.roomNumbers[number]; exists {
		return result(InvalidInput, fmt.Sprintf("Room %d already exists.", number))
	}

	h.rooms = append(h.rooms, newRoom(number, t))
	h.roomNumbers[number] = struct{}{}

	h.l.LogInfo("Room %d added as %s", number, roomType)

	return result(Success, fmt.Sprintf("Room %d added as a %s.", number, roomType))
}

func (h *Hotel) ViewRoomAvailability() []string {
	var available []string

	for _, room := range h.rooms {
		if !room.booked {
			available = append(available, fmt.Sprintf("Room %d: %s", room.number, room.roomType))
		}
	}

	if len(available) == 0 {
		return []string{"No rooms available."}
	}

	return available
}

// FindAvailableRoom returns the first free room of the given type, earliest added first.
func (h *Hotel) FindAvailableRoom(roomType string) (*Room, bool) {
	for _, room := range h.rooms {
		if room.roomType == roomType && !room.booked {
			return room, true
		}
	}

	return nil, false
}

// BookRoom assigns the first free room of roomType. Dates are not checked
// against other bookings of the same room.
func (h *Hotel) BookRoom(customer, roomType string, checkIn, checkOut time.Time) Result {
	if _, ok := h.catalog.Lookup(roomType); !ok {
		return result(InvalidInput, "Invalid room type.")
	}

	room, ok := h.FindAvailableRoom(roomType)
	if !ok {
		return result(NotFound, "No available rooms of this type.")
	}

	if res := room.book(); !res.OK() {
		return res
	}

	var reference string
	if h.idGenerator != nil {
		reference = h.idGenerator.NextID()
	}

	b := newBooking(reference, customer, room, checkIn, checkOut, h.now().UTC())
	h.bookings = append(h.bookings, b)

	h.l.LogInfo("Booking %s created for %q in room %d, %d nights", reference, customer, room.number, b.Nights())

	return result(Success, fmt.Sprintf(
		"Room %d booked for %s from %s to %s.",
		room.number,
		customer,
		b.checkIn.Format(DateLayout),
		b.checkOut.Format(DateLayout),
	))
}

// CancelBooking cancels the customer's earliest active booking, subject to the notice period.
func (h *Hotel) CancelBooking(customer string) Result {
	for _, b := range h.bookings {
		if b.customer != customer || !b.active {
			continue
		}

		res, err := b.cancel(h.now(), h.minNoticeDays)
		if err != nil {
			h.l.LogWarnf("Room state drift on cancel: %v", err.Error())
		}

		if res.Outcome == PolicyDenied {
			h.l.LogWarnf("Cancellation of %s denied, notice %d days", b.reference, b.NoticeDays(h.now()))
		} else {
			h.l.LogInfo("Booking %s: %s", b.reference, res.Message)
		}

		return res
	}

	return result(NotFound, "Active booking not found for cancellation.")
}

// BookingSummary lists active bookings in creation order.
func (h *Hotel) BookingSummary() []string {
	var summary []string

	for _, b := range h.bookings {
		if !b.active {
			continue
		}

		summary = append(summary, fmt.Sprintf(
			"Booking for %s: Room %d from %s to %s, Cost: %s",
			b.customer,
			b.room.number,
			b.checkIn.Format(DateLayout),
			b.checkOut.Format(DateLayout),
			strconv.FormatFloat(b.Cost(), 'f', -1, 64),
		))
	}

	return summary
}

func (h *Hotel) ActiveBookings() int {
	var n int

	for _, b := range h.bookings {
		if b.active {
			n++
		}
	}

	return n
}
