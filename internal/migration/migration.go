package migration

import (
	"errors"
	"fmt"

	"github.com/avstrong/roombook/internal/config"
	"github.com/avstrong/roombook/internal/hotel"
	"github.com/avstrong/roombook/internal/logger"
)

var ErrSeedRoom = errors.New("seed room")

type roomAdder interface {
	AddRoom(number int, roomType string) hotel.Result
}

// Up adds the configured rooms to an empty hotel, in order. It stops at the first room
// the hotel refuses.
func Up(l *logger.Logger, h roomAdder, rooms []config.Room) error {
	for _, room := range rooms {
		res := h.AddRoom(room.Number, room.Type)
		if !res.OK() {
			return fmt.Errorf("room %d (%s): %s: %w", room.Number, room.Type, res.Message, ErrSeedRoom)
		}
	}

	l.LogInfo("Seeded %d rooms", len(rooms))

	return nil
}
