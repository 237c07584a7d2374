package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avstrong/roombook/internal/hotel"
)

const (
	choiceBook         = "1"
	choiceCancel       = "2"
	choiceSummary      = "3"
	choiceAvailability = "4"
	choiceExit         = "5"
)

func (s *Server) bookHandler(ctx context.Context) error {
	customer, err := s.ask(ctx, "Enter customer name: ")
	if err != nil {
		return err
	}

	roomType, err := s.ask(ctx, fmt.Sprintf("Enter room type (%s): ", strings.Join(s.hotel.Catalog().Names(), ", ")))
	if err != nil {
		return err
	}

	checkIn, ok, err := s.askDate(ctx, "Enter check-in date (YYYY-MM-DD): ")
	if err != nil || !ok {
		return err
	}

	checkOut, ok, err := s.askDate(ctx, "Enter check-out date (YYYY-MM-DD): ")
	if err != nil || !ok {
		return err
	}

	s.report("book", s.hotel.BookRoom(customer, roomType, checkIn, checkOut))

	return nil
}

// askDate reports ok=false after telling the user the date was malformed.
func (s *Server) askDate(ctx context.Context, prompt string) (time.Time, bool, error) {
	raw, err := s.ask(ctx, prompt)
	if err != nil {
		return time.Time{}, false, err
	}

	d, err := time.Parse(hotel.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		s.l.LogWarnf("Rejected date %q: %v", raw, err.Error())
		s.println(s.styles.failed.Render(fmt.Sprintf("Invalid date %q: use YYYY-MM-DD.", raw)))
		s.metrics.Record("book", hotel.InvalidInput.String())

		return time.Time{}, false, nil
	}

	return d, true, nil
}

func (s *Server) cancelHandler(ctx context.Context) error {
	customer, err := s.ask(ctx, "Enter customer name to cancel booking: ")
	if err != nil {
		return err
	}

	s.report("cancel", s.hotel.CancelBooking(customer))

	return nil
}

func (s *Server) summaryHandler(_ context.Context) error {
	summary := s.hotel.BookingSummary()
	if len(summary) == 0 {
		s.println("No active bookings found.")
	}

	for _, ln := range summary {
		s.println(ln)
	}

	s.metrics.Record("summary", hotel.Success.String())

	return nil
}

func (s *Server) availabilityHandler(_ context.Context) error {
	for _, ln := range s.hotel.ViewRoomAvailability() {
		s.println(ln)
	}

	s.metrics.Record("availability", hotel.Success.String())

	return nil
}

func (s *Server) exitHandler(_ context.Context) error {
	s.println("Exiting the system.")

	return ErrExit
}

func (s *Server) invalidChoiceHandler(_ context.Context) error {
	s.println("Invalid choice, please try again.")

	return nil
}

func (s *Server) report(operation string, res hotel.Result) {
	style := s.styles.ok
	if !res.OK() {
		style = s.styles.failed
	}

	s.println(style.Render(res.Message))

	s.metrics.Record(operation, res.Outcome.String())
	s.metrics.SetActiveBookings(s.hotel.ActiveBookings())
}

func (s *Server) addRoutes() {
	s.routes[choiceBook] = s.bookHandler
	s.routes[choiceCancel] = s.cancelHandler
	s.routes[choiceSummary] = s.summaryHandler
	s.routes[choiceAvailability] = s.availabilityHandler
	s.routes[choiceExit] = s.exitHandler
}
