package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/avstrong/roombook/internal/hotel"
	"github.com/avstrong/roombook/internal/idgen/simple"
	"github.com/avstrong/roombook/internal/logger"
	"github.com/avstrong/roombook/internal/metrics"
	"github.com/avstrong/roombook/internal/roomtype"
)

func newTestServer(t *testing.T, input string) (*Server, *bytes.Buffer, *metrics.Recorder) {
	t.Helper()

	h := hotel.New(hotel.Conf{
		L:           logger.Nop(),
		Name:        "Grand Stay",
		Catalog:     roomtype.Default(),
		IDGenerator: simple.New("BK"),
		Now:         func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) },
	})
	require.True(t, h.AddRoom(101, roomtype.Single).OK())
	require.True(t, h.AddRoom(102, roomtype.Double).OK())

	var out bytes.Buffer

	recorder := metrics.New()
	s := New(Conf{L: logger.Nop(), In: strings.NewReader(input), Out: &out}, h, recorder)

	return s, &out, recorder
}

func lines(in ...string) string {
	return strings.Join(in, "\n") + "\n"
}

func TestRun_EndToEnd(t *testing.T) {
	input := lines(
		"1", "Alice", "Single", "2024-01-10", "2024-01-12",
		"4",
		"3",
		"2", "Alice",
		"3",
		"4",
		"5",
	)
	s, out, recorder := newTestServer(t, input)

	require.NoError(t, s.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "=== Grand Stay Booking System ===")
	assert.Contains(t, got, "Enter room type (Single, Double, Suite): ")
	assert.Contains(t, got, "Room 101 booked for Alice from 2024-01-10 to 2024-01-12.")
	assert.Contains(t, got, "Booking for Alice: Room 101 from 2024-01-10 to 2024-01-12, Cost: 200")
	assert.Contains(t, got, "Booking canceled successfully.")
	assert.Contains(t, got, "No active bookings found.")
	assert.Contains(t, got, "Room 101: Single\nRoom 102: Double")
	assert.True(t, strings.HasSuffix(got, "Exiting the system.\n"))

	assert.InDelta(t, 1, testutil.ToFloat64(recorder.OperationCounter("book", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.OperationCounter("cancel", "success")), 0)
}

func TestRun_AvailabilityAfterBooking(t *testing.T) {
	s, out, _ := newTestServer(t, lines("1", "Alice", "Single", "2024-01-10", "2024-01-12", "4", "5"))

	require.NoError(t, s.Run(context.Background()))

	after := out.String()[strings.Index(out.String(), "booked for Alice"):]
	assert.Contains(t, after, "Room 102: Double")
	assert.NotContains(t, after, "Room 101: Single")
}

func TestRun_InvalidChoice(t *testing.T) {
	s, out, _ := newTestServer(t, lines("9", "5"))

	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), "Invalid choice, please try again.")
	assert.Equal(t, 2, strings.Count(out.String(), "1. Book a Room"))
}

func TestRun_MalformedDateLeavesHotelUntouched(t *testing.T) {
	s, out, recorder := newTestServer(t, lines("1", "Alice", "Single", "10/01/2024", "4", "5"))

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), `Invalid date "10/01/2024": use YYYY-MM-DD.`)
	assert.Empty(t, s.hotel.Bookings())
	assert.Contains(t, out.String(), "Room 101: Single\nRoom 102: Double")
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.OperationCounter("book", "invalid_input")), 0)
}

func TestRun_CancelDenied(t *testing.T) {
	s, out, _ := newTestServer(t, lines("1", "Bob", "Double", "2024-01-02", "2024-01-04", "2", "Bob", "5"))

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "Cancellation denied. Insufficient notice.")
	assert.Equal(t, 1, s.hotel.ActiveBookings())
}

func TestRun_NoAvailability(t *testing.T) {
	s, out, _ := newTestServer(t, lines(
		"1", "Alice", "Double", "2024-01-10", "2024-01-12",
		"1", "Bob", "Double", "2024-01-10", "2024-01-12",
		"5",
	))

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "No available rooms of this type.")
	assert.Len(t, s.hotel.Bookings(), 1)
}

func TestRun_EndOfInput(t *testing.T) {
	s, out, _ := newTestServer(t, lines("1", "Alice"))

	require.NoError(t, s.Run(context.Background()))
	assert.NotContains(t, out.String(), "Exiting the system.")
	assert.Empty(t, s.hotel.Bookings())
}

func TestRun_CanceledContext(t *testing.T) {
	s, out, _ := newTestServer(t, lines("4", "5"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, s.Run(ctx))
	assert.Empty(t, out.String())
}

// endlessInput answers the first read with head and every later read with "4".
type endlessInput struct {
	head string
}

func (e *endlessInput) Read(p []byte) (int, error) {
	if e.head != "" {
		n := copy(p, e.head)
		e.head = e.head[n:]

		return n, nil
	}

	return copy(p, "4\n"), nil
}

func TestRun_StopsReaderAfterExit(t *testing.T) {
	s, out, _ := newTestServer(t, "")
	s.conf.In = &endlessInput{head: "5\n"}

	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), "Exiting the system.")

	assert.Eventually(t, func() bool {
		for {
			select {
			case _, ok := <-s.lines:
				if !ok {
					return true
				}
			default:
				return false
			}
		}
	}, time.Second, 10*time.Millisecond)
}

func TestRun_RecoversFromPanic(t *testing.T) {
	s, out, _ := newTestServer(t, lines("7", "4", "5"))
	s.routes["7"] = func(context.Context) error {
		panic("boom")
	}

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "Something went wrong, please try again.")
	assert.Contains(t, out.String(), "Room 101: Single")
}

func TestLoggerMiddleware_SetsTraceID(t *testing.T) {
	s, _, _ := newTestServer(t, "")

	var sc trace.SpanContext

	h := s.loggerMiddleware()(func(ctx context.Context) error {
		sc = trace.SpanContextFromContext(ctx)

		return nil
	})

	require.NoError(t, h(withChoice(context.Background(), "4")))
	assert.True(t, sc.IsValid())
	assert.True(t, sc.IsSampled())
}

func TestChoiceContext(t *testing.T) {
	_, ok := choiceFromContext(context.Background())
	assert.False(t, ok)

	choice, ok := choiceFromContext(withChoice(context.Background(), "3"))
	assert.True(t, ok)
	assert.Equal(t, "3", choice)
}
