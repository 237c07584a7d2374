package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avstrong/roombook/internal/hotel"
	"github.com/avstrong/roombook/internal/logger"
	"github.com/avstrong/roombook/internal/metrics"
)

type handler func(ctx context.Context) error

type line struct {
	text string
	err  error
}

type Server struct {
	l       *logger.Logger
	conf    Conf
	hotel   *hotel.Hotel
	metrics *metrics.Recorder
	routes  map[string]handler
	lines   <-chan line
	styles  styles
}

type Conf struct {
	L   *logger.Logger
	In  io.Reader
	Out io.Writer
}

type styles struct {
	header lipgloss.Style
	ok     lipgloss.Style
	failed lipgloss.Style
}

func New(conf Conf, h *hotel.Hotel, recorder *metrics.Recorder) *Server {
	r := lipgloss.NewRenderer(conf.Out)

	//nolint:exhaustruct
	server := &Server{
		l:       conf.L,
		conf:    conf,
		hotel:   h,
		metrics: recorder,
		routes:  make(map[string]handler),
		styles: styles{
			header: r.NewStyle().Bold(true),
			ok:     r.NewStyle().Foreground(lipgloss.Color("2")),
			failed: r.NewStyle().Foreground(lipgloss.Color("3")),
		},
	}

	server.addRoutes()

	return server
}

// Run serves one menu choice per turn until the user exits, input ends or ctx is done.
func (s *Server) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	s.lines = readLines(s.conf.In, done)

	for {
		if ctx.Err() != nil {
			s.l.LogInfo("Console stopped: %v", ctx.Err())

			return nil
		}

		s.printMenu()

		choice, err := s.ask(ctx, "Enter your choice: ")
		if err != nil {
			return s.stop(err)
		}

		choice = strings.TrimSpace(choice)

		h, ok := s.routes[choice]
		if !ok {
			h = s.invalidChoiceHandler
		}

		turn := s.applyMiddlewares(h, s.loggerMiddleware(), s.recoverMiddleware())

		if err := turn(withChoice(ctx, choice)); err != nil {
			return s.stop(err)
		}
	}
}

func (s *Server) stop(err error) error {
	switch {
	case errors.Is(err, ErrExit):
		return nil
	case errors.Is(err, io.EOF):
		s.l.LogInfo("Input closed, leaving console")

		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.l.LogInfo("Console stopped: %v", err)

		return nil
	default:
		return fmt.Errorf("console turn: %w", err)
	}
}

func (s *Server) printMenu() {
	s.println("")
	s.println(s.styles.header.Render(fmt.Sprintf("=== %s Booking System ===", s.hotel.Name())))
	s.println("1. Book a Room")
	s.println("2. Cancel a Booking")
	s.println("3. View Booking Summary")
	s.println("4. View Room Availability")
	s.println("5. Exit")
}

func (s *Server) ask(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(s.conf.Out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case ln, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}

		return ln.text, ln.err
	}
}

func (s *Server) println(text string) {
	if _, err := fmt.Fprintln(s.conf.Out, text); err != nil {
		s.l.LogErrorf("Could not write to console: %v", err.Error())
	}
}

// readLines feeds input lines to the console so a blocked read does not hold up shutdown.
// The reader goroutine returns once done is closed; a Read already in progress
// is not interrupted.
func readLines(r io.Reader, done <-chan struct{}) <-chan line {
	ch := make(chan line)

	send := func(ln line) bool {
		select {
		case ch <- ln:
			return true
		case <-done:
			return false
		}
	}

	go func() {
		defer close(ch)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !send(line{text: scanner.Text()}) { //nolint:exhaustruct
				return
			}
		}

		if err := scanner.Err(); err != nil {
			send(line{err: err}) //nolint:exhaustruct
		}
	}()

	return ch
}
