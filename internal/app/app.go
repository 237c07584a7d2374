package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/avstrong/roombook/internal/config"
	"github.com/avstrong/roombook/internal/console"
	"github.com/avstrong/roombook/internal/hotel"
	"github.com/avstrong/roombook/internal/idgen/simple"
	"github.com/avstrong/roombook/internal/logger"
	"github.com/avstrong/roombook/internal/metrics"
	"github.com/avstrong/roombook/internal/migration"
)

type IO struct {
	In  io.Reader
	Out io.Writer
}

func Run(l *logger.Logger, conf config.Config, stdio IO) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	return run(ctx, l, conf, stdio)
}

func run(ctx context.Context, l *logger.Logger, conf config.Config, stdio IO) error {
	catalog, err := conf.Catalog()
	if err != nil {
		return fmt.Errorf("load room types: %w", err)
	}

	h := hotel.New(hotel.Conf{
		L:             l,
		Name:          conf.HotelName,
		Catalog:       catalog,
		IDGenerator:   simple.New("BK"),
		MinNoticeDays: &conf.MinNoticeDays,
		Now:           nil,
	})

	if err := migration.Up(l, h, conf.Rooms); err != nil {
		return fmt.Errorf("seed rooms: %w", err)
	}

	recorder := metrics.New()

	srv := console.New(console.Conf{
		L:   l,
		In:  stdio.In,
		Out: stdio.Out,
	}, h, recorder)

	l.LogInfo("%s reservation desk is open with %d rooms", h.Name(), len(h.Rooms()))

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("run console: %w", err)
	}

	summary, err := recorder.Summary()
	if err != nil {
		l.LogErrorf("Could not summarize session: %v", err.Error())
	} else if summary != "" {
		l.LogInfo("Session operations: %s", summary)
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
