package generator

import (
	"errors"
	"time"

	"github.com/robfig/cron/v3"

	"agency-content-ops/internal/recurring/repository"
	"agency-content-ops/pkg/gcalendar"
	pkgLog "agency-content-ops/pkg/log"
)

// Config holds the worker's schedule and calendar settings.
type Config struct {
	Interval   string // cron @every interval, e.g. "5m"
	Timezone   string // IANA timezone for calendar-day arithmetic
	CalendarID string // optional; empty disables calendar events
}

// Generator periodically materializes due recurring templates into
// concrete tasks.
type Generator struct {
	l        pkgLog.Logger
	repo     repository.PlatformRepository
	calendar *gcalendar.Client // nil when calendar sync is not configured

	cron       *cron.Cron
	interval   string
	loc        *time.Location
	calendarID string
}

// New creates a new Generator. The calendar client may be nil.
func New(l pkgLog.Logger, repo repository.PlatformRepository, calendar *gcalendar.Client, cfg Config) (*Generator, error) {
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	if cfg.Interval == "" {
		return nil, errors.New("interval is required")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	return &Generator{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		cron:       cron.New(cron.WithLocation(loc)),
		interval:   cfg.Interval,
		loc:        loc,
		calendarID: cfg.CalendarID,
	}, nil
}
