package jobs

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/internal/config"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/service"

	"github.com/sirupsen/logrus"
)

// Materializer creates the next occurrence of each recurring event
// template ahead of time. Creation is idempotent: a template whose
// next occurrence already exists is skipped.
type Materializer struct {
	events    *service.EventService
	templates []config.Recurrence
	interval  time.Duration
	log       *logrus.Entry
	stopCh    chan struct{}
	wg        sync.WaitGroup
	running   bool
	mu        sync.Mutex
}

func NewMaterializer(l *logrus.Logger, events *service.EventService, templates []config.Recurrence, interval time.Duration) *Materializer {
	if interval == 0 {
		interval = time.Hour
	}
	return &Materializer{
		events:    events,
		templates: templates,
		interval:  interval,
		log:       l.WithFields(map[string]interface{}{"from": "recurrence-job"}),
		stopCh:    make(chan struct{}),
	}
}

func (m *Materializer) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.mu.Unlock()

	m.wg.Add(1)
	go m.run()
	m.log.WithFields(logrus.Fields{"interval": m.interval, "templates": len(m.templates)}).Info("recurrence job started")
}

func (m *Materializer) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.mu.Unlock()

	close(m.stopCh)
	m.wg.Wait()
	m.log.Info("recurrence job stopped")
}

func (m *Materializer) run() {
	defer m.wg.Done()

	m.tick()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.tick()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Materializer) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := m.RunOnce(ctx, time.Now()); err != nil {
		m.log.WithError(err).Error("materialize recurring events")
	}
}

// RunOnce materializes every template due after now.
func (m *Materializer) RunOnce(ctx context.Context, now time.Time) error {
	for _, tpl := range m.templates {
		start, err := nextOccurrence(tpl, now)
		if err != nil {
			m.log.WithError(err).WithFields(logrus.Fields{"template": tpl.Title}).Error("bad recurrence template")
			continue
		}
		exists, err := m.events.Exists(ctx, tpl.Title, start)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		_, err = m.events.Create(ctx, domain.Event{
			Title:     tpl.Title,
			Location:  tpl.Location,
			StartTime: start,
		})
		if err != nil {
			return err
		}
		m.log.WithFields(logrus.Fields{"title": tpl.Title, "start": start}).Info("recurring event created")
	}
	return nil
}

// nextOccurrence is the first instant at the template's weekday and
// wall time strictly after now, in the template's timezone.
func nextOccurrence(tpl config.Recurrence, now time.Time) (time.Time, error) {
	loc := time.Local
	if tpl.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(tpl.Timezone)
		if err != nil {
			return time.Time{}, err
		}
	}
	weekday, err := parseWeekday(tpl.Weekday)
	if err != nil {
		return time.Time{}, err
	}

	local := now.In(loc)
	candidate := time.Date(local.Year(), local.Month(), local.Day(), tpl.Hour, tpl.Minute, 0, 0, loc)
	for candidate.Weekday() != weekday || !candidate.After(local) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, domain.ErrInvalidInput
}
