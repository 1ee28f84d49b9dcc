package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/gen/model"
	"github.com/TheoIlgazCelik/uwh-team-maker/gen/table"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var dbEvents []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		QueryContext(ctx, s.db, &dbEvents)
	if err != nil {
		return nil, err
	}
	return convertEvents(dbEvents)
}

func (s *Storage) GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	var dbEvent model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(table.Events.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &dbEvent)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, err
	}
	return convertEvent(dbEvent)
}

func (s *Storage) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	_, err := table.Events.
		INSERT(table.Events.AllColumns).
		MODEL(convertEventFromDomain(event)).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Event{}, mapBusy(err)
	}
	return event, nil
}

func (s *Storage) UpdateEvent(ctx context.Context, event domain.Event) error {
	res, err := table.Events.
		UPDATE(table.Events.Title, table.Events.Location, table.Events.StartTime).
		MODEL(convertEventFromDomain(event)).
		WHERE(table.Events.ID.EQ(sqlite.String(event.ID.String()))).
		ExecContext(ctx, s.db)
	if err != nil {
		return mapBusy(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (s *Storage) EventExists(ctx context.Context, title string, start time.Time) (bool, error) {
	var dbEvents []model.Events
	err := table.Events.
		SELECT(table.Events.ID).
		FROM(table.Events).
		WHERE(table.Events.Title.EQ(sqlite.String(title)).
			// DATETIME on both sides so stored driver-format timestamps
			// compare by instant, not by string representation.
			AND(sqlite.DATETIME(table.Events.StartTime).EQ(sqlite.DATETIME(start)))).
		LIMIT(1).
		QueryContext(ctx, s.db, &dbEvents)
	if err != nil {
		return false, err
	}
	return len(dbEvents) > 0, nil
}

func (s *Storage) UpsertRsvp(ctx context.Context, rsvp domain.Rsvp) error {
	dbRsvp := model.Rsvps{
		EventID:     rsvp.EventID.String(),
		UserID:      rsvp.UserID.String(),
		Status:      string(rsvp.Status),
		RespondedAt: rsvp.RespondedAt,
	}
	_, err := table.Rsvps.
		INSERT(table.Rsvps.AllColumns).
		MODEL(dbRsvp).
		ON_CONFLICT(table.Rsvps.EventID, table.Rsvps.UserID).
		DO_UPDATE(sqlite.SET(
			table.Rsvps.Status.SET(sqlite.String(dbRsvp.Status)),
			table.Rsvps.RespondedAt.SET(sqlite.DATETIME(dbRsvp.RespondedAt)),
		)).
		ExecContext(ctx, s.db)
	return mapBusy(err)
}

func (s *Storage) ListYes(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	var dbRsvps []model.Rsvps
	err := table.Rsvps.
		SELECT(table.Rsvps.AllColumns).
		FROM(table.Rsvps).
		WHERE(table.Rsvps.EventID.EQ(sqlite.String(eventID.String())).
			AND(table.Rsvps.Status.EQ(sqlite.String(string(domain.RsvpYes))))).
		ORDER_BY(table.Rsvps.UserID.ASC()).
		QueryContext(ctx, s.db, &dbRsvps)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(dbRsvps))
	for _, r := range dbRsvps {
		id, err := uuid.Parse(r.UserID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
