package sqlite

import (
	"context"

	"github.com/TheoIlgazCelik/uwh-team-maker/gen/table"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) ApplyMatches(ctx context.Context, matches []domain.Match, deltas map[uuid.UUID]int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapBusy(err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if len(matches) > 0 {
		_, err = table.Matches.
			INSERT(table.Matches.AllColumns).
			MODELS(convertMatchesFromDomain(matches)).
			ExecContext(ctx, tx)
		if err != nil {
			return mapBusy(err)
		}
	}
	for userID, delta := range deltas {
		res, err := table.Users.
			UPDATE(table.Users.Skill).
			SET(sqlite.IntExp(sqlite.Raw("MAX(0, users.skill + #delta)", sqlite.RawArgs{"#delta": delta}))).
			WHERE(table.Users.ID.EQ(sqlite.String(userID.String()))).
			ExecContext(ctx, tx)
		if err != nil {
			return mapBusy(err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrUserNotFound
		}
	}
	return mapBusy(tx.Commit())
}
