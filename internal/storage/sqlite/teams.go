package sqlite

import (
	"context"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/gen/model"
	"github.com/TheoIlgazCelik/uwh-team-maker/gen/table"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) ReplaceTeams(ctx context.Context, eventID uuid.UUID, teams [][]uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapBusy(err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = table.TeamMembers.
		DELETE().
		WHERE(table.TeamMembers.EventID.EQ(sqlite.String(eventID.String()))).
		ExecContext(ctx, tx)
	if err != nil {
		return mapBusy(err)
	}
	_, err = table.Teams.
		DELETE().
		WHERE(table.Teams.EventID.EQ(sqlite.String(eventID.String()))).
		ExecContext(ctx, tx)
	if err != nil {
		return mapBusy(err)
	}

	now := time.Now()
	dbTeams := make([]model.Teams, 0, len(teams))
	var dbMembers []model.TeamMembers
	for i, members := range teams {
		dbTeams = append(dbTeams, model.Teams{
			EventID:   eventID.String(),
			TeamIndex: int32(i + 1),
			CreatedAt: now,
		})
		for pos, userID := range members {
			dbMembers = append(dbMembers, model.TeamMembers{
				EventID:   eventID.String(),
				TeamIndex: int32(i + 1),
				UserID:    userID.String(),
				Position:  int32(pos),
			})
		}
	}
	if len(dbTeams) > 0 {
		_, err = table.Teams.
			INSERT(table.Teams.AllColumns).
			MODELS(dbTeams).
			ExecContext(ctx, tx)
		if err != nil {
			return mapBusy(err)
		}
	}
	if len(dbMembers) > 0 {
		_, err = table.TeamMembers.
			INSERT(table.TeamMembers.AllColumns).
			MODELS(dbMembers).
			ExecContext(ctx, tx)
		if err != nil {
			return mapBusy(err)
		}
	}
	return mapBusy(tx.Commit())
}

type teamRow struct {
	model.Teams
	Members []struct {
		model.TeamMembers
		User model.Users
	}
}

func (s *Storage) ListTeams(ctx context.Context, eventID uuid.UUID) ([]domain.Team, error) {
	var dest []teamRow
	err := table.Teams.
		SELECT(table.Teams.AllColumns, table.TeamMembers.AllColumns, table.Users.AllColumns).
		FROM(table.Teams.
			LEFT_JOIN(table.TeamMembers, table.TeamMembers.EventID.EQ(table.Teams.EventID).
				AND(table.TeamMembers.TeamIndex.EQ(table.Teams.TeamIndex))).
			LEFT_JOIN(table.Users, table.Users.ID.EQ(table.TeamMembers.UserID))).
		WHERE(table.Teams.EventID.EQ(sqlite.String(eventID.String()))).
		ORDER_BY(table.Teams.TeamIndex.ASC(), table.TeamMembers.Position.ASC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, err
	}
	return convertTeams(dest)
}

func (s *Storage) GetTeam(ctx context.Context, eventID uuid.UUID, index int) (domain.Team, error) {
	var dest []teamRow
	err := table.Teams.
		SELECT(table.Teams.AllColumns, table.TeamMembers.AllColumns, table.Users.AllColumns).
		FROM(table.Teams.
			LEFT_JOIN(table.TeamMembers, table.TeamMembers.EventID.EQ(table.Teams.EventID).
				AND(table.TeamMembers.TeamIndex.EQ(table.Teams.TeamIndex))).
			LEFT_JOIN(table.Users, table.Users.ID.EQ(table.TeamMembers.UserID))).
		WHERE(table.Teams.EventID.EQ(sqlite.String(eventID.String())).
			AND(table.Teams.TeamIndex.EQ(sqlite.Int(int64(index))))).
		ORDER_BY(table.TeamMembers.Position.ASC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return domain.Team{}, err
	}
	if len(dest) == 0 {
		return domain.Team{}, domain.ErrTeamNotFound
	}
	teams, err := convertTeams(dest)
	if err != nil {
		return domain.Team{}, err
	}
	return teams[0], nil
}
