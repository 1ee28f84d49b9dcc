package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/TheoIlgazCelik/uwh-team-maker/gen/model"
	"github.com/TheoIlgazCelik/uwh-team-maker/gen/table"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/migrate"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.RosterStorage = (*Storage)(nil)
var _ storage.EventStorage = (*Storage)(nil)
var _ storage.RsvpStorage = (*Storage)(nil)
var _ storage.TeamStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "storage",
	})
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = migrate.Up(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_busy_timeout=5000"
}

// DB exposes the handle so the auth and bot storages share the same
// database file and connection limit.
func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) ListUsers(ctx context.Context) ([]domain.User, error) {
	var dbUsers []model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		ORDER_BY(table.Users.ID.ASC()).
		QueryContext(ctx, s.db, &dbUsers)
	if err != nil {
		return nil, err
	}
	return convertUsers(dbUsers)
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return convertUser(dbUser)
}

func (s *Storage) GetUsers(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var dbUsers []model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.ID.IN(uuidExpressions(ids)...)).
		ORDER_BY(table.Users.ID.ASC()).
		QueryContext(ctx, s.db, &dbUsers)
	if err != nil {
		return nil, err
	}
	return convertUsers(dbUsers)
}

func (s *Storage) SetSkill(ctx context.Context, id uuid.UUID, skill int) error {
	if skill < 0 {
		skill = 0
	}
	res, err := table.Users.
		UPDATE(table.Users.Skill).
		SET(sqlite.Int(int64(skill))).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, s.db)
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
	return nil
}

func (s *Storage) AdjustSkills(ctx context.Context, ids []uuid.UUID, delta int) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, mapBusy(err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = table.Users.
		UPDATE(table.Users.Skill).
		SET(sqlite.IntExp(sqlite.Raw("MAX(0, users.skill + #delta)", sqlite.RawArgs{"#delta": delta}))).
		WHERE(table.Users.ID.IN(uuidExpressions(ids)...)).
		ExecContext(ctx, tx)
	if err != nil {
		return nil, mapBusy(err)
	}

	var dbUsers []model.Users
	err = table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.ID.IN(uuidExpressions(ids)...)).
		ORDER_BY(table.Users.ID.ASC()).
		QueryContext(ctx, tx, &dbUsers)
	if err != nil {
		return nil, err
	}
	if len(dbUsers) != len(ids) {
		return nil, domain.ErrUserNotFound
	}
	err = tx.Commit()
	if err != nil {
		return nil, mapBusy(err)
	}
	return convertUsers(dbUsers)
}

func (s *Storage) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapBusy(err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = table.Rsvps.
		DELETE().
		WHERE(table.Rsvps.UserID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, tx)
	if err != nil {
		return mapBusy(err)
	}
	// Team rows reference users without an enforced foreign key, so the
	// membership cascade is done by hand here.
	_, err = table.TeamMembers.
		DELETE().
		WHERE(table.TeamMembers.UserID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, tx)
	if err != nil {
		return mapBusy(err)
	}
	res, err := table.Users.
		DELETE().
		WHERE(table.Users.ID.EQ(sqlite.String(id.String()))).
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
	return mapBusy(tx.Commit())
}

func uuidExpressions(ids []uuid.UUID) []sqlite.Expression {
	exprs := make([]sqlite.Expression, 0, len(ids))
	for _, id := range ids {
		exprs = append(exprs, sqlite.String(id.String()))
	}
	return exprs
}

// mapBusy turns an exhausted-busy-timeout error into the domain's
// conflict error so callers can retry or surface it.
func mapBusy(err error) error {
	var serr sqlite3.Error
	if errors.As(err, &serr) && (serr.Code == sqlite3.ErrBusy || serr.Code == sqlite3.ErrLocked) {
		return domain.ErrConflict
	}
	return err
}
