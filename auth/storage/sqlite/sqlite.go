package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/auth/storage"
	"github.com/TheoIlgazCelik/uwh-team-maker/auth/users"
	"github.com/TheoIlgazCelik/uwh-team-maker/gen/model"
	"github.com/TheoIlgazCelik/uwh-team-maker/gen/table"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Storage reads and writes credentials on the shared users table. It
// never touches skills, that side belongs to the roster storage.
type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(l *logrus.Logger, db *sql.DB) *Storage {
	return &Storage{
		db: db,
		log: l.WithFields(map[string]interface{}{
			"from": "auth-storage",
		}),
	}
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (users.User, error) {
	var dest model.Users
	err := table.Users.
		SELECT(
			table.Users.AllColumns.Except(
				table.Users.PasswordHash,
				table.Users.PasswordSalt,
			),
		).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.UUID(id))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUser(dest)
}

func (s *Storage) GetUserSecret(ctx context.Context, user users.User) (users.Secret, error) {
	var where sqlite.BoolExpression
	switch {
	case user.ID != uuid.Nil:
		where = table.Users.ID.EQ(sqlite.UUID(user.ID))
	case user.Name != "":
		where = table.Users.Name.EQ(sqlite.String(user.Name))
	default:
		return users.Secret{}, errors.New("empty user")
	}

	var dbUser model.Users
	err := table.Users.
		SELECT(
			table.Users.PasswordHash,
			table.Users.PasswordSalt,
		).
		FROM(table.Users).
		WHERE(where).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.Secret{}, sql.ErrNoRows
		}
		return users.Secret{}, err
	}
	hash, err := hexToBytes(dbUser.PasswordHash)
	if err != nil {
		return users.Secret{}, err
	}
	salt, err := hexToBytes(dbUser.PasswordSalt)
	if err != nil {
		return users.Secret{}, err
	}
	return users.Secret{
		PasswordHash: hash,
		Salt:         salt,
	}, nil
}

func (s *Storage) CreateUser(ctx context.Context, user users.User, secret users.Secret) error {
	dbUser := model.Users{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: bytesToHex(secret.PasswordHash),
		PasswordSalt: bytesToHex(secret.Salt),
		IsAdmin:      user.IsAdmin(),
		CreatedAt:    time.Now(),
	}
	_, err := table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(dbUser).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"user": user.Name}).Info("user created")
	return nil
}

func (s *Storage) SignIn(ctx context.Context, name string, passwordHash []byte) (users.User, error) {
	var dest model.Users
	err := table.Users.
		SELECT(
			table.Users.AllColumns.Except(
				table.Users.PasswordHash,
				table.Users.PasswordSalt,
			),
		).
		FROM(table.Users).
		WHERE(
			table.Users.Name.EQ(sqlite.String(name)).
				AND(table.Users.PasswordHash.EQ(sqlite.String(bytesToHex(passwordHash)))),
		).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUser(dest)
}

func convertUser(user model.Users) (users.User, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return users.User{}, err
	}
	roles := []string{users.RoleUser}
	if user.IsAdmin {
		roles = append(roles, users.RoleAdmin)
	}
	return users.User{
		ID:           id,
		Name:         user.Name,
		Email:        user.Email,
		Roles:        roles,
		RegisteredAt: user.CreatedAt,
	}, nil
}

func bytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

func hexToBytes(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
