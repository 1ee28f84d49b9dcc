package users

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Roles        []string
	RegisteredAt time.Time
}

func (u User) IsAdmin() bool {
	for _, role := range u.Roles {
		if role == RoleAdmin {
			return true
		}
	}
	return false
}

type Secret struct {
	PasswordHash []byte
	Salt         []byte
}
