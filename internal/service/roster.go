package service

import (
	"context"

	"github.com/TheoIlgazCelik/uwh-team-maker/internal/cache/mem"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RosterService is the single gate to skill mutation. Everything that
// changes a skill goes through it so the roster cache stays honest.
type RosterService struct {
	roster storage.RosterStorage
	cache  *mem.Cache
	log    *logrus.Entry
}

func NewRosterService(l *logrus.Logger, roster storage.RosterStorage, cache *mem.Cache) *RosterService {
	return &RosterService{
		roster: roster,
		cache:  cache,
		log:    l.WithFields(map[string]interface{}{"from": "roster-service"}),
	}
}

func (s *RosterService) List(ctx context.Context) ([]domain.User, error) {
	return s.roster.ListUsers(ctx)
}

func (s *RosterService) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return s.roster.GetUser(ctx, id)
}

func (s *RosterService) GetByName(ctx context.Context, name string) (domain.User, error) {
	if user, ok := s.cache.GetUserByName(name); ok {
		return user, nil
	}
	if err := s.refill(ctx); err != nil {
		return domain.User{}, err
	}
	user, ok := s.cache.GetUserByName(name)
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

// Ratings is the roster sorted by skill descending.
func (s *RosterService) Ratings(ctx context.Context) ([]domain.User, error) {
	if users, ok := s.cache.Ratings(); ok {
		return users, nil
	}
	if err := s.refill(ctx); err != nil {
		return nil, err
	}
	users, _ := s.cache.Ratings()
	return users, nil
}

func (s *RosterService) refill(ctx context.Context) error {
	users, err := s.roster.ListUsers(ctx)
	if err != nil {
		return err
	}
	s.cache.Update(users)
	return nil
}

// SetSkill overwrites a user's skill with an absolute value.
func (s *RosterService) SetSkill(ctx context.Context, id uuid.UUID, skill int) (domain.User, error) {
	if skill < 0 {
		skill = 0
	}
	err := s.roster.SetSkill(ctx, id, skill)
	if err != nil {
		return domain.User{}, err
	}
	s.cache.Invalidate()
	s.log.WithFields(logrus.Fields{"user": id, "skill": skill}).Info("skill set")
	return s.roster.GetUser(ctx, id)
}

// AdjustSkills applies delta to every listed user atomically,
// clamping results at zero.
func (s *RosterService) AdjustSkills(ctx context.Context, ids []uuid.UUID, delta int) ([]domain.User, error) {
	users, err := s.roster.AdjustSkills(ctx, ids, delta)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return users, nil
}

func (s *RosterService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.roster.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	s.cache.Invalidate()
	s.log.WithFields(logrus.Fields{"user": id}).Info("user deleted")
	return nil
}

// InvalidateCache is for collaborators that mutate skills through
// their own storage path.
func (s *RosterService) InvalidateCache() {
	s.cache.Invalidate()
}
