package mem

import (
	"sort"
	"sync"

	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/normalize"
)

// Cache is a roster snapshot keyed by normalized user name. Any skill
// mutation invalidates it; readers fall back to storage until the next
// Update.
type Cache struct {
	mu    sync.RWMutex
	valid bool
	users map[string]domain.User
}

func New() *Cache {
	return &Cache{
		users: make(map[string]domain.User),
	}
}

func (c *Cache) Update(users []domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.users = make(map[string]domain.User)
	for i := range users {
		name := normalize.Name(users[i].Name)
		c.users[name] = users[i]
	}
	c.valid = true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}

func (c *Cache) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.valid
}

func (c *Cache) GetUserByName(name string) (domain.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return domain.User{}, false
	}
	user, ok := c.users[normalize.Name(name)]
	if !ok {
		return domain.User{}, false
	}
	return user, true
}

// Ratings returns the cached roster sorted by skill descending.
func (c *Cache) Ratings() ([]domain.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return nil, false
	}
	users := make([]domain.User, 0, len(c.users))
	for _, user := range c.users {
		users = append(users, user)
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Skill > users[j].Skill
	})
	return users, true
}
