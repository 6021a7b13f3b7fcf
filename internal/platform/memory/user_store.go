package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
)

// UserStore is an in-memory store.UserStore.
type UserStore struct {
	mu         sync.RWMutex
	nextID     int64
	users      map[int64]*domain.User
	byEmail    map[string]int64
	byUsername map[string]int64
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty UserStore. IDs start at 1.
func NewUserStore() *UserStore {
	return &UserStore{
		users:      make(map[int64]*domain.User),
		byEmail:    make(map[string]int64),
		byUsername: make(map[string]int64),
	}
}

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[user.Email]; taken {
		return store.ErrEmailExists
	}
	if _, taken := s.byUsername[user.Username]; taken {
		return store.ErrUsernameExists
	}

	s.nextID++
	user.ID = s.nextID

	stored := *user
	s.users[stored.ID] = &stored
	s.byEmail[stored.Email] = stored.ID
	s.byUsername[stored.Username] = stored.ID

	return nil
}

// GetByID implements store.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	c := *user
	return &c, nil
}

// GetByEmail implements store.UserStore.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	c := *s.users[id]
	return &c, nil
}

// Update implements store.UserStore.
func (s *UserStore) Update(
	ctx context.Context,
	id int64,
	fn func(user *domain.User) error,
) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	working := *existing
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.ID = existing.ID
	working.CreatedAt = existing.CreatedAt

	if err := working.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if owner, taken := s.byEmail[working.Email]; taken && owner != id {
		return nil, store.ErrEmailExists
	}
	if owner, taken := s.byUsername[working.Username]; taken && owner != id {
		return nil, store.ErrUsernameExists
	}

	delete(s.byEmail, existing.Email)
	delete(s.byUsername, existing.Username)

	working.UpdatedAt = time.Now().UTC()
	s.users[id] = &working
	s.byEmail[working.Email] = id
	s.byUsername[working.Username] = id

	c := working
	return &c, nil
}
