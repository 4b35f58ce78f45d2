package memory

import (
	"context"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"
)

// userRepository implements repository.UserRepository
type userRepository struct {
	store *store[domain.User]
}

// NewUserRepository creates a new in-memory User repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{store: newStore[domain.User]()}
}

// Create stores a new user and assigns its id.
func (r *userRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	id := r.store.insert(*user, func(u *domain.User, id int64) { u.ID = id })
	user.ID = id
	return id, nil
}

// GetByID retrieves a user by its id.
func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := r.store.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

// GetByUsername retrieves a user by exact username match (case-sensitive).
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := r.store.find(func(u domain.User) bool { return u.Username == username })
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

// Update merges the provided profile fields onto the stored user.
func (r *userRepository) Update(ctx context.Context, id int64, patch domain.UserUpdate) (*domain.User, error) {
	user, ok := r.store.update(id, func(u *domain.User) {
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.ProfilePicture != nil {
			u.ProfilePicture = *patch.ProfilePicture
		}
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}
