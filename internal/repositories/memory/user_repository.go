package memory

import (
	"context"
	"strings"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
)

// UserRepository is the in-memory users table. Emails are unique without
// regard to case.
type UserRepository struct {
	store *Store
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) FindUserByID(_ context.Context, userID int64) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) {
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *UserRepository) SaveUser(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return apperrors.ErrDuplicate
		}
	}

	r.store.nextUserID++
	now := r.store.now()
	user.UserID = r.store.nextUserID
	user.CreatedAt = now
	user.UpdatedAt = now
	r.store.users[user.UserID] = *user
	return nil
}
