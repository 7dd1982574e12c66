package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/xpnews/xpnews-backend/internal/domain/entity"
	repo "github.com/xpnews/xpnews-backend/internal/domain/repository"
	"github.com/xpnews/xpnews-backend/pkg/pagination"
)

// UserListClient fetches the user listing from the remote service. It is an
// interface so tests can substitute a fake without a network dependency.
type UserListClient interface {
	FindAll(ctx context.Context) (*pagination.Page[entity.UserProjection], error)
}

// Service orchestrates all user operations. Each method is a single
// synchronous unit of work; uniqueness stays enforced by the store, never by
// an application-level pre-check.
type Service struct {
	Repo   repo.UserRepository
	Client UserListClient
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, client UserListClient, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Client: client, Logger: logger}
}

// Create persists a new user. A storage integrity violation is translated
// into ErrDuplicateUser without reporting which field collided.
func (s *Service) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	s.Logger.WithField("username", u.Username).Info("creating a new user")
	if err := s.Repo.Save(ctx, u); err != nil {
		if errors.Is(err, repo.ErrIntegrityViolation) {
			s.Logger.WithField("username", u.Username).Error("create rejected: username or email already registered")
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

// FindAll returns one page of user projections, unchanged from the gateway.
func (s *Service) FindAll(ctx context.Context, pageable pagination.Pageable) (*pagination.Page[entity.UserProjection], error) {
	s.Logger.WithFields(logrus.Fields{"page": pageable.Page, "size": pageable.Size}).Info("listing users")
	return s.Repo.FindAllPageable(ctx, pageable)
}

func (s *Service) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	s.Logger.WithField("id", id).Info("looking up user by id")
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		s.Logger.WithField("id", id).Warn("user not found")
		return nil, fmt.Errorf("%w with the id: %d", ErrUserNotFound, id)
	}
	return u, nil
}

func (s *Service) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	s.Logger.WithField("username", username).Info("looking up user by username")
	u, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		s.Logger.WithField("username", username).Warn("user not found")
		return nil, fmt.Errorf("%w with the username: %s", ErrUserNotFound, username)
	}
	return u, nil
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.Logger.WithField("email", email).Info("looking up user by email")
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		s.Logger.WithField("email", email).Warn("user not found")
		return nil, fmt.Errorf("%w with the email: %s", ErrUserNotFound, email)
	}
	return u, nil
}

// UpdatePassword changes the stored password after validating the change.
// The confirmation check runs before any lookup: a mismatched confirmation
// fails even when the target user does not exist.
func (s *Service) UpdatePassword(ctx context.Context, id int64, currentPassword, newPassword, confirmationPassword string) error {
	s.Logger.WithField("id", id).Info("updating user password")
	if newPassword != confirmationPassword {
		s.Logger.WithField("id", id).Warn("new password and confirmation do not match")
		return ErrPasswordConfirmation
	}

	u, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u.Password != currentPassword {
		s.Logger.WithField("id", id).Warn("current password is incorrect")
		return ErrPasswordMismatch
	}

	u.Password = newPassword
	if err := s.Repo.Save(ctx, u); err != nil {
		return err
	}
	s.Logger.WithField("id", id).Info("password updated")
	return nil
}

// UpdateUser overwrites username, email, role and full name in place. The
// identifier is untouched; uniqueness is re-checked only by the store on save.
func (s *Service) UpdateUser(ctx context.Context, id int64, newData *entity.User) error {
	s.Logger.WithField("id", id).Info("updating user")
	u, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	u.Username = newData.Username
	u.Email = newData.Email
	u.Role = newData.Role
	u.FullName = newData.FullName

	if err := s.Repo.Save(ctx, u); err != nil {
		if errors.Is(err, repo.ErrIntegrityViolation) {
			return ErrDuplicateUser
		}
		return err
	}
	s.Logger.WithField("id", id).Info("user updated")
	return nil
}

// Delete removes the user unconditionally once located.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.Logger.WithField("id", id).Info("deleting user")
	u, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, u); err != nil {
		if errors.Is(err, repo.ErrIntegrityViolation) {
			s.Logger.WithField("id", id).Error("delete blocked by integrity violation")
			return ErrDatabase
		}
		return err
	}
	s.Logger.WithField("id", id).Info("user deleted")
	return nil
}

// FindAllWithClient returns the remote listing verbatim. Client failures
// propagate untranslated.
func (s *Service) FindAllWithClient(ctx context.Context) (*pagination.Page[entity.UserProjection], error) {
	s.Logger.Info("fetching user listing from remote service")
	return s.Client.FindAll(ctx)
}
