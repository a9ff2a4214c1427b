package application

import (
	"errors"
	"time"

	"github.com/carebridge/careworker-go/internal/api/middleware"
	"github.com/carebridge/careworker-go/internal/domain/user"
	"github.com/carebridge/careworker-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInactiveAccount     = errors.New("account is not active")
	ErrUserNotFound        = errors.New("user not found")
	ErrIncorrectPassword   = errors.New("current password is incorrect")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrEmailTaken          = errors.New("email already in use")
)

type AuthService struct {
	Repos *repository.Repos
}

func NewAuthService(repos *repository.Repos) *AuthService {
	return &AuthService{Repos: repos}
}

func (s *AuthService) Login(input user.LoginInput) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(input.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if usr.Status != user.StatusActive {
		return user.User{}, "", ErrInactiveAccount
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Email, string(usr.Role), 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

// Me returns the user record plus the care-worker profile when one exists.
func (s *AuthService) Me(userID uint) (user.User, *user.CareWorkerProfile, error) {
	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return user.User{}, nil, ErrUserNotFound
	}
	profile, err := s.Repos.User.GetProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usr, nil, nil
		}
		return user.User{}, nil, err
	}
	return usr, &profile, nil
}

// UpdateProfile updates the caller's email and profile fields, creating the
// profile row lazily when it does not exist yet.
func (s *AuthService) UpdateProfile(userID uint, input user.UpdateProfileInput) (user.User, *user.CareWorkerProfile, error) {
	var usr user.User
	var profile user.CareWorkerProfile

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		usr, err = tx.User.GetUserByID(userID)
		if err != nil {
			return ErrUserNotFound
		}

		if input.Email != nil && *input.Email != usr.Email {
			taken, err := tx.User.EmailTaken(*input.Email, userID)
			if err != nil {
				return err
			}
			if taken {
				return ErrEmailTaken
			}
			usr.Email = *input.Email
			if err := tx.User.SaveUser(&usr); err != nil {
				return err
			}
		}

		profile, err = tx.User.GetProfileByUserID(userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			profile = user.CareWorkerProfile{UserID: userID}
		}

		if input.Name != nil {
			profile.Name = *input.Name
		}
		if input.Phone != nil {
			profile.Phone = input.Phone
		}
		if input.Address != nil {
			profile.Address = input.Address
		}
		if input.EmergencyContactName != nil {
			profile.EmergencyContactName = input.EmergencyContactName
		}
		if input.EmergencyContactPhone != nil {
			profile.EmergencyContactPhone = input.EmergencyContactPhone
		}
		return tx.User.SaveProfile(&profile)
	})
	if err != nil {
		return user.User{}, nil, err
	}
	return usr, &profile, nil
}

func (s *AuthService) ChangePassword(userID uint, input user.ChangePasswordInput) error {
	usr, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(input.CurrentPassword)); err != nil {
		return ErrIncorrectPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}
	usr.Password = string(hashed)
	return s.Repos.User.SaveUser(&usr)
}
