package application

import (
	"errors"
	"strconv"
	"strings"

	"github.com/carebridge/careworker-go/internal/domain/user"
	"github.com/carebridge/careworker-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrCareWorkerNotFound = errors.New("care worker not found")

type CareWorkerService struct {
	Repos *repository.Repos
}

func NewCareWorkerService(repos *repository.Repos) *CareWorkerService {
	return &CareWorkerService{Repos: repos}
}

func (s *CareWorkerService) List(q user.ListCareWorkersQuery) ([]user.CareWorkerDTO, error) {
	rows, err := s.Repos.User.ListCareWorkers(q)
	if err != nil {
		return nil, err
	}
	minP, maxP, ranged := parseProgressRange(q.Progress)
	dtos := make([]user.CareWorkerDTO, 0, len(rows))
	for _, r := range rows {
		if ranged {
			p := 0.0
			if r.Progress != nil {
				p = *r.Progress
			}
			if p < minP || p > maxP {
				continue
			}
		}
		dtos = append(dtos, r.ToDTO())
	}
	return dtos, nil
}

// parseProgressRange reads a "min-max" percent range ("0-50"). Malformed
// or empty values disable the filter.
func parseProgressRange(s string) (float64, float64, bool) {
	if s == "" || s == "All" {
		return 0, 0, false
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	if hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}

func (s *CareWorkerService) Get(id uint) (user.CareWorkerDTO, error) {
	row, err := s.Repos.User.GetCareWorkerRow(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.CareWorkerDTO{}, ErrCareWorkerNotFound
		}
		return user.CareWorkerDTO{}, err
	}
	return row.ToDTO(), nil
}

// Create makes the user account and its profile in one transaction.
func (s *CareWorkerService) Create(input user.CreateCareWorkerInput) (user.CareWorkerDTO, error) {
	taken, err := s.Repos.User.EmailTaken(input.Email, 0)
	if err != nil {
		return user.CareWorkerDTO{}, err
	}
	if taken {
		return user.CareWorkerDTO{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.CareWorkerDTO{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Email:    input.Email,
		Password: string(hashed),
		Role:     user.RoleCareWorker,
		Status:   user.StatusActive,
	}
	if input.Status != nil {
		usr.Status = user.Status(*input.Status)
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.User.SaveUser(&usr); err != nil {
			return err
		}
		profile := user.CareWorkerProfile{
			UserID:                usr.ID,
			Name:                  input.Name,
			Phone:                 input.Phone,
			Address:               input.Address,
			EmergencyContactName:  input.EmergencyContactName,
			EmergencyContactPhone: input.EmergencyContactPhone,
		}
		if input.Progress != nil {
			profile.Progress = *input.Progress
		}
		if input.PendingSignOffs != nil {
			profile.PendingSignOffs = *input.PendingSignOffs
		}
		return tx.User.SaveProfile(&profile)
	})
	if err != nil {
		return user.CareWorkerDTO{}, err
	}
	return s.Get(usr.ID)
}

func (s *CareWorkerService) Update(id uint, input user.UpdateCareWorkerInput) (user.CareWorkerDTO, error) {
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		usr, err := tx.User.GetUserByID(id)
		if err != nil {
			return ErrCareWorkerNotFound
		}

		changed := false
		if input.Email != nil && *input.Email != usr.Email {
			taken, err := tx.User.EmailTaken(*input.Email, id)
			if err != nil {
				return err
			}
			if taken {
				return ErrEmailTaken
			}
			usr.Email = *input.Email
			changed = true
		}
		if input.Password != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
			if err != nil {
				return ErrPasswordHashFailure
			}
			usr.Password = string(hashed)
			changed = true
		}
		if input.Status != nil {
			usr.Status = user.Status(*input.Status)
			changed = true
		}
		if changed {
			if err := tx.User.SaveUser(&usr); err != nil {
				return err
			}
		}

		profile, err := tx.User.GetProfileByUserID(id)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			profile = user.CareWorkerProfile{UserID: id}
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
		if input.Progress != nil {
			profile.Progress = *input.Progress
		}
		if input.PendingSignOffs != nil {
			profile.PendingSignOffs = *input.PendingSignOffs
		}
		return tx.User.SaveProfile(&profile)
	})
	if err != nil {
		return user.CareWorkerDTO{}, err
	}
	return s.Get(id)
}

// Delete removes the account and its profile. Assignment, document and
// payroll rows keep their worker id and stay in place for record keeping.
func (s *CareWorkerService) Delete(id uint) error {
	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if _, err := tx.User.GetUserByID(id); err != nil {
			return ErrCareWorkerNotFound
		}
		if err := tx.User.DeleteProfileByUserID(id); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.User.DeleteUser(id)
	})
}
