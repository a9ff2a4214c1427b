package application

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/carebridge/careworker-go/internal/domain/user"
	"github.com/carebridge/careworker-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ImportResult reports per-row outcomes of a care-worker CSV import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

type ImportExportService struct {
	Repos *repository.Repos
}

func NewImportExportService(repos *repository.Repos) *ImportExportService {
	return &ImportExportService{Repos: repos}
}

// ImportCareWorkers reads a CSV with a header row and creates one
// user + profile per data row. Bad rows are reported as "Row N: ..." and do
// not abort the rest of the file.
func (s *ImportExportService) ImportCareWorkers(r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("could not read CSV header: %w", err)
	}

	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	get := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var result ImportResult
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}

		name := get(record, "name")
		email := get(record, "email")
		if name == "" || email == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: name and email are required", rowNum))
			continue
		}
		if !strings.Contains(email, "@") {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid email %q", rowNum, email))
			continue
		}

		taken, err := s.Repos.User.EmailTaken(email, 0)
		if err != nil {
			return result, err
		}
		if taken {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: email %q already exists", rowNum, email))
			continue
		}

		password := get(record, "password")
		if password == "" {
			password = "Welcome1!"
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return result, ErrPasswordHashFailure
		}

		status := user.StatusActive
		switch strings.ToLower(get(record, "status")) {
		case "inactive":
			status = user.StatusInactive
		case "pending":
			status = user.StatusPending
		}

		usr := user.User{
			Email:    email,
			Password: string(hashed),
			Role:     user.RoleCareWorker,
			Status:   status,
		}
		profile := user.CareWorkerProfile{Name: name}
		if v := get(record, "phone"); v != "" {
			profile.Phone = &v
		}
		if v := get(record, "address"); v != "" {
			profile.Address = &v
		}
		if v := get(record, "emergency_contact_name"); v != "" {
			profile.EmergencyContactName = &v
		}
		if v := get(record, "emergency_contact_phone"); v != "" {
			profile.EmergencyContactPhone = &v
		}

		err = s.Repos.ExecTx(func(tx *repository.Repos) error {
			if err := tx.User.SaveUser(&usr); err != nil {
				return err
			}
			profile.UserID = usr.ID
			return tx.User.SaveProfile(&profile)
		})
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		result.Imported++
	}
	return result, nil
}

// ExportCareWorkers renders the full care-worker listing as CSV bytes.
func (s *ImportExportService) ExportCareWorkers() ([]byte, string, error) {
	rows, err := s.Repos.User.ListCareWorkers(user.ListCareWorkersQuery{})
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{
		"name", "email", "phone", "address", "status",
		"progress", "pending_sign_offs", "total_forms", "completed_forms", "created_at",
	}); err != nil {
		return nil, "", err
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	for _, r := range rows {
		dto := r.ToDTO()
		record := []string{
			dto.Name,
			r.Email,
			deref(r.Phone),
			deref(r.Address),
			dto.Status,
			strconv.FormatFloat(dto.Progress, 'f', 1, 64),
			strconv.Itoa(dto.PendingSignOffs),
			strconv.Itoa(r.TotalForms),
			strconv.Itoa(r.CompletedForms),
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := "care-workers-" + time.Now().Format("2006-01-02") + ".csv"
	return buf.Bytes(), filename, nil
}
