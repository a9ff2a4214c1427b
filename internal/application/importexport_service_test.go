package application

import (
	"strings"
	"testing"
	"time"

	"github.com/carebridge/careworker-go/internal/domain/user"
	"github.com/carebridge/careworker-go/internal/repository"
	"github.com/carebridge/careworker-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// --------------------- Setup ---------------------
func setupImportExportServiceMocks(t *testing.T) (*ImportExportService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	svc := NewImportExportService(repos)
	return svc, mockUser
}

// --------------------- ImportCareWorkers ---------------------
func TestImportCareWorkers_MixedRows(t *testing.T) {
	svc, mockUser := setupImportExportServiceMocks(t)

	csvData := strings.Join([]string{
		"name,email,phone,status",
		"Ada Lovelace,ada@carebridge.test,0712345678,active",
		",missing-name@carebridge.test,,",
		"No Email Person,,,",
		"Bad Email,not-an-email,,",
		"Dupe Person,dupe@carebridge.test,,",
	}, "\n")

	mockUser.EXPECT().EmailTaken("ada@carebridge.test", uint(0)).Return(false, nil)
	mockUser.EXPECT().EmailTaken("dupe@carebridge.test", uint(0)).Return(true, nil)

	var savedUser user.User
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 42
		savedUser = *u
		return nil
	})
	var savedProfile user.CareWorkerProfile
	mockUser.EXPECT().SaveProfile(gomock.Any()).DoAndReturn(func(p *user.CareWorkerProfile) error {
		savedProfile = *p
		return nil
	})

	result, err := svc.ImportCareWorkers(strings.NewReader(csvData))
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 4, result.Skipped)
	assert.Equal(t, []string{
		"Row 3: name and email are required",
		"Row 4: name and email are required",
		`Row 5: invalid email "not-an-email"`,
		`Row 6: email "dupe@carebridge.test" already exists`,
	}, result.Errors)

	assert.Equal(t, user.RoleCareWorker, savedUser.Role)
	assert.Equal(t, user.StatusActive, savedUser.Status)
	assert.Equal(t, uint(42), savedProfile.UserID)
	assert.Equal(t, "Ada Lovelace", savedProfile.Name)
	assert.Equal(t, "0712345678", *savedProfile.Phone)

	// rows without a password column get the onboarding default
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedUser.Password), []byte("Welcome1!")))
}

func TestImportCareWorkers_EmptyFileFails(t *testing.T) {
	svc, _ := setupImportExportServiceMocks(t)

	_, err := svc.ImportCareWorkers(strings.NewReader(""))
	assert.Error(t, err)
}

// --------------------- ExportCareWorkers ---------------------
func TestExportCareWorkers_Layout(t *testing.T) {
	svc, mockUser := setupImportExportServiceMocks(t)

	name := "Ada Lovelace"
	phone := "0712345678"
	progress := 75.0
	pending := 2
	mockUser.EXPECT().ListCareWorkers(user.ListCareWorkersQuery{}).Return([]user.CareWorkerRow{
		{
			ID:              1,
			Email:           "ada@carebridge.test",
			Status:          user.StatusActive,
			Name:            &name,
			Phone:           &phone,
			Progress:        &progress,
			PendingSignOffs: &pending,
			TotalForms:      4,
			CompletedForms:  3,
			CreatedAt:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
	}, nil)

	data, filename, err := svc.ExportCareWorkers()
	assert.NoError(t, err)
	assert.Equal(t, "care-workers-"+time.Now().Format("2006-01-02")+".csv", filename)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "name,email,phone,address,status,progress,pending_sign_offs,total_forms,completed_forms,created_at", lines[0])
	assert.Equal(t, "Ada Lovelace,ada@carebridge.test,0712345678,,Active,75.0,2,4,3,2026-08-01T12:00:00Z", lines[1])
}
