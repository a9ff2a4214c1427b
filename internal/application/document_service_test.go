package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/carebridge/careworker-go/internal/domain/document"
	"github.com/carebridge/careworker-go/internal/repository"
	"github.com/carebridge/careworker-go/internal/repository/mock"
	"github.com/carebridge/careworker-go/internal/storage"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
func setupDocumentServiceMocks(t *testing.T) (*DocumentService, *mock.MockDocumentRepo, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockDocument := mock.NewMockDocumentRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		Document: mockDocument,
		User:     mockUser,
	}
	svc := NewDocumentService(repos)
	return svc, mockDocument, mockUser
}

// --------------------- UploadFile ---------------------
func TestUploadFile_WrapsStorageFailure(t *testing.T) {
	svc, _, _ := setupDocumentServiceMocks(t)

	oldUpload := storage.UploadObject
	storage.UploadObject = func(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
		return "", errors.New("minio down")
	}
	defer func() { storage.UploadObject = oldUpload }()

	_, err := svc.UploadFile(context.Background(), "cv.pdf", "application/pdf", 10, strings.NewReader("x"))
	assert.Equal(t, ErrFileUploadFailed, err)
}

func TestUploadFile_ReturnsObjectKey(t *testing.T) {
	svc, _, _ := setupDocumentServiceMocks(t)

	oldUpload := storage.UploadObject
	storage.UploadObject = func(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
		assert.Equal(t, "cv.pdf", filename)
		return "abc123.pdf", nil
	}
	defer func() { storage.UploadObject = oldUpload }()

	key, err := svc.UploadFile(context.Background(), "cv.pdf", "application/pdf", 10, strings.NewReader("x"))
	assert.NoError(t, err)
	assert.Equal(t, "abc123.pdf", key)
}

// --------------------- Delete ---------------------
func TestDeleteDocument_StorageFailureIsNotSurfaced(t *testing.T) {
	svc, mockDocument, _ := setupDocumentServiceMocks(t)

	fileURL := "abc123.pdf"
	mockDocument.EXPECT().FindByID(uint(1)).Return(document.Document{ID: 1, Name: "CV", FileURL: &fileURL}, nil)
	mockDocument.EXPECT().Delete(uint(1)).Return(nil)

	oldDelete := storage.DeleteObject
	deleted := ""
	storage.DeleteObject = func(ctx context.Context, key string) error {
		deleted = key
		return errors.New("minio down")
	}
	defer func() { storage.DeleteObject = oldDelete }()

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, "abc123.pdf", deleted)
}

// --------------------- CreateCertificate ---------------------
func TestCreateCertificate_ParsesExpiry(t *testing.T) {
	svc, mockDocument, _ := setupDocumentServiceMocks(t)

	var saved document.Document
	mockDocument.EXPECT().Create(gomock.Any()).DoAndReturn(func(d *document.Document) error {
		saved = *d
		return nil
	})

	expiry := "2027-03-15"
	_, err := svc.CreateCertificate(5, document.UploadCertificateInput{
		Name:       "First Aid Certificate",
		FileURL:    "cert.pdf",
		ExpiryDate: &expiry,
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(5), saved.CareWorkerID)
	assert.Equal(t, document.StatusCompleted, saved.Status)
	assert.Equal(t, time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC), *saved.ExpiryDate)
}

func TestCreateCertificate_BadExpiry(t *testing.T) {
	svc, _, _ := setupDocumentServiceMocks(t)

	expiry := "15/03/2027"
	_, err := svc.CreateCertificate(5, document.UploadCertificateInput{
		Name:       "First Aid Certificate",
		FileURL:    "cert.pdf",
		ExpiryDate: &expiry,
	})
	assert.Error(t, err)
}

// --------------------- DeleteCertificate ---------------------
func TestDeleteCertificate_OwnershipEnforced(t *testing.T) {
	svc, mockDocument, _ := setupDocumentServiceMocks(t)

	mockDocument.EXPECT().FindByID(uint(1)).Return(document.Document{ID: 1, CareWorkerID: 5, Name: "First Aid Certificate"}, nil)

	err := svc.DeleteCertificate(context.Background(), 6, 1)
	assert.Equal(t, ErrDocumentNotFound, err)
}

func TestDeleteCertificate_RejectsPlainDocument(t *testing.T) {
	svc, mockDocument, _ := setupDocumentServiceMocks(t)

	mockDocument.EXPECT().FindByID(uint(1)).Return(document.Document{ID: 1, CareWorkerID: 5, Name: "CV"}, nil)

	err := svc.DeleteCertificate(context.Background(), 5, 1)
	assert.Equal(t, ErrNotACertificate, err)
}
