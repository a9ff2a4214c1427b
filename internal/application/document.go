package application

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/carebridge/careworker-go/internal/domain/document"
	"github.com/carebridge/careworker-go/internal/repository"
	"github.com/carebridge/careworker-go/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrNotACertificate  = errors.New("document is not a certificate")
	ErrFileUploadFailed = errors.New("file upload failed")
)

type DocumentService struct {
	Repos *repository.Repos
}

func NewDocumentService(repos *repository.Repos) *DocumentService {
	return &DocumentService{Repos: repos}
}

func (s *DocumentService) ListByWorker(workerID uint) ([]document.Document, error) {
	return s.Repos.Document.ListByWorker(workerID)
}

func (s *DocumentService) Get(id uint) (document.Document, error) {
	d, err := s.Repos.Document.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return document.Document{}, ErrDocumentNotFound
		}
		return document.Document{}, err
	}
	return d, nil
}

// Create records document metadata; the file itself, when provided, is
// stored first via UploadFile and referenced by object key.
func (s *DocumentService) Create(uploadedBy uint, input document.UploadDocumentInput) (document.Document, error) {
	if _, err := s.Repos.User.GetUserByID(input.CareWorkerID); err != nil {
		return document.Document{}, ErrCareWorkerNotFound
	}

	d := document.Document{
		CareWorkerID: input.CareWorkerID,
		Name:         input.Name,
		Description:  input.Description,
		FileURL:      input.FileURL,
		FileType:     input.FileType,
		FileSize:     input.FileSize,
		UploadedBy:   uploadedBy,
		Status:       document.StatusPending,
	}
	if err := s.Repos.Document.Create(&d); err != nil {
		return document.Document{}, err
	}
	return d, nil
}

// UploadFile streams a file into object storage and returns the object key.
func (s *DocumentService) UploadFile(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	key, err := storage.UploadObject(ctx, filename, contentType, size, r)
	if err != nil {
		return "", ErrFileUploadFailed
	}
	return key, nil
}

func (s *DocumentService) Update(id uint, input document.UpdateDocumentInput) (document.Document, error) {
	d, err := s.Get(id)
	if err != nil {
		return document.Document{}, err
	}

	if input.Name != nil {
		d.Name = *input.Name
	}
	if input.Description != nil {
		d.Description = input.Description
	}
	if input.Status != nil {
		d.Status = document.Status(*input.Status)
	}
	if input.SignedAt != nil {
		d.SignedAt = input.SignedAt
	}
	if err := s.Repos.Document.Save(&d); err != nil {
		return document.Document{}, err
	}
	return d, nil
}

// Delete removes the record, then best-effort deletes the stored object.
// Object deletion failure is logged, not surfaced: the record is gone.
func (s *DocumentService) Delete(ctx context.Context, id uint) error {
	d, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.Repos.Document.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}
	if d.FileURL != nil && *d.FileURL != "" {
		if err := storage.DeleteObject(ctx, *d.FileURL); err != nil {
			log.Printf("failed to delete stored object %s: %v", *d.FileURL, err)
		}
	}
	return nil
}

// CreateCertificate stores a certificate for the worker using the shared
// documents table.
func (s *DocumentService) CreateCertificate(workerID uint, input document.UploadCertificateInput) (document.Document, error) {
	d := document.Document{
		CareWorkerID: workerID,
		Name:         input.Name,
		FileURL:      &input.FileURL,
		FileType:     input.FileType,
		FileSize:     input.FileSize,
		UploadedBy:   workerID,
		Status:       document.StatusCompleted,
	}
	if input.ExpiryDate != nil && *input.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", *input.ExpiryDate)
		if err != nil {
			return document.Document{}, errors.New("expiry date must be YYYY-MM-DD")
		}
		d.ExpiryDate = &expiry
	}
	if err := s.Repos.Document.Create(&d); err != nil {
		return document.Document{}, err
	}
	return d, nil
}

func (s *DocumentService) ListCertificates(ctx context.Context, workerID uint) ([]document.CertificateDTO, error) {
	docs, err := s.Repos.Document.ListCertificates(workerID)
	if err != nil {
		return nil, err
	}
	dtos := make([]document.CertificateDTO, 0, len(docs))
	for _, d := range docs {
		dto := document.CertificateDTO{
			ID:        d.ID,
			Name:      d.Name,
			Type:      "certificate",
			FileName:  d.Name,
			FileSize:  d.FileSize,
			CreatedAt: d.CreatedAt,
		}
		if d.ExpiryDate != nil {
			expiry := d.ExpiryDate.Format("2006-01-02")
			dto.ExpiryDate = &expiry
		}
		if d.FileURL != nil && *d.FileURL != "" {
			if url, err := storage.PresignedURL(ctx, *d.FileURL); err == nil {
				dto.URL = &url
			}
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

// DeleteCertificate deletes a certificate owned by the worker.
func (s *DocumentService) DeleteCertificate(ctx context.Context, workerID, id uint) error {
	d, err := s.Get(id)
	if err != nil {
		return err
	}
	if d.CareWorkerID != workerID {
		return ErrDocumentNotFound
	}
	if !d.IsCertificate() {
		return ErrNotACertificate
	}
	return s.Delete(ctx, id)
}
