package document

import "time"

type UploadDocumentInput struct {
	CareWorkerID uint    `json:"careWorkerId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	FileURL      *string `json:"fileUrl"`
	FileType     *string `json:"fileType"`
	FileSize     *int64  `json:"fileSize"`
}

type UpdateDocumentInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" binding:"omitempty,oneof=Pending Completed"`
	SignedAt    *time.Time `json:"signedAt"`
}

type UploadCertificateInput struct {
	Name       string  `json:"name" binding:"required"`
	ExpiryDate *string `json:"expiryDate"`
	FileURL    string  `json:"fileUrl" binding:"required"`
	FileType   *string `json:"fileType"`
	FileSize   *int64  `json:"fileSize"`
}

// CertificateDTO is the care-worker facing certificate shape.
type CertificateDTO struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	ExpiryDate *string   `json:"expiryDate"`
	Type       string    `json:"type"`
	URL        *string   `json:"url"`
	FileName   string    `json:"fileName"`
	FileSize   *int64    `json:"fileSize"`
	CreatedAt  time.Time `json:"createdAt"`
}
