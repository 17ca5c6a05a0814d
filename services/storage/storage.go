package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"barberdesk/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// paymentProofFolder is where telebirr payment screenshots land.
const paymentProofFolder = "barberdesk/payment-proofs"

// StorageService stores payment-proof images and returns their public URLs.
type StorageService interface {
	UploadPaymentProof(ctx context.Context, file multipart.File, filename string) (string, error)
	DeletePaymentProof(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService initializes the Cloudinary client from config.
func NewCloudinaryStorageService() (*CloudinaryStorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

// UploadPaymentProof uploads a payment screenshot and returns its secure URL.
func (s *CloudinaryStorageService) UploadPaymentProof(ctx context.Context, file multipart.File, filename string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   paymentProofFolder,
		PublicID: filename,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload payment proof: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no URL returned for payment proof")
	}
	return result.SecureURL, nil
}

// DeletePaymentProof removes an uploaded payment screenshot.
func (s *CloudinaryStorageService) DeletePaymentProof(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete payment proof: %w", err)
	}
	return nil
}
