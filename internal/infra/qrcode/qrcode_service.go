package qrcode

import (
	"fmt"
	"strings"

	"mapnmeet/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	shareBaseURL         string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance. The generated
// codes point at shareBaseURL, so a scan opens the activity in a browser
// rather than needing the app to decode a payload.
func NewQRCodeService(shareBaseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		shareBaseURL:         strings.TrimRight(shareBaseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateActivityQR generates a PNG QR code for an activity's share URL.
func (s *qrcodeService) GenerateActivityQR(activityID uuid.UUID) ([]byte, error) {
	shareURL := s.ShareURL(activityID)

	qrCode, err := qrcode.New(shareURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ShareURL returns the public link an activity QR code encodes.
func (s *qrcodeService) ShareURL(activityID uuid.UUID) string {
	return fmt.Sprintf("%s/activities/%s", s.shareBaseURL, activityID)
}
