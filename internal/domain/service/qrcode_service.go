package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateActivityQR renders a PNG QR code pointing at the public share
	// URL of an activity.
	GenerateActivityQR(activityID uuid.UUID) ([]byte, error)
}
