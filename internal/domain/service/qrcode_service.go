package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProductQR generates a QR code encoding a shareable product link
	GenerateProductQR(productID uuid.UUID) ([]byte, error)

	// ParseProductQR parses QR code data and returns the product ID
	ParseProductQR(qrData string) (uuid.UUID, error)
}
