package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates the pairing QR shown on the channel-connect step.
// The chat application scans it to bind the channel to the business profile.
type QRCodeService interface {
	// GeneratePairingQR returns a PNG-encoded QR code carrying the pairing payload.
	GeneratePairingQR(businessProfileID uuid.UUID) ([]byte, error)
}
