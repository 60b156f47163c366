// Package qrcode renders the channel pairing code shown on the final
// onboarding step.
package qrcode

import (
	"encoding/json"
	"fmt"

	"lapak/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PairingData is the payload embedded in the pairing QR. The chat
// application scans it to bind its channel to the business profile.
type PairingData struct {
	BusinessProfileID string `json:"business_profile_id"`
	Type              string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePairingQR returns a PNG-encoded QR code carrying the pairing payload.
func (s *qrcodeService) GeneratePairingQR(businessProfileID uuid.UUID) ([]byte, error) {
	data := PairingData{
		BusinessProfileID: businessProfileID.String(),
		Type:              "channel-pairing",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// parsePairingQR parses pairing payload JSON and returns the profile ID.
func parsePairingQR(qrData string) (uuid.UUID, error) {
	var data PairingData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "channel-pairing" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	profileID, err := uuid.Parse(data.BusinessProfileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse business profile ID: %w", err)
	}

	return profileID, nil
}
