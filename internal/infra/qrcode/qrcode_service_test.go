package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePairingQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	profileID := uuid.New()

	qrBytes, err := service.GeneratePairingQR(profileID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePairingQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")
			profileID := uuid.New()

			qrBytes, err := service.GeneratePairingQR(profileID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestParsePairingQR(t *testing.T) {
	profileID := uuid.New()

	data := PairingData{
		BusinessProfileID: profileID.String(),
		Type:              "channel-pairing",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := parsePairingQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, profileID, parsedID)
}

func TestParsePairingQR_InvalidJSON(t *testing.T) {
	_, err := parsePairingQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestParsePairingQR_InvalidType(t *testing.T) {
	data := PairingData{
		BusinessProfileID: uuid.New().String(),
		Type:              "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = parsePairingQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestParsePairingQR_InvalidUUID(t *testing.T) {
	data := PairingData{
		BusinessProfileID: "not-a-valid-uuid",
		Type:              "channel-pairing",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = parsePairingQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse business profile ID")
}
