package qrcode

import (
	"encoding/json"
	"strings"

	"fieldtrack/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// labelType marks payloads printed on PDV check-in labels.
const labelType = "pdv_checkin"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// LabelData is the JSON payload encoded in a PDV label.
type LabelData struct {
	PDVCode string `json:"pdv_code"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
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

// GeneratePDVLabel renders the printable label of a PDV as PNG
func (s *qrcodeService) GeneratePDVLabel(pdvCode string) ([]byte, error) {
	if strings.TrimSpace(pdvCode) == "" {
		return nil, errors.New("pdv code is empty")
	}

	payload, err := json.Marshal(LabelData{PDVCode: pdvCode, Type: labelType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal label data")
	}

	png, err := qrcode.Encode(string(payload), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code")
	}

	return png, nil
}

// ParsePDVLabel returns the PDV code of a scanned label
func (s *qrcodeService) ParsePDVLabel(qrData string) (string, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "label is not valid JSON")
	}
	if data.Type != labelType {
		return "", errors.Errorf("unexpected label type: %q", data.Type)
	}

	code := strings.TrimSpace(data.PDVCode)
	if code == "" {
		return "", errors.New("label has no pdv code")
	}

	return code, nil
}
