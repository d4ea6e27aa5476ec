package service

// QRCodeService defines the interface for PDV label generation and parsing
type QRCodeService interface {
	// GeneratePDVLabel renders a QR code PNG encoding the PDV code
	GeneratePDVLabel(pdvCode string) ([]byte, error)

	// ParsePDVLabel extracts the PDV code from scanned QR data
	ParsePDVLabel(qrData string) (string, error)
}
