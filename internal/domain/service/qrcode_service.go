package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateSiteQR encodes a public site URL as a PNG QR image so owners
	// can share their page offline.
	GenerateSiteQR(siteURL string) ([]byte, error)
}
