package validation

const (
	// Payment limits
	MinPaymentAmount = 0.01
	MaxPaymentAmount = 1000000.00

	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// String lengths
	MaxDescriptionLength = 500
	MaxNameLength        = 200

	// Upload limits
	MaxUploadSizeBytes = 10 << 20
)
