package payment

// PlatformFeeRate is the fixed platform commission on every payment.
const PlatformFeeRate = 0.15

// Fixed service prices.
const (
	PriceDocumentAnalysis = 49.90
	PriceConsultation     = 99.90
)

// CalculatePlatformFee returns the platform's cut of an amount.
func CalculatePlatformFee(amount float64) float64 {
	return amount * PlatformFeeRate
}
