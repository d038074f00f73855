package catalog

import (
	"strconv"
	"strings"
)

// Quote is the cost breakdown for a catalog order.
type Quote struct {
	RegistryFee float64 `json:"registry_fee"`
	PlatformFee float64 `json:"platform_fee"`
	Total       float64 `json:"total"`
}

// MissingFields returns the required fields of the subclass that are empty
// or absent in the submitted form, in catalog order.
func MissingFields(sub Subclass, form map[string]string) []string {
	var missing []string
	for _, field := range sub.RequiredFields {
		if strings.TrimSpace(form[field]) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// BuildQuote computes the total cost for a subclass and form. For rate-based
// acts (escritura de compra e venda) the registry fee is the declared value
// times the rate; otherwise the catalog's flat cost applies. The platform fee
// depends on whether the subclass belongs to a certificate or an act class.
// The function is pure: identical inputs always produce identical quotes.
func BuildQuote(sub Subclass, form map[string]string) Quote {
	registryFee := sub.EstimatedCost
	if sub.CostIsRate {
		if v, err := strconv.ParseFloat(strings.TrimSpace(form["valor"]), 64); err == nil && v > 0 {
			registryFee = v * sub.EstimatedCost
		}
	}

	platformFee := CertificatePlatformFee
	if ClassType(sub.ClassID) == TypeAct {
		platformFee = ActPlatformFee
	}

	return Quote{
		RegistryFee: registryFee,
		PlatformFee: platformFee,
		Total:       registryFee + platformFee,
	}
}
