package assistant

import "strings"

// Service type labels suggested to the user when a budget need is detected.
const (
	ServiceTypeDefault      = "Serviço de regularização"
	ServiceTypeLegal        = "Consultoria jurídica"
	ServiceTypeTopography   = "Levantamento topográfico"
	ServiceTypeTechnical    = "Projeto técnico"
	ServiceTypeCertificates = "Emissão de certidões"
)

var budgetKeywords = []string{
	"quanto custa", "preço", "valor", "orçamento", "contratar",
	"preciso de", "quero contratar", "quanto cobram", "custo",
}

// BudgetInfo is the structured suggestion attached to a reply when the
// message indicates the user wants to hire a service.
type BudgetInfo struct {
	Needed      bool   `json:"needed"`
	ServiceType string `json:"serviceType,omitempty"`
	Description string `json:"description,omitempty"`
}

// DetectBudgetNeed scans the message for cost-related keywords and, when one
// is found, classifies which service the user likely needs.
func DetectBudgetNeed(message string) BudgetInfo {
	lower := strings.ToLower(message)

	needed := false
	for _, kw := range budgetKeywords {
		if strings.Contains(lower, kw) {
			needed = true
			break
		}
	}
	if !needed {
		return BudgetInfo{}
	}

	serviceType := ServiceTypeDefault
	switch {
	case strings.Contains(lower, "advogado"):
		serviceType = ServiceTypeLegal
	case strings.Contains(lower, "topógrafo"), strings.Contains(lower, "topografia"):
		serviceType = ServiceTypeTopography
	case strings.Contains(lower, "engenheiro"), strings.Contains(lower, "projeto"):
		serviceType = ServiceTypeTechnical
	case strings.Contains(lower, "certidão"), strings.Contains(lower, "documento"):
		serviceType = ServiceTypeCertificates
	}

	return BudgetInfo{
		Needed:      true,
		ServiceType: serviceType,
		Description: message,
	}
}
