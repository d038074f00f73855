// Package catalog holds the static certificate and notarial act catalog.
// The catalog is compiled into the application and is not user-mutable.
package catalog

// Class types
const (
	TypeCertificate = "certificate"
	TypeAct         = "act"
)

// Platform service fees charged on top of the registry cost.
const (
	CertificatePlatformFee = 9.90
	ActPlatformFee         = 19.90
)

// Class is a top-level registry group (Registro de Imóveis, Registro Civil,
// Tabelionato de Notas, buscas).
type Class struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Subclass is an orderable certificate or act. EstimatedCost is a flat fee in
// BRL unless CostIsRate is set, in which case it is a fraction of the declared
// value ("valor" form field).
type Subclass struct {
	ID             string   `json:"id"`
	ClassID        string   `json:"class_id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RequiredFields []string `json:"required_fields"`
	EstimatedCost  float64  `json:"estimated_cost"`
	CostIsRate     bool     `json:"cost_is_rate"`
	ProcessingTime string   `json:"processing_time"`
}

var classes = []Class{
	{ID: "A", Name: "Registro de Imóveis", Description: "Certidões e atos relacionados ao registro imobiliário", Type: TypeCertificate},
	{ID: "B", Name: "Registro Civil de Pessoas Naturais", Description: "Certidões de nascimento, casamento, óbito e averbações", Type: TypeCertificate},
	{ID: "C", Name: "Notas / Tabelionato de Notas", Description: "Atos notariais, escrituras e procurações", Type: TypeAct},
	{ID: "D", Name: "Outras buscas / pesquisas", Description: "Pesquisas especializadas em CPF/CNPJ ou nome", Type: TypeCertificate},
}

var subclasses = map[string][]Subclass{
	"A": {
		{ID: "A1", ClassID: "A", Name: "Certidão de inteiro teor (matrícula) do imóvel", Description: "Certidão completa da matrícula imobiliária", RequiredFields: []string{"matricula"}, EstimatedCost: 25.00, ProcessingTime: "2-5 dias úteis"},
		{ID: "A2", ClassID: "A", Name: "Certidão de ônus e ações reais", Description: "Verificação de gravames e ações sobre o imóvel", RequiredFields: []string{"matricula", "proprietario"}, EstimatedCost: 20.00, ProcessingTime: "1-3 dias úteis"},
		{ID: "A3", ClassID: "A", Name: "Certidão negativa de propriedade", Description: "Comprovação de ausência de registro", RequiredFields: []string{"cpf_cnpj", "nome"}, EstimatedCost: 15.00, ProcessingTime: "1-2 dias úteis"},
		{ID: "A4", ClassID: "A", Name: "Certidão quinzenária/vintenária", Description: "Histórico de 15 ou 20 anos do imóvel", RequiredFields: []string{"matricula"}, EstimatedCost: 35.00, ProcessingTime: "3-7 dias úteis"},
		{ID: "A5", ClassID: "A", Name: "Busca por nome/CPF para imóveis", Description: "Pesquisa de imóveis em nome de pessoa física/jurídica", RequiredFields: []string{"cpf_cnpj", "nome"}, EstimatedCost: 30.00, ProcessingTime: "2-4 dias úteis"},
	},
	"B": {
		{ID: "B1", ClassID: "B", Name: "Certidão de nascimento", Description: "Certidão de nascimento em breve ou inteiro teor", RequiredFields: []string{"nome", "data_nascimento", "livro", "folha"}, EstimatedCost: 15.00, ProcessingTime: "1-2 dias úteis"},
		{ID: "B2", ClassID: "B", Name: "Certidão de casamento", Description: "Certidão de casamento em breve ou inteiro teor", RequiredFields: []string{"nome", "data_casamento", "livro", "folha"}, EstimatedCost: 15.00, ProcessingTime: "1-2 dias úteis"},
		{ID: "B3", ClassID: "B", Name: "Certidão de óbito", Description: "Certidão de óbito", RequiredFields: []string{"nome", "data_obito", "livro", "folha"}, EstimatedCost: 15.00, ProcessingTime: "1-2 dias úteis"},
	},
	"C": {
		{ID: "C1", ClassID: "C", Name: "Escritura de Compra e Venda", Description: "Escritura pública de compra e venda de imóvel", RequiredFields: []string{"valor", "partes", "imovel"}, EstimatedCost: 0.0075, CostIsRate: true, ProcessingTime: "5-10 dias úteis"},
		{ID: "C2", ClassID: "C", Name: "Doação", Description: "Escritura pública de doação", RequiredFields: []string{"doador", "donatario", "bem"}, EstimatedCost: 0.01, CostIsRate: true, ProcessingTime: "3-7 dias úteis"},
		{ID: "C3", ClassID: "C", Name: "Procuração", Description: "Procuração pública", RequiredFields: []string{"outorgante", "outorgado", "poderes"}, EstimatedCost: 50.00, ProcessingTime: "1-2 dias úteis"},
	},
	"D": {
		{ID: "D1", ClassID: "D", Name: "Pesquisa em CPF/CNPJ", Description: "Pesquisa de bens e imóveis em nome de pessoa física/jurídica", RequiredFields: []string{"cpf_cnpj"}, EstimatedCost: 40.00, ProcessingTime: "2-5 dias úteis"},
	},
}

// Classes returns every catalog class.
func Classes() []Class {
	out := make([]Class, len(classes))
	copy(out, classes)
	return out
}

// FindClass returns the class with the given ID.
func FindClass(id string) (Class, bool) {
	for _, c := range classes {
		if c.ID == id {
			return c, true
		}
	}
	return Class{}, false
}

// Subclasses returns the subclasses for a class ID.
func Subclasses(classID string) []Subclass {
	subs := subclasses[classID]
	out := make([]Subclass, len(subs))
	copy(out, subs)
	return out
}

// FindSubclass returns the subclass with the given ID.
func FindSubclass(id string) (Subclass, bool) {
	for _, subs := range subclasses {
		for _, s := range subs {
			if s.ID == id {
				return s, true
			}
		}
	}
	return Subclass{}, false
}

// ClassType returns "certificate" or "act" for a class ID, defaulting to
// certificate for unknown classes.
func ClassType(classID string) string {
	if c, ok := FindClass(classID); ok {
		return c.Type
	}
	return TypeCertificate
}
