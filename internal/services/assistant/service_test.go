package assistant

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespond_AllProfilesReturnText(t *testing.T) {
	svc := NewService(nil)
	profiles := []string{"comum", "advogado", "corretor", "engenheiro"}

	messages := []string{
		"oi",
		"preciso de ajuda com documentos",
		strings.Repeat("regularização ", 10000), // arbitrarily long input
	}

	for _, profile := range profiles {
		for _, msg := range messages {
			reply, err := svc.Respond(context.Background(), Request{Message: msg, Profile: profile})
			require.NoError(t, err, "profile %s", profile)
			assert.NotEmpty(t, reply.Response, "profile %s", profile)
		}
	}
}

func TestRespond_MissingFields(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Respond(context.Background(), Request{Message: "", Profile: "comum"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.Respond(context.Background(), Request{Message: "olá", Profile: ""})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestRespond_KeywordSelection(t *testing.T) {
	svc := NewService(nil)

	reply, err := svc.Respond(context.Background(), Request{
		Message: "quais documentos eu preciso?",
		Profile: "comum",
	})
	require.NoError(t, err)
	assert.Contains(t, reply.Response, "Documentos necessários para regularização")

	reply, err = svc.Respond(context.Background(), Request{
		Message: "preciso de uma minuta de contrato",
		Profile: "advogado",
	})
	require.NoError(t, err)
	assert.Contains(t, reply.Response, "Minutas jurídicas disponíveis")
}

func TestRespond_AttachmentsAnnotated(t *testing.T) {
	svc := NewService(nil)

	reply, err := svc.Respond(context.Background(), Request{
		Message: "pode analisar?",
		Profile: "comum",
		Attachments: []Attachment{
			{Name: "matricula.pdf", Type: "application/pdf"},
			{Name: "fachada.png", Type: "image/png"},
			{Name: "contrato.docx"},
			{Name: "planilha.xls"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, reply.Response, "Documentos anexados")
	assert.Contains(t, reply.Response, "Documento PDF: matricula.pdf")
	assert.Contains(t, reply.Response, "Imagem: fachada.png")
	assert.Contains(t, reply.Response, "Documento Word: contrato.docx")
	assert.Contains(t, reply.Response, "Arquivo: planilha.xls")
}

func TestDetectBudgetNeed(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		needed      bool
		serviceType string
	}{
		{
			name:        "lawyer consultation",
			message:     "quanto custa contratar um advogado?",
			needed:      true,
			serviceType: ServiceTypeLegal,
		},
		{
			name:        "topography survey",
			message:     "preciso de um serviço de topografia no terreno",
			needed:      true,
			serviceType: ServiceTypeTopography,
		},
		{
			name:        "technical project",
			message:     "qual o custo de um projeto para a prefeitura?",
			needed:      true,
			serviceType: ServiceTypeTechnical,
		},
		{
			name:        "certificate request",
			message:     "quanto cobram para emitir uma certidão?",
			needed:      true,
			serviceType: ServiceTypeCertificates,
		},
		{
			name:        "generic budget",
			message:     "quero contratar alguém para me ajudar",
			needed:      true,
			serviceType: ServiceTypeDefault,
		},
		{
			name:    "no budget keywords",
			message: "bom dia, tudo bem?",
			needed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := DetectBudgetNeed(tt.message)
			assert.Equal(t, tt.needed, info.Needed)
			if tt.needed {
				assert.Equal(t, tt.serviceType, info.ServiceType)
				assert.Equal(t, tt.message, info.Description)
			} else {
				assert.Empty(t, info.ServiceType)
			}
		})
	}
}

func TestRespond_BudgetSuggestionAppended(t *testing.T) {
	svc := NewService(nil)

	reply, err := svc.Respond(context.Background(), Request{
		Message: "quanto custa um advogado para regularizar meu imóvel?",
		Profile: "comum",
	})
	require.NoError(t, err)
	assert.True(t, reply.SuggestBudget)
	require.NotNil(t, reply.BudgetInfo)
	assert.Equal(t, ServiceTypeLegal, reply.BudgetInfo.ServiceType)
	assert.Contains(t, reply.Response, "Orçamento")
}

type stubCompleter struct {
	out string
	err error
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	return s.out, s.err
}

func TestRespond_CompleterPreferred(t *testing.T) {
	svc := NewService(&stubCompleter{out: "resposta do modelo"})

	reply, err := svc.Respond(context.Background(), Request{Message: "olá", Profile: "comum"})
	require.NoError(t, err)
	assert.Contains(t, reply.Response, "resposta do modelo")
}

func TestRespond_CompleterFailureFallsBack(t *testing.T) {
	svc := NewService(&stubCompleter{err: context.DeadlineExceeded})

	reply, err := svc.Respond(context.Background(), Request{
		Message: "quais documentos eu preciso?",
		Profile: "comum",
	})
	require.NoError(t, err)
	assert.Contains(t, reply.Response, "Documentos necessários para regularização")
}
