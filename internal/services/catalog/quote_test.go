package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuote_FlatFeeCertificate(t *testing.T) {
	sub, ok := FindSubclass("A1")
	require.True(t, ok)

	q := BuildQuote(sub, map[string]string{"matricula": "12345"})

	assert.InDelta(t, 25.00, q.RegistryFee, 0.001)
	assert.InDelta(t, 9.90, q.PlatformFee, 0.001)
	assert.InDelta(t, 34.90, q.Total, 0.001)
}

func TestBuildQuote_RateBasedAct(t *testing.T) {
	sub, ok := FindSubclass("C1")
	require.True(t, ok)

	form := map[string]string{
		"valor":  "150000",
		"partes": "João da Silva e Maria Souza",
		"imovel": "Casa na Rua das Flores, 100",
	}
	q := BuildQuote(sub, form)

	assert.InDelta(t, 1125.00, q.RegistryFee, 0.001)
	assert.InDelta(t, 19.90, q.PlatformFee, 0.001)
	assert.InDelta(t, 1144.90, q.Total, 0.001)
}

func TestBuildQuote_FlatFeeAct(t *testing.T) {
	sub, ok := FindSubclass("C3")
	require.True(t, ok)

	q := BuildQuote(sub, map[string]string{
		"outorgante": "João",
		"outorgado":  "Maria",
		"poderes":    "amplos",
	})

	assert.InDelta(t, 50.00, q.RegistryFee, 0.001)
	assert.InDelta(t, 19.90, q.PlatformFee, 0.001)
	assert.InDelta(t, 69.90, q.Total, 0.001)
}

func TestBuildQuote_Idempotent(t *testing.T) {
	sub, ok := FindSubclass("C1")
	require.True(t, ok)

	form := map[string]string{"valor": "150000", "partes": "a", "imovel": "b"}
	first := BuildQuote(sub, form)
	second := BuildQuote(sub, form)

	assert.Equal(t, first, second)
}

func TestMissingFields(t *testing.T) {
	tests := []struct {
		name     string
		subID    string
		form     map[string]string
		expected []string
	}{
		{
			name:     "valor absent for C1",
			subID:    "C1",
			form:     map[string]string{"partes": "João e Maria", "imovel": "Lote 4"},
			expected: []string{"valor"},
		},
		{
			name:     "all fields present",
			subID:    "A1",
			form:     map[string]string{"matricula": "999"},
			expected: nil,
		},
		{
			name:     "whitespace counts as empty",
			subID:    "A2",
			form:     map[string]string{"matricula": "  ", "proprietario": "José"},
			expected: []string{"matricula"},
		},
		{
			name:     "everything missing",
			subID:    "B1",
			form:     map[string]string{},
			expected: []string{"nome", "data_nascimento", "livro", "folha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, ok := FindSubclass(tt.subID)
			require.True(t, ok)
			assert.Equal(t, tt.expected, MissingFields(sub, tt.form))
		})
	}
}

func TestCatalogLookups(t *testing.T) {
	assert.Len(t, Classes(), 4)
	assert.Len(t, Subclasses("A"), 5)
	assert.Len(t, Subclasses("B"), 3)
	assert.Len(t, Subclasses("C"), 3)
	assert.Len(t, Subclasses("D"), 1)

	_, ok := FindSubclass("Z9")
	assert.False(t, ok)

	assert.Equal(t, TypeAct, ClassType("C"))
	assert.Equal(t, TypeCertificate, ClassType("A"))
	assert.Equal(t, TypeCertificate, ClassType("unknown"))
}
