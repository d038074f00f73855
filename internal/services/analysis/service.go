// Package analysis runs AI document analysis and derives reports.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/audit"
)

const systemPrompt = "Você é um especialista em análise de documentos imobiliários e regularização."

const analysisPromptTemplate = `
Você é um especialista em regularização imobiliária. Analise o documento fornecido e extraia as seguintes informações:

1. Tipo de documento (matrícula, certidão, contrato, etc.)
2. Dados do proprietário (nome, CPF/CNPJ)
3. Dados do imóvel (endereço, matrícula, área)
4. Averbações e ônus registrados
5. Possíveis gravames ou irregularidades
6. Status de regularização
7. Documentos complementares necessários
8. Recomendações de profissionais (advogado, engenheiro, corretor)
9. Estimativa de custo para regularização

Retorne a análise em formato JSON estruturado.

Documento: %s
Tipo: %s
URL: %s
`

// ErrUnavailable is returned when no model client is configured.
var ErrUnavailable = errors.New("document analysis is not configured")

// Result is a completed analysis plus its derived report.
type Result struct {
	Analysis models.JSON            `json:"analysis"`
	Report   *models.AnalysisReport `json:"report"`
}

// Service analyzes uploaded documents.
type Service interface {
	Analyze(ctx context.Context, documentID, userID uint) (*Result, error)
}

type service struct {
	docs     repositories.DocumentRepository
	client   ChatClient
	recorder audit.Recorder
}

func NewService(docs repositories.DocumentRepository, client ChatClient, recorder audit.Recorder) Service {
	return &service{docs: docs, client: client, recorder: recorder}
}

// Analyze fetches the document, marks it analyzing, requests a structured
// analysis from the model and stores the result plus a derived report.
// On any failure the document is marked errored so it is never left stuck
// on the in-progress status.
func (s *service) Analyze(ctx context.Context, documentID, userID uint) (*Result, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}

	doc, err := s.docs.GetForUser(ctx, documentID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.docs.UpdateStatus(ctx, doc.ID, models.DocumentStatusAnalyzing); err != nil {
		return nil, err
	}

	result, err := s.runAnalysis(ctx, doc)
	if err != nil {
		if markErr := s.docs.UpdateStatus(ctx, doc.ID, models.DocumentStatusError); markErr != nil {
			return nil, fmt.Errorf("analysis failed: %w (and marking document errored failed: %v)", err, markErr)
		}
		return nil, err
	}

	s.recorder.Record(ctx, audit.Entry{
		UserID:     userID,
		Action:     models.AuditActionDocumentAnalysis,
		EntityType: "document",
		EntityID:   strconv.FormatUint(uint64(doc.ID), 10),
		Metadata: models.JSON{
			"document_type":      doc.Type,
			"analysis_completed": true,
		},
	})

	return result, nil
}

func (s *service) runAnalysis(ctx context.Context, doc *models.Document) (*Result, error) {
	prompt := fmt.Sprintf(analysisPromptTemplate, doc.Name, doc.Type, doc.FileURL)

	raw, err := s.client.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("model completion: %w", err)
	}

	var analysis models.JSON
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}

	if err := s.docs.SetAnalysis(ctx, doc.ID, analysis); err != nil {
		return nil, fmt.Errorf("store analysis: %w", err)
	}

	report := &models.AnalysisReport{
		UserID:                doc.UserID,
		DocumentID:            doc.ID,
		AnalysisType:          doc.Type,
		Result:                analysis,
		Recommendations:       stringList(analysis["recommendations"]),
		RequiredProfessionals: stringList(analysis["required_professionals"]),
		MissingDocuments:      stringList(analysis["missing_documents"]),
		EstimatedCost:         floatValue(analysis["estimated_cost"]),
	}
	if err := s.docs.CreateReport(ctx, report); err != nil {
		return nil, fmt.Errorf("store report: %w", err)
	}

	return &Result{Analysis: analysis, Report: report}, nil
}

func stringList(v interface{}) models.StringList {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make(models.StringList, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func floatValue(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}
