// Package assistant implements the regularization chat assistant.
// Replies are selected by keyword rules; when a language-model completer is
// configured it is consulted first and the rules serve as fallback.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrInvalidRequest is returned when message or profile is missing.
var ErrInvalidRequest = errors.New("message and profile are required")

// Completer produces a model completion for a system and user prompt.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Message is a prior turn of the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries one user turn.
type Request struct {
	Message     string       `json:"message"`
	Profile     string       `json:"profile"`
	Attachments []Attachment `json:"attachments,omitempty"`
	History     []Message    `json:"conversationHistory,omitempty"`
}

// Reply is the assistant's answer plus the optional budget suggestion.
type Reply struct {
	Response      string     `json:"response"`
	SuggestBudget bool       `json:"suggestBudget"`
	BudgetInfo    *BudgetInfo `json:"budgetInfo"`
}

// Service answers assistant requests.
type Service interface {
	Respond(ctx context.Context, req Request) (*Reply, error)
}

type service struct {
	completer Completer // nil means rule-based replies only
}

// NewService creates an assistant service. The completer may be nil, in which
// case every reply comes from the built-in rules.
func NewService(completer Completer) Service {
	return &service{completer: completer}
}

func (s *service) Respond(ctx context.Context, req Request) (*Reply, error) {
	if strings.TrimSpace(req.Message) == "" || strings.TrimSpace(req.Profile) == "" {
		return nil, ErrInvalidRequest
	}

	attachmentNote := summarizeAttachments(req.Attachments)
	budget := DetectBudgetNeed(req.Message)

	response := s.generate(ctx, req, attachmentNote)

	if budget.Needed {
		response += fmt.Sprintf("\n\n💰 **Orçamento**\nIdentifiquei que você precisa de: %s\n\nPosso conectar você com profissionais especializados. Deseja solicitar um orçamento?", budget.ServiceType)
	}

	reply := &Reply{
		Response:      response,
		SuggestBudget: budget.Needed,
	}
	if budget.Needed {
		reply.BudgetInfo = &budget
	}
	return reply, nil
}

func (s *service) generate(ctx context.Context, req Request, attachmentNote string) string {
	if s.completer != nil {
		if systemPrompt, ok := ProfilePrompts[req.Profile]; ok {
			userPrompt := req.Message
			if history := conversationContext(req.History); history != "" {
				userPrompt = history + "\nUsuário: " + req.Message
			}
			if out, err := s.completer.Complete(ctx, systemPrompt, userPrompt); err == nil && out != "" {
				return out + attachmentNote
			} else if err != nil {
				log.Printf("assistant completion failed, falling back to rules: %v", err)
			}
		}
	}
	return cannedResponse(req.Message, req.Profile, attachmentNote)
}

// conversationContext renders the last five turns for the model prompt.
func conversationContext(history []Message) string {
	if len(history) == 0 {
		return ""
	}
	if len(history) > 5 {
		history = history[len(history)-5:]
	}

	lines := make([]string, 0, len(history))
	for _, msg := range history {
		speaker := "Assistente"
		if msg.Role == "user" {
			speaker = "Usuário"
		}
		lines = append(lines, speaker+": "+msg.Content)
	}
	return strings.Join(lines, "\n")
}
