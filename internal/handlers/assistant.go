package handlers

import (
	"errors"
	"log"

	"regulariza/internal/services/assistant"
	"regulariza/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AssistantHandler struct {
	assistantService assistant.Service
}

func NewAssistantHandler(assistantService assistant.Service) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// Chat answers one assistant turn.
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var input assistant.Request
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	reply, err := h.assistantService.Respond(c.Context(), input)
	if err != nil {
		if errors.Is(err, assistant.ErrInvalidRequest) {
			return response.BadRequest(c, "Mensagem e perfil são obrigatórios")
		}
		log.Printf("assistant request failed: %v", err)
		return response.ServerError(c, "Erro ao processar mensagem")
	}

	return c.JSON(fiber.Map{
		"response":      reply.Response,
		"suggestBudget": reply.SuggestBudget,
		"budgetInfo":    reply.BudgetInfo,
	})
}
