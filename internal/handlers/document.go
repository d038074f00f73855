package handlers

import (
	"errors"
	"log"
	"strconv"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/analysis"
	"regulariza/internal/services/document"
	"regulariza/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type DocumentHandler struct {
	documentService document.Service
	analysisService analysis.Service
}

func NewDocumentHandler(documentService document.Service, analysisService analysis.Service) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		analysisService: analysisService,
	}
}

// Upload accepts a multipart form with file, type and optional propertyId.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required")
	}

	var propertyID *uint
	if raw := c.FormValue("propertyId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid propertyId")
		}
		v := uint(id)
		propertyID = &v
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.ServerError(c, "Failed to read file")
	}
	defer file.Close()

	doc, err := h.documentService.Upload(c.Context(), document.UploadRequest{
		UserID:     claims.UserID,
		PropertyID: propertyID,
		Name:       fileHeader.Filename,
		Type:       c.FormValue("type"),
		MimeType:   fileHeader.Header.Get("Content-Type"),
		Size:       fileHeader.Size,
		Content:    file,
	})
	if err != nil {
		var verr *document.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationError(c, verr.Fields)
		}
		log.Printf("document upload failed for user %d: %v", claims.UserID, err)
		return response.ServerError(c, "Upload failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"document": doc,
	})
}

// Analyze runs the AI analysis for one of the caller's documents.
func (h *DocumentHandler) Analyze(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	var input struct {
		DocumentID uint `json:"documentId"`
	}
	if err := c.BodyParser(&input); err != nil || input.DocumentID == 0 {
		return response.BadRequest(c, "documentId is required")
	}

	result, err := h.analysisService.Analyze(c.Context(), input.DocumentID, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return response.NotFound(c, "Document not found")
		}
		if errors.Is(err, analysis.ErrUnavailable) {
			return response.Error(c, fiber.StatusServiceUnavailable, "Analysis is not configured")
		}
		log.Printf("document analysis failed for document %d: %v", input.DocumentID, err)
		return response.ServerError(c, "Analysis failed")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"analysis": result.Analysis,
		"report":   result.Report,
	})
}

// List returns the caller's documents.
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	docs, err := h.documentService.List(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to list documents")
	}
	return response.Success(c, "documents", docs)
}

// Get returns one of the caller's documents.
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid document id")
	}

	doc, err := h.documentService.Get(c.Context(), uint(id), claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return response.NotFound(c, "Document not found")
		}
		return response.ServerError(c, "Failed to get document")
	}
	return response.Success(c, "document", doc)
}

// Reports returns the caller's analysis reports.
func (h *DocumentHandler) Reports(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	reports, err := h.documentService.ListReports(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to list reports")
	}
	return response.Success(c, "reports", reports)
}
