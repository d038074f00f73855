package handlers

import (
	"strconv"

	"regulariza/internal/repositories"
	"regulariza/internal/services/profile"
	"regulariza/internal/utils/pagination"
	"regulariza/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	profileService profile.Service
	auditRepo      repositories.AuditRepository
}

func NewAdminHandler(profileService profile.Service, auditRepo repositories.AuditRepository) *AdminHandler {
	return &AdminHandler{
		profileService: profileService,
		auditRepo:      auditRepo,
	}
}

// ListProfiles returns every profile, paginated.
func (h *AdminHandler) ListProfiles(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	profiles, total, err := h.profileService.ListPaginated(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return response.ServerError(c, "Failed to list profiles")
	}
	p.Total = total

	return c.JSON(pagination.Response(p, profiles))
}

// ListAuditLogs returns audit rows, optionally filtered by userId.
func (h *AdminHandler) ListAuditLogs(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	var userID uint
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid userId")
		}
		userID = uint(id)
	}

	logs, total, err := h.auditRepo.ListPaginated(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return response.ServerError(c, "Failed to list audit logs")
	}
	p.Total = total

	return c.JSON(pagination.Response(p, logs))
}
