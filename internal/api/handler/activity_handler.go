package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/opentalent/recruitment-platform/internal/api/middleware"
	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

// ActivityHandler reads the audit trail. Recording happens inline in the
// mutating handlers; this surface is read-only.
type ActivityHandler struct {
	activities ports.ActivityService
}

func NewActivityHandler(activities ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// Recent returns the newest audit entries across the platform. Admin only.
//
// @Summary      Recent activity
// @Tags         activities
// @Produce      json
// @Param        limit   query    int  false  "Page size"
// @Param        offset  query    int  false  "Page offset"
// @Success      200     {array}  domain.ActivityLog
// @Failure      403     {object} map[string]string
// @Router       /activities [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	limit, offset := pagination(c)
	entries, err := h.activities.Recent(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// ForUser returns one user's activity. Admins can read anyone's; everyone
// else only their own.
//
// @Summary      User activity
// @Tags         activities
// @Produce      json
// @Param        id      path     int  true   "User ID"
// @Param        limit   query    int  false  "Page size"
// @Param        offset  query    int  false  "Page offset"
// @Success      200     {array}  domain.ActivityLog
// @Failure      403     {object} map[string]string
// @Router       /activities/users/{id} [get]
func (h *ActivityHandler) ForUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid user id"})
	}

	user := middleware.Principal(c)
	if user.Role != domain.RoleAdmin && user.ID != id {
		return domain.ErrForbidden
	}

	limit, offset := pagination(c)
	entries, err := h.activities.ForUser(c.Request().Context(), id, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// ForEntity returns the audit trail of one record. Admin only.
//
// @Summary      Entity activity
// @Tags         activities
// @Produce      json
// @Param        type    path     string  true   "Entity type (user, jobseeker, job)"
// @Param        id      path     string  true   "Entity ID"
// @Param        limit   query    int     false  "Page size"
// @Param        offset  query    int     false  "Page offset"
// @Success      200     {array}  domain.ActivityLog
// @Failure      403     {object} map[string]string
// @Router       /activities/{type}/{id} [get]
func (h *ActivityHandler) ForEntity(c echo.Context) error {
	entityType := domain.EntityType(c.Param("type"))
	switch entityType {
	case domain.EntityUser, domain.EntityJobSeeker, domain.EntityJob:
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid entity type"})
	}

	limit, offset := pagination(c)
	entries, err := h.activities.ForEntity(c.Request().Context(), entityType, c.Param("id"), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
