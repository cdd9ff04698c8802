package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opentalent/recruitment-platform/internal/api/middleware"
	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
	"github.com/opentalent/recruitment-platform/internal/core/session"
)

// UserHandler covers the authenticated account surface plus the public
// consultant directory and the admin user listing.
type UserHandler struct {
	users      ports.UserService
	auth       ports.AuthService
	activities ports.ActivityService
	sessions   *session.Manager
}

func NewUserHandler(users ports.UserService, auth ports.AuthService, activities ports.ActivityService, sessions *session.Manager) *UserHandler {
	return &UserHandler{users: users, auth: auth, activities: activities, sessions: sessions}
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Location *string `json:"location"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

type paymentStatusRequest struct {
	IsPaid    bool       `json:"is_paid"`
	PaidUntil *time.Time `json:"expiry_date"`
}

// Me returns the authenticated principal.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.Principal(c))
}

// UpdateMe applies a partial profile update to the principal.
//
// @Summary      Update profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user := middleware.Principal(c)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	updated, err := h.users.UpdateProfile(c.Request().Context(), user.ID, ports.ProfileUpdate{
		Name:     req.Name,
		Phone:    req.Phone,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
		Company:  req.Company,
		Position: req.Position,
		Location: req.Location,
	})
	if err != nil {
		return err
	}

	h.activities.Record(c.Request().Context(), ports.ActivityEntry{
		ActorID:    &user.ID,
		EntityType: domain.EntityUser,
		EntityID:   strconv.FormatInt(user.ID, 10),
		Action:     domain.ActionUpdateAccount,
		IPAddress:  c.RealIP(),
	})

	return c.JSON(http.StatusOK, updated)
}

// ChangePassword rotates the principal's password after verifying the
// current one.
//
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/me/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	user := middleware.Principal(c)

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.auth.ChangePassword(c.Request().Context(), user, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	h.activities.Record(c.Request().Context(), ports.ActivityEntry{
		ActorID:    &user.ID,
		EntityType: domain.EntityUser,
		EntityID:   strconv.FormatInt(user.ID, 10),
		Action:     domain.ActionUpdatePassword,
		IPAddress:  c.RealIP(),
	})

	return c.JSON(http.StatusOK, map[string]string{"message": "password updated"})
}

// DeleteMe soft-deletes the principal's account and ends the session.
//
// @Summary      Deactivate account
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/me [delete]
func (h *UserHandler) DeleteMe(c echo.Context) error {
	user := middleware.Principal(c)

	if err := h.auth.Deactivate(c.Request().Context(), user.ID); err != nil {
		return err
	}

	h.activities.Record(c.Request().Context(), ports.ActivityEntry{
		ActorID:    &user.ID,
		EntityType: domain.EntityUser,
		EntityID:   strconv.FormatInt(user.ID, 10),
		Action:     domain.ActionDeleteAccount,
		IPAddress:  c.RealIP(),
	})

	h.sessions.ClearCookie(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "account deleted"})
}

// List returns all active users. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        limit   query     int  false  "Page size"
// @Param        offset  query     int  false  "Page offset"
// @Success      200     {array}   domain.User
// @Failure      403     {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	limit, offset := pagination(c)
	users, err := h.users.List(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// SetPaymentStatus lets an admin flip a user's paid flag manually.
//
// @Summary      Set payment status
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "User ID"
// @Param        body  body      paymentStatusRequest  true  "New payment status"
// @Success      200   {object}  domain.User
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id}/payment [put]
func (h *UserHandler) SetPaymentStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid user id"})
	}

	var req paymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	user, err := h.users.SetPaymentStatus(c.Request().Context(), id, req.IsPaid, req.PaidUntil)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Consultants returns the public consultant directory.
//
// @Summary      List consultants
// @Tags         consultants
// @Produce      json
// @Param        limit   query    int  false  "Page size"
// @Param        offset  query    int  false  "Page offset"
// @Success      200     {array}  domain.User
// @Router       /consultants [get]
func (h *UserHandler) Consultants(c echo.Context) error {
	limit, offset := pagination(c)
	consultants, err := h.users.Consultants(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, consultants)
}

// Consultant returns one consultant's public profile.
//
// @Summary      Get a consultant
// @Tags         consultants
// @Produce      json
// @Param        id   path      int  true  "Consultant ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /consultants/{id} [get]
func (h *UserHandler) Consultant(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid consultant id"})
	}

	consultant, err := h.users.ConsultantByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, consultant)
}

// pagination extracts limit/offset query parameters; services apply their
// own defaults for missing values.
func pagination(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	offset, _ = strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
