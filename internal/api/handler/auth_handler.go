package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/opentalent/recruitment-platform/internal/api/metrics"
	"github.com/opentalent/recruitment-platform/internal/api/middleware"
	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
	"github.com/opentalent/recruitment-platform/internal/core/session"
)

// AuthHandler owns the register/login/logout endpoints. It is the only
// place that issues and clears session cookies.
type AuthHandler struct {
	auth       ports.AuthService
	activities ports.ActivityService
	sessions   *session.Manager
}

func NewAuthHandler(auth ports.AuthService, activities ports.ActivityService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, activities: activities, sessions: sessions}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Location string `json:"location"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User *domain.User `json:"user"`
}

// Register creates a new member account and opens a session.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Bio:      req.Bio,
		Company:  req.Company,
		Position: req.Position,
		Location: req.Location,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) || errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	if err := h.sessions.SetCookie(c, user.ID); err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	h.activities.Record(c.Request().Context(), ports.ActivityEntry{
		ActorID:    &user.ID,
		EntityType: domain.EntityUser,
		EntityID:   strconv.FormatInt(user.ID, 10),
		Action:     domain.ActionSignUp,
		IPAddress:  c.RealIP(),
	})

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login verifies credentials and opens a session. Unknown emails and wrong
// passwords produce byte-identical responses.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	if err := h.sessions.SetCookie(c, user.ID); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.activities.Record(c.Request().Context(), ports.ActivityEntry{
		ActorID:    &user.ID,
		EntityType: domain.EntityUser,
		EntityID:   strconv.FormatInt(user.ID, 10),
		Action:     domain.ActionSignIn,
		IPAddress:  c.RealIP(),
	})

	return c.JSON(http.StatusOK, authResponse{User: user})
}

// Logout clears the session cookie. Always succeeds, authenticated or not.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if user := middleware.Principal(c); user != nil {
		h.activities.Record(c.Request().Context(), ports.ActivityEntry{
			ActorID:    &user.ID,
			EntityType: domain.EntityUser,
			EntityID:   strconv.FormatInt(user.ID, 10),
			Action:     domain.ActionSignOut,
			IPAddress:  c.RealIP(),
		})
	}

	h.sessions.ClearCookie(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}
