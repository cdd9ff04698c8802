package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/opentalent/recruitment-platform/internal/api/middleware"
	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

// JobSeekerHandler manages candidate records. All endpoints require an
// authenticated consultant; candidates belong to the consultant who added
// them unless an admin intervenes.
type JobSeekerHandler struct {
	seekers    ports.JobSeekerService
	activities ports.ActivityService
}

func NewJobSeekerHandler(seekers ports.JobSeekerService, activities ports.ActivityService) *JobSeekerHandler {
	return &JobSeekerHandler{seekers: seekers, activities: activities}
}

type createJobSeekerRequest struct {
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Phone      string   `json:"phone"`
	Resume     string   `json:"resume"`
	Skills     []string `json:"skills"`
	Experience int      `json:"experience" validate:"min=0"`
	Education  string   `json:"education"`
	Location   string   `json:"location"`
	About      string   `json:"about"`
}

type updateJobSeekerRequest struct {
	Name       *string  `json:"name"`
	Phone      *string  `json:"phone"`
	Resume     *string  `json:"resume"`
	Skills     []string `json:"skills"`
	Experience *int     `json:"experience"`
	Education  *string  `json:"education"`
	Location   *string  `json:"location"`
	About      *string  `json:"about"`
}

// Create registers a candidate under the authenticated consultant.
//
// @Summary      Add a job seeker
// @Tags         job-seekers
// @Accept       json
// @Produce      json
// @Param        body  body      createJobSeekerRequest  true  "Candidate details"
// @Success      201   {object}  domain.JobSeeker
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /job-seekers [post]
func (h *JobSeekerHandler) Create(c echo.Context) error {
	user := middleware.Principal(c)

	var req createJobSeekerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	seeker, err := h.seekers.Create(c.Request().Context(), ports.CreateJobSeekerInput{
		ConsultantID: user.ID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Resume:       req.Resume,
		Skills:       req.Skills,
		Experience:   req.Experience,
		Education:    req.Education,
		Location:     req.Location,
		About:        req.About,
	})
	if err != nil {
		return err
	}

	h.recordSeekerActivity(c, seeker.ID, domain.ActionJobSeekerAdded, seeker.Name)
	return c.JSON(http.StatusCreated, seeker)
}

// List returns the authenticated consultant's candidates. Admins can pass
// ?consultant_id= to inspect another consultant's list.
//
// @Summary      List job seekers
// @Tags         job-seekers
// @Produce      json
// @Param        consultant_id  query    int  false  "Consultant to list (admin only)"
// @Param        limit          query    int  false  "Page size"
// @Param        offset         query    int  false  "Page offset"
// @Success      200            {array}  domain.JobSeeker
// @Failure      401            {object} map[string]string
// @Router       /job-seekers [get]
func (h *JobSeekerHandler) List(c echo.Context) error {
	user := middleware.Principal(c)
	limit, offset := pagination(c)

	consultantID := user.ID
	if raw := c.QueryParam("consultant_id"); raw != "" && user.Role == domain.RoleAdmin {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid consultant id"})
		}
		consultantID = id
	}

	seekers, err := h.seekers.ForConsultant(c.Request().Context(), consultantID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, seekers)
}

// Get returns one candidate. Consultants only see their own candidates;
// admins see any.
//
// @Summary      Get a job seeker
// @Tags         job-seekers
// @Produce      json
// @Param        id   path      string  true  "Job seeker ID"
// @Success      200  {object}  domain.JobSeeker
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /job-seekers/{id} [get]
func (h *JobSeekerHandler) Get(c echo.Context) error {
	seeker, err := h.seekers.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.authorize(c, seeker); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, seeker)
}

// Search filters candidates by skills, location, and minimum experience.
// Consultants search within their own candidates; admins search across all.
//
// @Summary      Search job seekers
// @Tags         job-seekers
// @Produce      json
// @Param        skills          query    string  false  "Comma-separated skills, all required"
// @Param        location        query    string  false  "Location substring"
// @Param        min_experience  query    int     false  "Minimum years of experience"
// @Success      200             {array}  domain.JobSeeker
// @Router       /job-seekers/search [get]
func (h *JobSeekerHandler) Search(c echo.Context) error {
	user := middleware.Principal(c)
	limit, offset := pagination(c)

	params := ports.JobSeekerSearch{
		Skills:   splitSkills(c.QueryParam("skills")),
		Location: c.QueryParam("location"),
		Limit:    limit,
		Offset:   offset,
	}
	if user.Role != domain.RoleAdmin {
		params.ConsultantID = &user.ID
	}
	if raw := c.QueryParam("min_experience"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid min_experience"})
		}
		params.MinExperience = &n
	}

	seekers, err := h.seekers.Search(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, seekers)
}

// Update applies a partial edit to a candidate.
//
// @Summary      Update a job seeker
// @Tags         job-seekers
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Job seeker ID"
// @Param        body  body      updateJobSeekerRequest  true  "Fields to change"
// @Success      200   {object}  domain.JobSeeker
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /job-seekers/{id} [put]
func (h *JobSeekerHandler) Update(c echo.Context) error {
	seeker, err := h.seekers.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.authorize(c, seeker); err != nil {
		return err
	}

	var req updateJobSeekerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	updated, err := h.seekers.Update(c.Request().Context(), seeker.ID, ports.JobSeekerUpdate{
		Name:       req.Name,
		Phone:      req.Phone,
		Resume:     req.Resume,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
		Location:   req.Location,
		About:      req.About,
	})
	if err != nil {
		return err
	}

	h.recordSeekerActivity(c, updated.ID, domain.ActionJobSeekerUpdated, updated.Name)
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a candidate record.
//
// @Summary      Delete a job seeker
// @Tags         job-seekers
// @Produce      json
// @Param        id   path      string  true  "Job seeker ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /job-seekers/{id} [delete]
func (h *JobSeekerHandler) Delete(c echo.Context) error {
	seeker, err := h.seekers.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.authorize(c, seeker); err != nil {
		return err
	}

	if err := h.seekers.Delete(c.Request().Context(), seeker.ID); err != nil {
		return err
	}

	h.recordSeekerActivity(c, seeker.ID, domain.ActionJobSeekerDeleted, seeker.Name)
	return c.JSON(http.StatusOK, map[string]string{"message": "job seeker deleted"})
}

// authorize enforces candidate ownership: the owning consultant or an
// admin.
func (h *JobSeekerHandler) authorize(c echo.Context, seeker *domain.JobSeeker) error {
	user := middleware.Principal(c)
	if user.Role == domain.RoleAdmin || seeker.ConsultantID == user.ID {
		return nil
	}
	return domain.ErrForbidden
}

func (h *JobSeekerHandler) recordSeekerActivity(c echo.Context, seekerID string, action domain.ActivityAction, details string) {
	user := middleware.Principal(c)
	h.activities.Record(c.Request().Context(), ports.ActivityEntry{
		ActorID:    &user.ID,
		EntityType: domain.EntityJobSeeker,
		EntityID:   seekerID,
		Action:     action,
		Details:    details,
		IPAddress:  c.RealIP(),
	})
}
