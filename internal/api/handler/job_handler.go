package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opentalent/recruitment-platform/internal/api/metrics"
	"github.com/opentalent/recruitment-platform/internal/api/middleware"
	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

// JobHandler serves the public job board and the authenticated mutation
// endpoints.
type JobHandler struct {
	jobs       ports.JobService
	activities ports.ActivityService
}

func NewJobHandler(jobs ports.JobService, activities ports.ActivityService) *JobHandler {
	return &JobHandler{jobs: jobs, activities: activities}
}

type createJobRequest struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	Description string     `json:"description" validate:"required"`
	Skills      []string   `json:"skills"`
	Salary      int        `json:"salary" validate:"min=0"`
	Type        string     `json:"type"`
	ContactMail string     `json:"email" validate:"omitempty,email"`
	Deadline    *time.Time `json:"deadline"`
}

type updateJobRequest struct {
	Title       *string    `json:"title"`
	Company     *string    `json:"company"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
	Skills      []string   `json:"skills"`
	Salary      *int       `json:"salary"`
	Type        *string    `json:"type"`
	Deadline    *time.Time `json:"deadline"`
}

// List returns active job postings. ?all=true additionally includes closed
// ones for authenticated members reviewing history.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Param        limit   query    int     false  "Page size"
// @Param        offset  query    int     false  "Page offset"
// @Param        all     query    bool    false  "Include closed jobs (authenticated only)"
// @Success      200     {array}  domain.Job
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	limit, offset := pagination(c)

	if c.QueryParam("all") == "true" && middleware.Principal(c) != nil {
		jobs, err := h.jobs.All(c.Request().Context(), limit, offset)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, jobs)
	}

	jobs, err := h.jobs.Active(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get returns one job posting.
//
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.jobs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Search filters active jobs by title, company, location, type, and skills.
// Skills are comma-separated: ?skills=go,postgresql.
//
// @Summary      Search jobs
// @Tags         jobs
// @Produce      json
// @Param        title     query    string  false  "Title substring"
// @Param        company   query    string  false  "Company substring"
// @Param        location  query    string  false  "Location substring"
// @Param        type      query    string  false  "Employment type"
// @Param        skills    query    string  false  "Comma-separated skills, all required"
// @Success      200       {array}  domain.Job
// @Router       /jobs/search [get]
func (h *JobHandler) Search(c echo.Context) error {
	limit, offset := pagination(c)

	jobs, err := h.jobs.Search(c.Request().Context(), ports.JobSearch{
		Title:    c.QueryParam("title"),
		Company:  c.QueryParam("company"),
		Location: c.QueryParam("location"),
		Type:     c.QueryParam("type"),
		Skills:   splitSkills(c.QueryParam("skills")),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Create posts a new job.
//
// @Summary      Post a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  domain.Job
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	input := ports.CreateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Skills:      req.Skills,
		Salary:      req.Salary,
		Type:        req.Type,
		ContactMail: req.ContactMail,
	}
	if req.Deadline != nil {
		input.Deadline = *req.Deadline
	}

	job, err := h.jobs.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.JobsPostedTotal.Inc()
	h.recordJobActivity(c, job.ID, domain.ActionJobPosted, job.Title)

	return c.JSON(http.StatusCreated, job)
}

// Update applies a partial edit to a job posting.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Job ID"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  domain.Job
// @Failure      404   {object}  map[string]string
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	job, err := h.jobs.Update(c.Request().Context(), c.Param("id"), ports.JobUpdate{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Skills:      req.Skills,
		Salary:      req.Salary,
		Type:        req.Type,
		Deadline:    req.Deadline,
	})
	if err != nil {
		return err
	}

	h.recordJobActivity(c, job.ID, domain.ActionJobUpdated, job.Title)
	return c.JSON(http.StatusOK, job)
}

// Close marks a job closed. Closed jobs drop out of listings and search
// but stay retrievable by ID.
//
// @Summary      Close a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id}/close [post]
func (h *JobHandler) Close(c echo.Context) error {
	job, err := h.jobs.Close(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	h.recordJobActivity(c, job.ID, domain.ActionJobClosed, job.Title)
	return c.JSON(http.StatusOK, job)
}

func (h *JobHandler) recordJobActivity(c echo.Context, jobID string, action domain.ActivityAction, details string) {
	entry := ports.ActivityEntry{
		EntityType: domain.EntityJob,
		EntityID:   jobID,
		Action:     action,
		Details:    details,
		IPAddress:  c.RealIP(),
	}
	if user := middleware.Principal(c); user != nil {
		entry.ActorID = &user.ID
	}
	h.activities.Record(c.Request().Context(), entry)
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
