package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opentalent/recruitment-platform/internal/api/metrics"
	"github.com/opentalent/recruitment-platform/internal/api/middleware"
)

const maxResumeSize = 5 << 20 // 5 MiB

var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".rtf":  true,
	".txt":  true,
}

// UploadHandler stores résumé files under the upload directory, one
// subdirectory per consultant.
type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

type uploadResponse struct {
	Path string `json:"path"`
}

// Resume accepts a multipart "resume" file and returns its stored path.
//
// @Summary      Upload a résumé
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Résumé file (pdf, doc, docx, rtf, txt; max 5 MiB)"
// @Success      201     {object}  uploadResponse
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Router       /upload/resume [post]
func (h *UploadHandler) Resume(c echo.Context) error {
	user := middleware.Principal(c)

	file, err := c.FormFile("resume")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "resume file is required"})
	}
	if file.Size > maxResumeSize {
		metrics.ResumeUploadsTotal.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file exceeds 5MB limit"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedResumeExtensions[ext] {
		metrics.ResumeUploadsTotal.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unsupported file type"})
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	// Base() strips any path components a hostile client sneaks into the
	// filename.
	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	dir := filepath.Join(h.dir, "resumes", strconv.FormatInt(user.ID, 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	target := filepath.Join(dir, name)
	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write upload: %w", err)
	}

	metrics.ResumeUploadsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, uploadResponse{Path: target})
}
