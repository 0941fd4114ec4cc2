// Package resume provides HTTP handlers for resume upload and download.
package resume

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MichaelTeekey/job-finder/internal/database"
	"github.com/MichaelTeekey/job-finder/internal/model"
	"github.com/MichaelTeekey/job-finder/internal/score"
	"github.com/MichaelTeekey/job-finder/internal/utilities"
)

// ResumeController handles resume related endpoints
type ResumeController struct {
	DB     *database.DBInstance
	Scorer score.Scorer
}

// NewResumeController creates a new instance of ResumeController with the
// provided database connection and scorer.
func NewResumeController(db *database.DBInstance, scorer score.Scorer) *ResumeController {
	return &ResumeController{
		DB:     db,
		Scorer: scorer,
	}
}

// UploadResume stores an uploaded resume file and attaches the stub
// evaluation. Resumes are append-only; repeated uploads accumulate.
// @Summary Upload a resume
// @Description Only students can access this endpoint. The score and feedback are produced by a placeholder evaluator.
// @Tags Resume
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param file formData file true "Resume file"
// @Success 201 {object} model.Resume "Successfully uploaded resume"
// @Failure 400 {object} utilities.ErrorResponse "No file uploaded"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as student"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /upload-resume [post]
func (rc *ResumeController) UploadResume(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	rawFile, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "No file uploaded"})
		return
	}

	f, err := rawFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot open file"})
		return
	}
	defer f.Close()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot read file"})
		return
	}

	extension := strings.TrimPrefix(filepath.Ext(rawFile.Filename), ".")
	if extension == "" {
		extension = "pdf"
	}

	resumeScore, feedback := rc.Scorer.EvaluateResume(fileBytes)

	resume := model.Resume{
		StudentID:   user.ID,
		ResumeScore: resumeScore,
		Feedback:    feedback,
		File: model.File{
			Content:   fileBytes,
			Extension: extension,
		},
	}

	if err := rc.DB.Create(&resume).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to store resume: %s", err.Error()),
		})
		return
	}

	resume.Student = user

	c.JSON(http.StatusCreated, resume)
}

// GetFile serves a stored file blob as a download.
// @Summary Download a stored file
// @Tags Resume
// @Produce octet-stream
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "File ID"
// @Success 200 {file} binary "File content"
// @Failure 404 {string} string "File not found"
// @Router /files/{id} [get]
func (rc *ResumeController) GetFile(c *gin.Context) {
	var file model.File
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "File not found")
		return
	}

	if err := rc.DB.First(&file, id).Error; err != nil {
		c.String(http.StatusNotFound, "File not found")
		return
	}

	c.Writer.Header().Set("Content-Disposition", "attachment; filename="+fmt.Sprint(file.ID)+"."+file.Extension)
	c.Writer.Header().Set("Content-Type", "application/octet-stream")
	c.Writer.Header().Set("Content-Length", fmt.Sprint(len(file.Content)))

	_, _ = c.Writer.Write(file.Content)
}
