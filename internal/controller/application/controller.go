// Package application provides HTTP handlers for job application operations.
package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/MichaelTeekey/job-finder/internal/database"
	"github.com/MichaelTeekey/job-finder/internal/model"
	"github.com/MichaelTeekey/job-finder/internal/score"
	"github.com/MichaelTeekey/job-finder/internal/utilities"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	DB     *database.DBInstance
	Scorer score.Scorer
}

// NewApplicationController creates a new instance of ApplicationController
// with the provided database connection and scorer.
func NewApplicationController(db *database.DBInstance, scorer score.Scorer) *ApplicationController {
	return &ApplicationController{
		DB:     db,
		Scorer: scorer,
	}
}

// Apply handles a student applying to an approved job posting.
// A posting that is missing or still pending approval is reported as not
// found. The (job, student) unique index guarantees at most one application
// per pair; the database conflict is translated to a duplicate error, so
// two concurrent applies cannot both succeed.
// @Summary Apply to an approved job posting
// @Description Only students can access this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Job ID"
// @Success 201 {object} model.Application "Successfully applied"
// @Failure 400 {object} utilities.ErrorResponse "Already applied to this job"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as student"
// @Failure 404 {object} utilities.ErrorResponse "Job not found or not approved"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/apply [post]
func (ac *ApplicationController) Apply(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		return
	}

	// The job must exist and be approved before the duplicate check.
	job := model.Job{}
	if err := ac.DB.
		Where("id = ? AND approved = ?", jobID, true).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job posting: %s", err.Error()),
		})
		return
	}

	application := model.Application{
		JobID:      job.ID,
		StudentID:  user.ID,
		Status:     model.ApplicationStatusPending,
		MatchScore: ac.Scorer.MatchScore(),
	}

	if err := ac.DB.Create(&application).Error; err != nil {
		var pqErr *pgconn.PgError
		if errors.As(err, &pqErr) {
			// Unique violation on (job_id, student_id) means a duplicate apply.
			if pqErr.Code == "23505" {
				c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
					Error: "You have already applied to this job",
				})
				return
			}
			if pqErr.Code == "23503" {
				c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
					Error: fmt.Sprintf("Invalid job or student reference: %s", err.Error()),
				})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	application.Job = job
	application.Student = user

	c.JSON(http.StatusCreated, application)
}

// ListOwnApplications fetches every application submitted by the calling student.
// @Summary List own applications
// @Description Only students can access this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Application "Applications submitted by the caller"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as student"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /student/applications [get]
func (ac *ApplicationController) ListOwnApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	applications := []model.Application{}
	if err := ac.DB.
		Preload("Job").
		Preload("Job.Employer").
		Where("student_id = ?", user.ID).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch applications: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, applications)
}

// ListJobApplications fetches the applications against one of the calling
// employer's job postings. The job lookup is scoped to the caller, so
// another employer's posting is reported as not found.
// @Summary List applications for an owned job posting
// @Description Only the employer owning the posting can access this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Job ID"
// @Success 200 {array} model.Application "Applications for the posting"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 404 {object} utilities.ErrorResponse "Job not found or owned by someone else"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /employer/jobs/{id}/applications [get]
func (ac *ApplicationController) ListJobApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		return
	}

	job := model.Job{}
	if err := ac.DB.
		Where("id = ? AND employer_id = ?", jobID, user.ID).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job posting: %s", err.Error()),
		})
		return
	}

	applications := []model.Application{}
	if err := ac.DB.
		Preload("Student").
		Where("job_id = ?", job.ID).
		Order("created_at ASC").
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch applications: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, applications)
}

// SetStatus sets an application to accepted or rejected. Any other value is
// rejected without touching the record. Re-setting a decided application is
// allowed and simply overwrites the status. The lookup joins the posting to
// the calling employer, so applications against other employers' postings
// are reported as not found.
// @Summary Accept or reject an application
// @Description Only the employer owning the posting can access this endpoint
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Application ID"
// @Param status body object true "status: 'accepted' or 'rejected'"
// @Success 200 {object} model.Application "The updated application"
// @Failure 400 {object} utilities.ErrorResponse "Invalid status value"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 404 {object} utilities.ErrorResponse "Application not found or posting owned by someone else"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /employer/applications/{id}/status [post]
func (ac *ApplicationController) SetStatus(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
		return
	}

	var info struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Status must be provided",
		})
		return
	}

	if !model.ValidApplicationStatus(info.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Status '%s' not allowed, must be '%s' or '%s'",
				info.Status, model.ApplicationStatusAccepted, model.ApplicationStatusRejected),
		})
		return
	}

	application := model.Application{}
	if err := ac.DB.
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.id = ? AND jobs.employer_id = ?", applicationID, user.ID).
		First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return
	}

	if err := ac.DB.Model(&application).Update("status", info.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, application)
}
