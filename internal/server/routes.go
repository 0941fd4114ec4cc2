// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/MichaelTeekey/job-finder/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MichaelTeekey/job-finder/internal/auth"
	"github.com/MichaelTeekey/job-finder/internal/controller/application"
	"github.com/MichaelTeekey/job-finder/internal/controller/job"
	"github.com/MichaelTeekey/job-finder/internal/controller/resume"
	"github.com/MichaelTeekey/job-finder/internal/middleware"
	"github.com/MichaelTeekey/job-finder/internal/policy"
	"github.com/MichaelTeekey/job-finder/internal/score"
)

// RegisterRoutes will register each http endpoint routes to bound MyServer instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	lAuth := auth.NewLocalAuthHandler(s.DB)
	scorer := score.StubScorer{}
	jobController := job.NewJobController(s.DB)
	applicationController := application.NewApplicationController(s.DB, scorer)
	resumeController := resume.NewResumeController(s.DB, scorer)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)

	r.POST("/register", lAuth.LocalRegisterHandler)
	r.POST("/login", lAuth.LocalLoginHandler)

	// Approved postings are readable without an account.
	r.GET("/jobs", jobController.ListJobs)
	r.GET("/jobs/:id", jobController.GetJob)

	needAuth := r.Group("")
	{
		needAuth.Use(middleware.RequireAuth(s.DB))

		needAuth.GET("/files/:id", resumeController.GetFile)

		// Student endpoints
		needAuth.POST("/jobs/:id/apply",
			middleware.Authorize(policy.ResourceApplication, policy.ActionCreate),
			applicationController.Apply)
		needAuth.GET("/student/applications",
			middleware.Authorize(policy.ResourceApplication, policy.ActionListOwn),
			applicationController.ListOwnApplications)
		needAuth.POST("/upload-resume",
			middleware.Authorize(policy.ResourceResume, policy.ActionCreate),
			middleware.SizeLimit(10<<20),
			resumeController.UploadResume)

		// Employer endpoints
		employerRoute := needAuth.Group("/employer")
		{
			employerRoute.GET("jobs",
				middleware.Authorize(policy.ResourceJob, policy.ActionListOwn),
				jobController.ListOwnJobs)
			employerRoute.POST("jobs",
				middleware.Authorize(policy.ResourceJob, policy.ActionCreate),
				jobController.CreateJob)
			employerRoute.PUT("jobs/:id",
				middleware.Authorize(policy.ResourceJob, policy.ActionUpdate),
				jobController.UpdateJob)
			employerRoute.DELETE("jobs/:id",
				middleware.Authorize(policy.ResourceJob, policy.ActionDelete),
				jobController.DeleteJob)
			employerRoute.GET("jobs/:id/applications",
				middleware.Authorize(policy.ResourceApplication, policy.ActionListForJob),
				applicationController.ListJobApplications)
			employerRoute.POST("applications/:id/status",
				middleware.Authorize(policy.ResourceApplication, policy.ActionSetStatus),
				applicationController.SetStatus)
		}

		// Admin endpoints
		adminRoute := needAuth.Group("/admin")
		{
			adminRoute.GET("pending-jobs",
				middleware.Authorize(policy.ResourceJob, policy.ActionListPending),
				jobController.ListPendingJobs)
			adminRoute.POST("approve/:id",
				middleware.Authorize(policy.ResourceJob, policy.ActionApprove),
				jobController.ApproveJob)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
