package application

import (
	"context"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/MichaelTeekey/job-finder/internal/auth"
	"github.com/MichaelTeekey/job-finder/internal/controller/job"
	"github.com/MichaelTeekey/job-finder/internal/database"
	"github.com/MichaelTeekey/job-finder/internal/middleware"
	"github.com/MichaelTeekey/job-finder/internal/model"
	"github.com/MichaelTeekey/job-finder/internal/policy"
	"github.com/MichaelTeekey/job-finder/internal/score"
	"github.com/MichaelTeekey/job-finder/internal/testutil"
)

var testDB *database.DBInstance

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func newAppRouter() *gin.Engine {
	r := gin.Default()
	ac := NewApplicationController(testDB, score.StubScorer{})
	jc := job.NewJobController(testDB)

	needAuth := r.Group("")
	needAuth.Use(middleware.RequireAuth(testDB))
	needAuth.POST("/jobs/:id/apply", middleware.Authorize(policy.ResourceApplication, policy.ActionCreate), ac.Apply)
	needAuth.GET("/student/applications", middleware.Authorize(policy.ResourceApplication, policy.ActionListOwn), ac.ListOwnApplications)
	needAuth.GET("/employer/jobs/:id/applications", middleware.Authorize(policy.ResourceApplication, policy.ActionListForJob), ac.ListJobApplications)
	needAuth.POST("/employer/applications/:id/status", middleware.Authorize(policy.ResourceApplication, policy.ActionSetStatus), ac.SetStatus)

	// Full registry surface for the end to end scenario.
	needAuth.POST("/employer/jobs", middleware.Authorize(policy.ResourceJob, policy.ActionCreate), jc.CreateJob)
	needAuth.POST("/admin/approve/:id", middleware.Authorize(policy.ResourceJob, policy.ActionApprove), jc.ApproveJob)

	return r
}

func seedJob(t *testing.T, employerID uuid.UUID, approved bool, title string) model.Job {
	t.Helper()
	j := model.Job{
		ID:         uuid.New(),
		EmployerID: employerID,
		Approved:   approved,
		EditableJobInfo: model.EditableJobInfo{
			Title:       title,
			Description: "seeded by test",
			Location:    "Remote",
			Duration:    "3 months",
			Skills:      pq.StringArray{"go"},
		},
	}
	assert.NoError(t, testDB.Create(&j).Error)
	return j
}

func studentToken(t *testing.T, u model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, *u.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	return token
}

func TestApply_success(t *testing.T) {
	j := seedJob(t, database.TestUserEmployer1.ID, true, "Apply Target")
	token := studentToken(t, database.TestUserStudent1)
	r := newAppRouter()

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/jobs/"+j.ID.String()+"/apply", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, model.ApplicationStatusPending, resp["status"])
	assert.Equal(t, j.ID.String(), resp["job_id"])
	assert.Equal(t, database.TestUserStudent1.ID.String(), resp["student_id"])

	matchScore, ok := resp["match_score"].(float64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, matchScore, float64(50))
	assert.LessOrEqual(t, matchScore, float64(100))
}

func TestApply_duplicate(t *testing.T) {
	j := seedJob(t, database.TestUserEmployer1.ID, true, "Apply Once")
	token := studentToken(t, database.TestUserStudent1)
	r := newAppRouter()

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/jobs/"+j.ID.String()+"/apply", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/jobs/"+j.ID.String()+"/apply", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "You have already applied to this job", resp["error"])

	var count int64
	assert.NoError(t, testDB.Model(&model.Application{}).
		Where("job_id = ? AND student_id = ?", j.ID, database.TestUserStudent1.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApply_concurrentDuplicates(t *testing.T) {
	j := seedJob(t, database.TestUserEmployer1.ID, true, "Race Target")
	token := studentToken(t, database.TestUserStudent2)
	r := newAppRouter()

	const attempts = 8
	codes := make([]int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec, _ := testutil.MakeJSONRequest(nil, token, r, "/jobs/"+j.ID.String()+"/apply", http.MethodPost)
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		if code == http.StatusCreated {
			created++
		} else {
			assert.Equal(t, http.StatusBadRequest, code)
		}
	}
	assert.Equal(t, 1, created)

	var count int64
	assert.NoError(t, testDB.Model(&model.Application{}).
		Where("job_id = ? AND student_id = ?", j.ID, database.TestUserStudent2.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApply_pendingJobIsHidden(t *testing.T) {
	token := studentToken(t, database.TestUserStudent1)
	r := newAppRouter()

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/jobs/"+database.TestJobPending.ID.String()+"/apply", http.MethodPost)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApply_missingJob(t *testing.T) {
	token := studentToken(t, database.TestUserStudent1)
	r := newAppRouter()

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/jobs/"+uuid.NewString()+"/apply", http.MethodPost)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApply_asEmployer(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, *database.TestUserEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	r := newAppRouter()

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/jobs/"+database.TestJobApproved1.ID.String()+"/apply", http.MethodPost)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListOwnApplications(t *testing.T) {
	j := seedJob(t, database.TestUserEmployer2.ID, true, "Listed Application Target")
	token := studentToken(t, database.TestUserStudent1)
	r := newAppRouter()

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/jobs/"+j.ID.String()+"/apply", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec2, apps := testutil.MakeListRequest(token, r, "/student/applications")
	assert.Equal(t, http.StatusOK, rec2.Code)
	assert.NotEmpty(t, apps)
	for _, a := range apps {
		assert.Equal(t, database.TestUserStudent1.ID.String(), a["student_id"])
	}
}

func TestListJobApplications_owner(t *testing.T) {
	j := seedJob(t, database.TestUserEmployer1.ID, true, "Owner Listing Target")
	studToken := studentToken(t, database.TestUserStudent1)
	r := newAppRouter()

	rec, _ := testutil.MakeJSONRequest(nil, studToken, r, "/jobs/"+j.ID.String()+"/apply", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	empToken, err := auth.GetAccessToken(t, testDB, *database.TestUserEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec2, apps := testutil.MakeListRequest(empToken, r, "/employer/jobs/"+j.ID.String()+"/applications")
	assert.Equal(t, http.StatusOK, rec2.Code)
	assert.Len(t, apps, 1)
	assert.Equal(t, database.TestUserStudent1.ID.String(), apps[0]["student_id"])
}

func TestListJobApplications_notOwner(t *testing.T) {
	j := seedJob(t, database.TestUserEmployer1.ID, true, "Private Listing Target")
	r := newAppRouter()

	empToken, err := auth.GetAccessToken(t, testDB, *database.TestUserEmployer2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, _ := testutil.MakeJSONRequest(nil, empToken, r, "/employer/jobs/"+j.ID.String()+"/applications", http.MethodGet)

	// The posting of another employer is reported as missing, not forbidden.
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetStatus_acceptAndOverwrite(t *testing.T) {
	j := seedJob(t, database.TestUserEmployer1.ID, true, "Status Target")
	studToken := studentToken(t, database.TestUserStudent1)
	r := newAppRouter()

	rec, resp := testutil.MakeJSONRequest(nil, studToken, r, "/jobs/"+j.ID.String()+"/apply", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	appID := resp["id"].(string)

	empToken, err := auth.GetAccessToken(t, testDB, *database.TestUserEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "accepted"}, empToken, r, "/employer/applications/"+appID+"/status", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ApplicationStatusAccepted, resp["status"])

	// A decided application may be re-decided; the status is overwritten.
	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "rejected"}, empToken, r, "/employer/applications/"+appID+"/status", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ApplicationStatusRejected, resp["status"])

	var stored model.Application
	assert.NoError(t, testDB.First(&stored, "id = ?", appID).Error)
	assert.Equal(t, model.ApplicationStatusRejected, stored.Status)
}

func TestSetStatus_invalidValue(t *testing.T) {
	j := seedJob(t, database.TestUserEmployer1.ID, true, "Invalid Status Target")
	studToken := studentToken(t, database.TestUserStudent1)
	r := newAppRouter()

	rec, resp := testutil.MakeJSONRequest(nil, studToken, r, "/jobs/"+j.ID.String()+"/apply", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	appID := resp["id"].(string)

	empToken, err := auth.GetAccessToken(t, testDB, *database.TestUserEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, _ = testutil.MakeJSONRequest(gin.H{"status": "hired"}, empToken, r, "/employer/applications/"+appID+"/status", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var stored model.Application
	assert.NoError(t, testDB.First(&stored, "id = ?", appID).Error)
	assert.Equal(t, model.ApplicationStatusPending, stored.Status)
}

func TestSetStatus_notOwner(t *testing.T) {
	j := seedJob(t, database.TestUserEmployer1.ID, true, "Foreign Status Target")
	studToken := studentToken(t, database.TestUserStudent1)
	r := newAppRouter()

	rec, resp := testutil.MakeJSONRequest(nil, studToken, r, "/jobs/"+j.ID.String()+"/apply", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	appID := resp["id"].(string)

	empToken, err := auth.GetAccessToken(t, testDB, *database.TestUserEmployer2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, _ = testutil.MakeJSONRequest(gin.H{"status": "accepted"}, empToken, r, "/employer/applications/"+appID+"/status", http.MethodPost)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var stored model.Application
	assert.NoError(t, testDB.First(&stored, "id = ?", appID).Error)
	assert.Equal(t, model.ApplicationStatusPending, stored.Status)
}

// TestHiringFlow walks the full lifecycle: employer posts a job, admin
// approves it, a student applies exactly once, and the employer reviews
// and accepts the application.
func TestHiringFlow(t *testing.T) {
	r := newAppRouter()

	empToken, err := auth.GetAccessToken(t, testDB, *database.TestUserEmployer2.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	adminToken, err := auth.GetAccessToken(t, testDB, *database.TestAdminUser.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	studToken := studentToken(t, database.TestUserStudent2)

	// Employer posts a job; it starts unapproved.
	rec, resp := testutil.MakeJSONRequest(gin.H{
		"title":       "Flow Test Engineer",
		"description": "End to end hire.",
		"location":    "Remote",
		"duration":    "12 months",
	}, empToken, r, "/employer/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, false, resp["approved"])
	jobID := resp["id"].(string)

	// The student cannot apply before approval.
	rec, _ = testutil.MakeJSONRequest(nil, studToken, r, "/jobs/"+jobID+"/apply", http.MethodPost)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Admin approves.
	rec, _ = testutil.MakeJSONRequest(nil, adminToken, r, "/admin/approve/"+jobID, http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)

	// First apply succeeds, second is a duplicate.
	rec, resp = testutil.MakeJSONRequest(nil, studToken, r, "/jobs/"+jobID+"/apply", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	appID := resp["id"].(string)

	rec, _ = testutil.MakeJSONRequest(nil, studToken, r, "/jobs/"+jobID+"/apply", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Employer sees exactly one application and accepts it.
	rec2, apps := testutil.MakeListRequest(empToken, r, "/employer/jobs/"+jobID+"/applications")
	assert.Equal(t, http.StatusOK, rec2.Code)
	assert.Len(t, apps, 1)

	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "accepted"}, empToken, r, "/employer/applications/"+appID+"/status", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ApplicationStatusAccepted, resp["status"])

	var stored model.Application
	assert.NoError(t, testDB.First(&stored, "id = ?", appID).Error)
	assert.Equal(t, model.ApplicationStatusAccepted, stored.Status)
}
