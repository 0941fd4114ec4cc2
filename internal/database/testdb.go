package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/MichaelTeekey/job-finder/internal/model"
	"github.com/MichaelTeekey/job-finder/internal/utilities"
)

var testDBInstance *DBInstance
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded users and job postings for tests.
var (
	TestAdminUser     m.User
	TestUserStudent1  m.User
	TestUserStudent2  m.User
	TestUserEmployer1 m.User
	TestUserEmployer2 m.User

	// Shared plain password of every seeded user
	TestSeedPassword = "SeedPass123!"

	// TestJobApproved1 is owned by employer 1 and publicly visible
	TestJobApproved1 m.Job
	// TestJobApproved2 is owned by employer 2 and publicly visible
	TestJobApproved2 m.Job
	// TestJobPending is owned by employer 1 and awaits admin approval
	TestJobPending m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBInstance, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample students, employers, an admin and job postings.
func seedTestData(db *DBInstance) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return fmt.Errorf("test database is not empty")
	}

	emails := []*string{
		ptr("student1@example.com"),
		ptr("student2@example.com"),
		ptr("employer1@example.com"),
		ptr("employer2@example.com"),
		ptr("admin@example.com"),
	}
	userSpecs := []struct {
		username string
		email    *string
		role     string
	}{
		{"student_1", emails[0], m.RoleStudent},
		{"student_2", emails[1], m.RoleStudent},
		{"employer_1", emails[2], m.RoleEmployer},
		{"employer_2", emails[3], m.RoleEmployer},
		{"admin_user", emails[4], m.RoleAdmin},
	}

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		users = append(users, m.User{
			ID:       uuid.New(),
			Username: s.username,
			Email:    s.email,
			Role:     s.role,
			Password: hashedPwd,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	for _, u := range users {
		switch u.Username {
		case "student_1":
			TestUserStudent1 = u
		case "student_2":
			TestUserStudent2 = u
		case "employer_1":
			TestUserEmployer1 = u
		case "employer_2":
			TestUserEmployer2 = u
		case "admin_user":
			TestAdminUser = u
		}
	}

	jobs := []m.Job{
		{
			ID:         uuid.New(),
			EmployerID: TestUserEmployer1.ID,
			Approved:   true,
			EditableJobInfo: m.EditableJobInfo{
				Title:       "Backend Engineer Intern",
				Description: "Work on Go services and database layers.",
				Location:    "Bangkok (Hybrid)",
				Duration:    "3 months",
				Skills:      pq.StringArray{"go", "sql", "api"},
			},
		},
		{
			ID:         uuid.New(),
			EmployerID: TestUserEmployer2.ID,
			Approved:   true,
			EditableJobInfo: m.EditableJobInfo{
				Title:       "Data Analyst Intern",
				Description: "Support data cleansing and dashboard creation.",
				Location:    "Remote",
				Duration:    "6 months",
				Skills:      pq.StringArray{"sql", "statistics"},
			},
		},
		{
			ID:         uuid.New(),
			EmployerID: TestUserEmployer1.ID,
			Approved:   false,
			EditableJobInfo: m.EditableJobInfo{
				Title:       "Frontend Developer Intern",
				Description: "Assist building a component library.",
				Location:    "Chiang Mai (On-site)",
				Duration:    "4 months",
				Skills:      pq.StringArray{"typescript", "react"},
			},
		},
	}

	if err := db.Create(&jobs).Error; err != nil {
		return err
	}
	TestJobApproved1 = jobs[0]
	TestJobApproved2 = jobs[1]
	TestJobPending = jobs[2]

	return nil
}

// ptr helper
func ptr[T any](v T) *T { return &v }
