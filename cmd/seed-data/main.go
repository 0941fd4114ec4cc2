// Command seed-data fills the database with employer accounts and approved
// job listings so a fresh install has something to browse.
package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/MichaelTeekey/job-finder/internal/database"
	"github.com/MichaelTeekey/job-finder/internal/model"
	"github.com/MichaelTeekey/job-finder/internal/utilities"
)

var companies = []string{
	"Econet Wireless Zimbabwe",
	"Delta Corporation",
	"CBZ Holdings",
	"Dendairy Zimbabwe",
	"MTN Group",
	"Shoprite Holdings",
	"Sasol",
	"Pick n Pay",
	"Vodacom",
}

var jobTitles = []string{
	"Software Engineer",
	"Data Analyst",
	"Marketing Officer",
	"Human Resources Assistant",
	"Finance Intern",
	"Sales Representative",
	"IT Support Technician",
	"Customer Service Agent",
	"Project Coordinator",
	"Business Analyst",
}

var descriptions = []string{
	"Looking for a motivated individual to join our team.",
	"Must have strong communication and technical skills.",
	"Great opportunity to grow within the company.",
	"We value teamwork, innovation and dedication.",
}

var locations = []string{
	"Harare", "Bulawayo", "Johannesburg", "Cape Town",
	"Gaborone", "Pretoria", "Lusaka",
}

const seedPassword = "Pass1234!"

func main() {
	db, err := database.GetMainDB()
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	hashedPassword, err := utilities.HashPassword(seedPassword)
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}

	log.Println("Seeding employers...")

	employers := make([]model.User, 0, len(companies))
	for _, company := range companies {
		username := strings.ToLower(strings.ReplaceAll(company, " ", "_"))
		email := fmt.Sprintf("%s@example.com", username)

		var employer model.User
		err := db.Where("email = ?", email).First(&employer).Error
		switch {
		case err == nil:
			log.Printf("Employer already exists: %s", company)
		case errors.Is(err, gorm.ErrRecordNotFound):
			employer = model.User{
				Username: username,
				Email:    &email,
				Password: hashedPassword,
				Role:     model.RoleEmployer,
			}
			if err := db.Create(&employer).Error; err != nil {
				log.Fatal("failed to create employer: ", err)
			}
			log.Printf("Created employer: %s", company)
		default:
			log.Fatal("failed to look up employer: ", err)
		}

		employers = append(employers, employer)
	}

	log.Println("Seeding jobs...")

	for _, employer := range employers {
		for i := 0; i < 6; i++ {
			job := model.Job{
				EmployerID: employer.ID,
				// Seeded jobs are auto-approved so they show up right away.
				Approved: true,
				EditableJobInfo: model.EditableJobInfo{
					Title:       jobTitles[rand.Intn(len(jobTitles))],
					Description: descriptions[rand.Intn(len(descriptions))],
					Location:    locations[rand.Intn(len(locations))],
					Duration:    fmt.Sprintf("%d months", rand.Intn(12)+1),
					Skills:      pq.StringArray{"Communication", "Teamwork", "Problem-Solving"},
				},
			}
			if err := db.Create(&job).Error; err != nil {
				log.Fatal("failed to create job: ", err)
			}
			log.Printf("Created job: %s for %s", job.Title, employer.Username)
		}
	}

	log.Println("Database seeding completed successfully")
}
