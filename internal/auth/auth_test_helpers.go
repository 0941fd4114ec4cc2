package auth

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MichaelTeekey/job-finder/internal/database"
	"github.com/MichaelTeekey/job-finder/internal/utilities"
)

// GetAccessToken is a helper function to obtain an access token for a user by simulating a login API call.
// It takes the testing object, database connection, email, and password as parameters.
// It returns the access token as a string and any error encountered during the process.
func GetAccessToken(
	t *testing.T,
	db *database.DBInstance,
	email string,
	password string,
) (string, error) {
	t.Helper()
	handler := NewLocalAuthHandler(db)
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if rec.Code != http.StatusOK {
		return "", fmt.Errorf("login Failed: status %d, body: %s", rec.Code, rec.Body.String())
	}
	if resp["access"] == nil {
		return "", fmt.Errorf("login Failed: no access token in response: %s", rec.Body.String())
	}
	return resp["access"].(string), nil
}
