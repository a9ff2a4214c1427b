//go:build integration

package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/carebridge/careworker-go/internal/api/middleware"
	"github.com/carebridge/careworker-go/internal/config"
	"github.com/carebridge/careworker-go/internal/config/db"
	"github.com/carebridge/careworker-go/internal/domain/user"
	"github.com/carebridge/careworker-go/internal/repository"
	"github.com/carebridge/careworker-go/internal/testutils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	_, cleanup := testutils.SetupPostgresForIntegration()

	config.LoadConfig()
	middleware.Init()

	gin.SetMode(gin.TestMode)
	router = gin.New()
	RegisterRoutes(router)

	seedAccount("admin@test.local", "admin123", user.RoleAdmin)
	seedAccount("worker@test.local", "worker123", user.RoleCareWorker)

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func seedAccount(email, password string, role user.Role) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	repos := repository.NewRepositories(db.DB)
	u := user.User{Email: email, Password: string(hashed), Role: role, Status: user.StatusActive}
	if err := repos.User.SaveUser(&u); err != nil {
		panic(err)
	}
	if role == user.RoleCareWorker {
		p := user.CareWorkerProfile{UserID: u.ID, Name: "Seeded Worker"}
		if err := repos.User.SaveProfile(&p); err != nil {
			panic(err)
		}
	}
}

// --- Helper functions ---
func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}
	return w
}

func login(t *testing.T, email, password string) string {
	resp := doRequest(t, "POST", "/api/auth/login", "",
		map[string]string{"email": email, "password": password}, http.StatusOK)

	var result struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.Data.Token)
	return result.Data.Token
}

// --- Tests ---
func TestHealth(t *testing.T) {
	doRequest(t, "GET", "/api/health", "", nil, http.StatusOK)
}

func TestLoginAndMe(t *testing.T) {
	token := login(t, "admin@test.local", "admin123")
	resp := doRequest(t, "GET", "/api/auth/me", token, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "admin@test.local")
}

func TestLogin_WrongPassword(t *testing.T) {
	doRequest(t, "POST", "/api/auth/login", "",
		map[string]string{"email": "admin@test.local", "password": "nope"}, http.StatusUnauthorized)
}

func TestCareWorkerRoutes_AdminOnly(t *testing.T) {
	workerToken := login(t, "worker@test.local", "worker123")
	doRequest(t, "GET", "/api/care-workers", workerToken, nil, http.StatusForbidden)

	adminToken := login(t, "admin@test.local", "admin123")
	resp := doRequest(t, "GET", "/api/care-workers", adminToken, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "worker@test.local")
}

func TestAssignmentLifecycleFlow(t *testing.T) {
	adminToken := login(t, "admin@test.local", "admin123")
	workerToken := login(t, "worker@test.local", "worker123")

	// admin creates a template with one required field
	resp := doRequest(t, "POST", "/api/forms", adminToken, map[string]interface{}{
		"name": "Induction Checklist",
		"formData": map[string]interface{}{
			"fields": []map[string]interface{}{
				{"name": "full_name", "required": true},
				{"name": "notes"},
			},
		},
	}, http.StatusCreated)

	var created struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	templateID := created.Data.ID
	require.NotZero(t, templateID)

	// worker id from the listing
	resp = doRequest(t, "GET", "/api/care-workers", adminToken, nil, http.StatusOK)
	var workers struct {
		Data []struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &workers))
	var workerID uint
	for _, w := range workers.Data {
		if w.Email == "worker@test.local" {
			workerID = w.ID
		}
	}
	require.NotZero(t, workerID)

	// assign, then re-assign to confirm the dedupe skip
	doRequest(t, "POST", "/api/form-assignments", adminToken, map[string]interface{}{
		"careWorkerId":    workerID,
		"formTemplateIds": []uint{templateID},
	}, http.StatusCreated)
	resp = doRequest(t, "POST", "/api/form-assignments", adminToken, map[string]interface{}{
		"careWorkerId":    workerID,
		"formTemplateIds": []uint{templateID},
	}, http.StatusCreated)
	require.Contains(t, resp.Body.String(), "skipped")

	// worker sees the assignment
	resp = doRequest(t, "GET", fmt.Sprintf("/api/form-assignments/care-worker/%d", workerID), workerToken, nil, http.StatusOK)
	var assignments struct {
		Data []struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &assignments))
	require.NotEmpty(t, assignments.Data)
	assignmentID := assignments.Data[0].ID

	// submit without the required field is rejected
	doRequest(t, "POST", "/api/care-worker/forms/submit", workerToken, map[string]interface{}{
		"assignedFormId": assignmentID,
		"filledFormData": map[string]interface{}{"notes": "hello"},
	}, http.StatusBadRequest)

	// fill one field, progress moves
	resp = doRequest(t, "PUT", "/api/care-worker/forms/update-progress", workerToken, map[string]interface{}{
		"assignedFormId": assignmentID,
		"fieldName":      "full_name",
		"fieldValue":     "Seeded Worker",
	}, http.StatusOK)
	require.Contains(t, resp.Body.String(), "in_progress")

	// submit with signature requested, then sign
	doRequest(t, "POST", "/api/care-worker/forms/submit", workerToken, map[string]interface{}{
		"assignedFormId":    assignmentID,
		"filledFormData":    map[string]interface{}{"full_name": "Seeded Worker", "notes": "done"},
		"requiresSignature": true,
	}, http.StatusOK)

	resp = doRequest(t, "POST", "/api/care-worker/forms/sign", workerToken, map[string]interface{}{
		"assignedFormId": assignmentID,
		"signatureImage": "data:image/png;base64,AAA",
	}, http.StatusOK)
	require.Contains(t, resp.Body.String(), "completed")

	// signing twice is rejected: the form is already completed
	doRequest(t, "POST", "/api/care-worker/forms/sign", workerToken, map[string]interface{}{
		"assignedFormId": assignmentID,
		"signatureImage": "data:image/png;base64,BBB",
	}, http.StatusBadRequest)
}
