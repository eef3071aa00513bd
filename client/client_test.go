package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore-hms/hmsctl/client"
	hms_errors "github.com/medicore-hms/hmsctl/errors"
	"github.com/medicore-hms/hmsctl/gateway"
	logger "github.com/medicore-hms/hmsctl/logging"
	"github.com/medicore-hms/hmsctl/model"
	"github.com/medicore-hms/hmsctl/store"
	"github.com/medicore-hms/hmsctl/util"
	helper_util "github.com/medicore-hms/hmsctl/util/helper"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	dir, _ := os.MkdirTemp("", "hmsctl-test")
	logger.InitLogger(dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   []byte
}

func fixtureBackend(t *testing.T, reply gin.H) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	r := gin.New()
	r.NoRoute(func(c *gin.Context) {
		captured.Method = c.Request.Method
		captured.Path = c.Request.URL.Path
		captured.Query = c.Request.URL.RawQuery
		captured.Auth = c.GetHeader("Authorization")
		captured.Body, _ = c.GetRawData()
		c.JSON(http.StatusOK, reply)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, captured
}

func seededGateway(t *testing.T, srvURL string) *gateway.Gateway {
	t.Helper()
	s := store.NewMemoryStore()
	user := &model.User{ID: "1", Email: "doctor@hospital.test", UserType: model.UserType{Type: "doctor"}}
	rec, err := store.NewRecord("tok-abc", user, "doctor", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), rec))
	return gateway.New(srvURL, "", s, nil)
}

func TestAuthClientLogin(t *testing.T) {
	srv, captured := fixtureBackend(t, gin.H{
		"success":      true,
		"access_token": "tok-new",
		"user":         gin.H{"id": "u-1", "email": "doctor@hospital.test", "user_type": gin.H{"type": "doctor"}},
	})
	gw := gateway.New(srv.URL, "", store.NewMemoryStore(), nil)
	auth := client.NewAuthClient(gw, util.NewValidationUtil())

	resp, err := auth.Login(context.Background(), "doctor@hospital.test", "password123")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "tok-new", resp.AccessToken)
	assert.Equal(t, "/login", captured.Path)

	// Credentials travel under "username", matching the backend contract.
	var sent map[string]string
	require.NoError(t, json.Unmarshal(captured.Body, &sent))
	assert.Equal(t, "doctor@hospital.test", sent["username"])
}

func TestAuthClientLoginRejectsBadInput(t *testing.T) {
	gw := gateway.New("http://unused.invalid", "", store.NewMemoryStore(), nil)
	auth := client.NewAuthClient(gw, util.NewValidationUtil())

	_, err := auth.Login(context.Background(), "not-an-email", "pw")
	assert.ErrorIs(t, err, hms_errors.ErrInvalidLoginData)
}

func TestAuthClientValidateTokenSendsExplicitHeader(t *testing.T) {
	srv, captured := fixtureBackend(t, gin.H{
		"success": true,
		"data":    gin.H{"id": "u-1", "email": "doctor@hospital.test", "user_type": gin.H{"type": "doctor"}},
	})
	// Empty store: the explicit header must carry the token on its own.
	gw := gateway.New(srv.URL, "", store.NewMemoryStore(), nil)
	auth := client.NewAuthClient(gw, util.NewValidationUtil())

	user, err := auth.ValidateToken(context.Background(), "tok-candidate")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "Bearer tok-candidate", captured.Auth)
}

func TestUserListFiltersByType(t *testing.T) {
	srv, captured := fixtureBackend(t, gin.H{
		"success": true,
		"data":    []gin.H{{"id": "u-1", "email": "doctor@hospital.test"}},
	})
	users := client.NewUserClient(seededGateway(t, srv.URL), util.NewValidationUtil())

	got, err := users.List(context.Background(), "doctor")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "/users", captured.Path)
	assert.Equal(t, "user_type=doctor", captured.Query)
}

func TestPatientListPassesParams(t *testing.T) {
	srv, captured := fixtureBackend(t, gin.H{"success": true, "data": []gin.H{}})
	patients := client.NewPatientClient(seededGateway(t, srv.URL), util.NewValidationUtil())

	_, err := patients.List(context.Background(), helper_util.ListParams{Page: 2, Limit: 25, Query: "smith"})
	require.NoError(t, err)
	assert.Equal(t, "/patients", captured.Path)
	assert.Equal(t, "limit=25&page=2&q=smith", captured.Query)
}

func TestDepartmentDeleteUsesSingularEndpoint(t *testing.T) {
	srv, captured := fixtureBackend(t, gin.H{"success": true})
	depts := client.NewDepartmentClient(seededGateway(t, srv.URL), util.NewValidationUtil())

	require.NoError(t, depts.Delete(context.Background(), "d-9"))
	assert.Equal(t, http.MethodDelete, captured.Method)
	assert.Equal(t, "/department", captured.Path)
	assert.JSONEq(t, `{"id":"d-9"}`, string(captured.Body))
}

func TestBackendRejectionCarriesMessage(t *testing.T) {
	srv, _ := fixtureBackend(t, gin.H{"success": false, "msg": "department has active wards"})
	depts := client.NewDepartmentClient(seededGateway(t, srv.URL), util.NewValidationUtil())

	err := depts.Delete(context.Background(), "d-9")
	assert.ErrorIs(t, err, hms_errors.ErrBackendRejected)
	assert.Contains(t, err.Error(), "department has active wards")
}

func TestCreateValidationShortCircuits(t *testing.T) {
	srv, captured := fixtureBackend(t, gin.H{"success": true})
	patients := client.NewPatientClient(seededGateway(t, srv.URL), util.NewValidationUtil())

	_, err := patients.Create(context.Background(), model.Patient{}) // name is required
	assert.ErrorIs(t, err, hms_errors.ErrValidationFailure)
	assert.Empty(t, captured.Method, "invalid payloads never reach the wire")
}

func TestMedicineStockPatch(t *testing.T) {
	srv, captured := fixtureBackend(t, gin.H{"success": true})
	clinical := client.NewClinicalClient(seededGateway(t, srv.URL), util.NewValidationUtil())

	require.NoError(t, clinical.UpdateMedicineStock(context.Background(), "m-3", 40))
	assert.Equal(t, http.MethodPatch, captured.Method)
	assert.Equal(t, "/medicines/m-3", captured.Path)
	assert.JSONEq(t, `{"stock":40}`, string(captured.Body))
}

func TestStatsDecode(t *testing.T) {
	srv, _ := fixtureBackend(t, gin.H{
		"success": true,
		"data":    gin.H{"patients": 120, "doctors": 14, "open_tokens": 7},
	})
	hospital := client.NewHospitalClient(seededGateway(t, srv.URL))

	stats, err := hospital.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, stats.Patients)
	assert.Equal(t, 7, stats.OpenTokens)
}

func TestExportNamesFileByDatasetAndFormat(t *testing.T) {
	r := gin.New()
	r.GET("/export", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/csv", []byte("id,name\n1,Chen\n"))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	hospital := client.NewHospitalClient(seededGateway(t, srv.URL))
	dir := t.TempDir()

	path, err := hospital.Export(context.Background(), "patients", "csv", dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Contains(t, path, "patients.csv")
}
