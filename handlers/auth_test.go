package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barberdesk/models"
	"barberdesk/services/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeUserService records registration calls and returns canned results.
type fakeUserService struct {
	registers int
}

func (f *fakeUserService) RegisterUser(input user.RegistrationInput) (*user.AuthResponse, error) {
	f.registers++
	return &user.AuthResponse{
		User:  &models.User{ID: "u1", Name: input.Name, Role: input.Role, BranchID: input.BranchID},
		Token: "token",
	}, nil
}

func (f *fakeUserService) AuthenticateUser(phone, password string) (*user.AuthResponse, error) {
	return nil, nil
}
func (f *fakeUserService) GetUserByID(string) (*models.User, error)        { return nil, nil }
func (f *fakeUserService) GetUsersByBranch(string) ([]models.User, error)  { return nil, nil }
func (f *fakeUserService) GetAllUsers() ([]models.User, error)             { return nil, nil }
func (f *fakeUserService) UpdateUser(models.User) (*models.User, error)    { return nil, nil }
func (f *fakeUserService) DeleteUser(string) error                         { return nil }
func (f *fakeUserService) SetSuspended(string, bool) (*models.User, error) { return nil, nil }
func (f *fakeUserService) RevokeAuthToken(string) error                    { return nil }

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublicRegisterOnlyMintsOwners(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeUserService{}
	r := gin.New()
	r.POST("/api/auth/register", NewAuthHandler(svc).RegisterHandler)

	for _, role := range []string{"admin", "barber", "washer", "customer"} {
		w := postJSON(r, "/api/auth/register",
			`{"name":"Abel","phone":"0911000000","password":"secret","role":"`+role+`","branchId":"b1"}`)
		assert.Equal(t, http.StatusForbidden, w.Code, "role %s must not self-register", role)
	}
	assert.Zero(t, svc.registers)

	w := postJSON(r, "/api/auth/register",
		`{"name":"Abel","phone":"0911000000","password":"secret","role":"owner"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.registers)
}

func TestStaffCreationRejectsOwnerRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeUserService{}
	r := gin.New()
	r.POST("/api/users", NewUserHandler(svc).CreateStaffHandler)

	w := postJSON(r, "/api/users",
		`{"name":"Eve","phone":"0911000001","password":"secret","role":"owner"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.registers)

	w = postJSON(r, "/api/users",
		`{"name":"Eve","phone":"0911000001","password":"secret","role":"barber","branchId":"b1"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.registers)
}
