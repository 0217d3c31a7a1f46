package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(u *models.User) (string, error) { return u.ID, nil }

func (f *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) GrantAdmin(id string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func testRouter(t *testing.T, admin Guard) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/protected", Authenticate(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetIdentity(c)})
	})
	r.GET("/admin-only", Authenticate(), RequireGuards(admin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func newAdminGuard() *AdminGuard {
	repo := &fakeUserRepo{users: map[string]*models.User{
		"admin@x.com": {ID: "u1", Email: "admin@x.com", Role: models.RoleAdmin},
		"plain@x.com": {ID: "u2", Email: "plain@x.com"},
	}}
	// No cache client: the guard falls back to the repository.
	return &AdminGuard{Users: repo}
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingHeader(t *testing.T) {
	r := testRouter(t, newAdminGuard())

	w := doRequest(r, "/protected", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	r := testRouter(t, newAdminGuard())

	w := doRequest(r, "/protected", "Bearer garbage")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	r := testRouter(t, newAdminGuard())

	token, err := utils.GenerateToken("plain@x.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	// No "Bearer " prefix.
	w := doRequest(r, "/protected", token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestAuthenticateValidToken(t *testing.T) {
	r := testRouter(t, newAdminGuard())

	token, err := utils.GenerateToken("plain@x.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	w := doRequest(r, "/protected", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}

func TestAdminGuardRejectsNonAdmin(t *testing.T) {
	r := testRouter(t, newAdminGuard())

	token, err := utils.GenerateToken("plain@x.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	w := doRequest(r, "/admin-only", "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestAdminGuardRejectsUnknownUser(t *testing.T) {
	r := testRouter(t, newAdminGuard())

	token, err := utils.GenerateToken("ghost@x.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	w := doRequest(r, "/admin-only", "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestAdminGuardAllowsAdmin(t *testing.T) {
	r := testRouter(t, newAdminGuard())

	token, err := utils.GenerateToken("admin@x.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	w := doRequest(r, "/admin-only", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}

func TestGuardsShortCircuitInOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var order []string
	pass := GuardFunc(func(c *gin.Context, identity string) error {
		order = append(order, "pass")
		return nil
	})
	fail := GuardFunc(func(c *gin.Context, identity string) error {
		order = append(order, "fail")
		return errors.New("nope")
	})
	never := GuardFunc(func(c *gin.Context, identity string) error {
		order = append(order, "never")
		return nil
	})

	r := gin.New()
	r.GET("/chained", Authenticate(), RequireGuards(pass, fail, never), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	token, err := utils.GenerateToken("a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	w := doRequest(r, "/chained", "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if len(order) != 2 || order[0] != "pass" || order[1] != "fail" {
		t.Errorf("guard evaluation order = %v, want [pass fail]", order)
	}
}
