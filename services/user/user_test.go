package user

import (
	"errors"
	"testing"

	"doctorsportal/models"
	"doctorsportal/utils"
)

// memUserRepo is an in-memory UserRepository keyed by email.
type memUserRepo struct {
	users map[string]*models.User // email -> user
	byID  map[string]*models.User
	err   error
}

func newMemUserRepo(users ...*models.User) *memUserRepo {
	m := &memUserRepo{users: map[string]*models.User{}, byID: map[string]*models.User{}}
	for _, u := range users {
		m.users[u.Email] = u
		m.byID[u.ID] = u
	}
	return m
}

func (m *memUserRepo) Create(u *models.User) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.users[u.Email] = u
	m.byID[u.ID] = u
	return u.ID, nil
}

func (m *memUserRepo) GetAll() ([]models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserRepo) GetByEmail(email string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[email], nil
}

func (m *memUserRepo) GrantAdmin(id string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	u.Role = models.RoleAdmin
	return u, nil
}

func TestIssueTokenForRegisteredUser(t *testing.T) {
	repo := newMemUserRepo(&models.User{ID: "u1", Email: "a@x.com", Name: "A"})
	svc := &DefaultUserService{Repo: repo}

	token, err := svc.IssueToken("a@x.com")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	email, err := utils.ExtractEmailFromToken(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if email != "a@x.com" {
		t.Errorf("token email claim = %q, want %q", email, "a@x.com")
	}
}

func TestIssueTokenUnknownEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	_, err := svc.IssueToken("ghost@x.com")
	if !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}

func TestIssueTokenDataFailure(t *testing.T) {
	repo := newMemUserRepo()
	repo.err = errors.New("connection reset")
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.IssueToken("a@x.com")
	if err == nil || errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected a data-access error, got %v", err)
	}
}

func TestIsAdmin(t *testing.T) {
	repo := newMemUserRepo(
		&models.User{ID: "u1", Email: "admin@x.com", Role: models.RoleAdmin},
		&models.User{ID: "u2", Email: "plain@x.com"},
	)
	svc := &DefaultUserService{Repo: repo}

	cases := []struct {
		email string
		want  bool
	}{
		{"admin@x.com", true},
		{"plain@x.com", false},
		{"ghost@x.com", false},
	}
	for _, tc := range cases {
		got, err := svc.IsAdmin(tc.email)
		if err != nil {
			t.Fatalf("IsAdmin(%s) failed: %v", tc.email, err)
		}
		if got != tc.want {
			t.Errorf("IsAdmin(%s) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestRegisterAssignsIDUsableForGrant(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultUserService{Repo: repo}

	id, err := svc.Register(&models.User{Name: "Jane", Email: "jane@x.com"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if id == "" {
		t.Fatal("Register returned an empty id")
	}

	// The id visible through the list path must be the one GrantAdmin accepts.
	users, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(users) != 1 || users[0].ID != id {
		t.Fatalf("listed id = %q, want %q", users[0].ID, id)
	}

	usr, err := svc.GrantAdmin(users[0].ID)
	if err != nil {
		t.Fatalf("GrantAdmin with listed id failed: %v", err)
	}
	if !usr.IsAdmin() || usr.Email != "jane@x.com" {
		t.Errorf("granted user = %+v, want admin role on jane@x.com", usr)
	}
}

func TestGrantAdmin(t *testing.T) {
	repo := newMemUserRepo(&models.User{ID: "u2", Email: "plain@x.com"})
	svc := &DefaultUserService{Repo: repo}

	usr, err := svc.GrantAdmin("u2")
	if err != nil {
		t.Fatalf("GrantAdmin failed: %v", err)
	}
	if usr.Email != "plain@x.com" || !usr.IsAdmin() {
		t.Errorf("granted user = %+v, want admin role on plain@x.com", usr)
	}

	isAdmin, err := svc.IsAdmin("plain@x.com")
	if err != nil {
		t.Fatalf("IsAdmin failed: %v", err)
	}
	if !isAdmin {
		t.Error("role grant not visible through IsAdmin")
	}
}
