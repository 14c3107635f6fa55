package user

import (
	"errors"
	"testing"

	"roomify/config"
	"roomify/models"
	"roomify/services/booking"
)

type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIDs(ids []string) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func validRegistration() RegisterInput {
	return RegisterInput{
		FirstName: "Ada",
		LastName:  "Mwangi",
		Email:     "Ada@Example.com",
		Password:  "s3cret-pass",
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	result, err := svc.Register(validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if result.Token == "" {
		t.Fatal("Register() returned empty token")
	}
	if result.User.Email != "ada@example.com" {
		t.Fatalf("email = %q, want lowercased", result.User.Email)
	}
	if result.User.Role != models.RoleUser {
		t.Fatalf("role = %q, want user", result.User.Role)
	}
	if result.User.PasswordHash == "s3cret-pass" {
		t.Fatal("password stored in plain text")
	}

	// Login works with the original casing and the right password.
	if _, err := svc.Authenticate("ADA@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if _, err := svc.Authenticate("ada@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Authenticate(wrong) error = %v, want %v", err, ErrInvalidCredentials)
	}
	if _, err := svc.Authenticate("nobody@example.com", "s3cret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Authenticate(unknown) error = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	if _, err := svc.Register(validRegistration()); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(validRegistration()); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second Register() error = %v, want %v", err, ErrEmailTaken)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	in := validRegistration()
	in.Password = "short"

	if _, err := svc.Register(in); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("Register() error = %v, want %v", err, ErrWeakPassword)
	}
}

func TestUpdateUserRoleRules(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	result, err := svc.Register(validRegistration())
	if err != nil {
		t.Fatal(err)
	}
	id := result.User.ID
	adminRole := models.RoleAdmin

	// A user cannot promote themselves.
	_, err = svc.UpdateUser(id, UpdateInput{Role: &adminRole}, booking.Actor{UserID: id})
	if !errors.Is(err, booking.ErrForbidden) {
		t.Fatalf("self-promotion error = %v, want %v", err, booking.ErrForbidden)
	}

	// An admin can.
	updated, err := svc.UpdateUser(id, UpdateInput{Role: &adminRole}, booking.Actor{UserID: "staff-1", Admin: true})
	if err != nil {
		t.Fatalf("admin UpdateUser() error = %v", err)
	}
	if updated.Role != models.RoleAdmin {
		t.Fatalf("role = %q, want admin", updated.Role)
	}

	// A user cannot edit someone else's profile.
	name := "Eve"
	_, err = svc.UpdateUser(id, UpdateInput{FirstName: &name}, booking.Actor{UserID: "other"})
	if !errors.Is(err, booking.ErrForbidden) {
		t.Fatalf("cross-user edit error = %v, want %v", err, booking.ErrForbidden)
	}
}
