package services

import (
	"errors"
	"testing"
	"time"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"github.com/SundayYogurt/bank_service/internal/dto"
	"github.com/SundayYogurt/bank_service/internal/helper"
)

type fakeUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint]*domain.User)}
	for i := range users {
		u := users[i]
		r.users[u.ID] = &u
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (r *fakeUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.EmailID == user.EmailID {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return user, nil
}

func (r *fakeUserRepo) FindUsers() ([]domain.User, error) {
	var users []domain.User
	for _, u := range r.users {
		if !u.IsDeleted {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) FindUserByID(userID uint) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok || u.IsDeleted {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindUserByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.EmailID == email && !u.IsDeleted {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(email string) (bool, error) {
	for _, u := range r.users {
		if u.EmailID == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) MobileNumberExists(mobile string) (bool, error) {
	for _, u := range r.users {
		if u.MobileNumber == mobile {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) SaveUser(user *domain.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

type fakeUserTypeRepo struct {
	types map[uint]*domain.UserType
}

func newFakeUserTypeRepo() *fakeUserTypeRepo {
	return &fakeUserTypeRepo{types: map[uint]*domain.UserType{
		1: {ID: 1, UserType: "customer"},
		2: {ID: 2, UserType: "admin"},
	}}
}

func (r *fakeUserTypeRepo) Create(ut *domain.UserType) error {
	ut.ID = uint(len(r.types) + 1)
	r.types[ut.ID] = ut
	return nil
}

func (r *fakeUserTypeRepo) FindAll() ([]domain.UserType, error) {
	var types []domain.UserType
	for _, ut := range r.types {
		types = append(types, *ut)
	}
	return types, nil
}

func (r *fakeUserTypeRepo) FindByID(id uint) (*domain.UserType, error) {
	ut, ok := r.types[id]
	if !ok {
		return nil, domain.ErrUserTypeNotFound
	}
	cp := *ut
	return &cp, nil
}

func (r *fakeUserTypeRepo) Save(ut *domain.UserType) error {
	r.types[ut.ID] = ut
	return nil
}

func (r *fakeUserTypeRepo) Delete(id uint) error {
	if _, ok := r.types[id]; !ok {
		return domain.ErrUserTypeNotFound
	}
	delete(r.types, id)
	return nil
}

type fakeTokenRepo struct {
	blocked map[string]bool
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{blocked: make(map[string]bool)}
}

func (r *fakeTokenRepo) Add(jti string) error {
	r.blocked[jti] = true
	return nil
}

func (r *fakeTokenRepo) IsBlocked(jti string) (bool, error) {
	return r.blocked[jti], nil
}

func (r *fakeTokenRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	return 0, nil
}

func validRegistration() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		FirstName:    "Alice",
		LastName:     "Johnson",
		Address:      "12 Bank Street",
		MobileNumber: "9876543210",
		EmailID:      "alice@example.com",
		Password:     "secret-pass",
		UserTypeID:   1,
	}
}

func newUserService(repo *fakeUserRepo, tokens *fakeTokenRepo) UserService {
	return NewUserService(repo, newFakeUserTypeRepo(), tokens, helper.SetupAuth("test-secret"))
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, newFakeTokenRepo())

	user, err := svc.Register(validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("registered user has no id")
	}
	if user.Password == "secret-pass" {
		t.Fatalf("password stored in plain text")
	}

	token, err := svc.Login("alice@example.com", "secret-pass")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Fatalf("Login() returned empty token")
	}

	claims, err := helper.SetupAuth("test-secret").VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if claims.UserID != user.ID || claims.Email != "alice@example.com" {
		t.Fatalf("claims = %+v, want user %d", claims, user.ID)
	}
	if claims.Jti == "" {
		t.Fatalf("token has no jti")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, newFakeTokenRepo())
	if _, err := svc.Register(validRegistration()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong_password", email: "alice@example.com", password: "wrong-pass"},
		{name: "unknown_email", email: "nobody@example.com", password: "secret-pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(tt.email, tt.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLoginNormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, newFakeTokenRepo())
	if _, err := svc.Register(validRegistration()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := svc.Login("  Alice@Example.COM ", "secret-pass"); err != nil {
		t.Fatalf("Login() with mixed-case email error = %v", err)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, newFakeTokenRepo())
	if _, err := svc.Register(validRegistration()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	dup := validRegistration()
	dup.MobileNumber = "9876500000"
	if _, err := svc.Register(dup); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("error = %v, want ErrDuplicateEmail", err)
	}

	dup = validRegistration()
	dup.EmailID = "other@example.com"
	if _, err := svc.Register(dup); !errors.Is(err, domain.ErrDuplicateMobile) {
		t.Fatalf("error = %v, want ErrDuplicateMobile", err)
	}
}

func TestRegisterUnknownUserType(t *testing.T) {
	svc := newUserService(newFakeUserRepo(), newFakeTokenRepo())

	req := validRegistration()
	req.UserTypeID = 42
	if _, err := svc.Register(req); !errors.Is(err, domain.ErrUserTypeNotFound) {
		t.Fatalf("error = %v, want ErrUserTypeNotFound", err)
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, newFakeTokenRepo())

	req := validRegistration()
	req.EmailID = "  Alice@Example.COM "
	user, err := svc.Register(req)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.EmailID != "alice@example.com" {
		t.Fatalf("email = %q, want lower-cased trimmed", user.EmailID)
	}
}

func TestLogoutBlocksToken(t *testing.T) {
	tokens := newFakeTokenRepo()
	svc := newUserService(newFakeUserRepo(), tokens)

	if err := svc.Logout("some-jti"); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	blocked, _ := tokens.IsBlocked("some-jti")
	if !blocked {
		t.Fatalf("jti not added to block list")
	}
}

func TestDeleteUserIsSoft(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, newFakeTokenRepo())

	user, err := svc.Register(validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := svc.DeleteUser(user.ID); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}

	if _, err := svc.GetUser(user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("deleted user still visible, error = %v", err)
	}
	// the row itself stays
	stored, ok := repo.users[user.ID]
	if !ok || !stored.IsDeleted {
		t.Fatalf("delete must flag the row, not remove it")
	}
}

func TestUpdateUserPartial(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, newFakeTokenRepo())

	user, err := svc.Register(validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	name := "Alicia"
	updated, err := svc.UpdateUser(user.ID, dto.UpdateUserRequest{FirstName: &name})
	if err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	if updated.FirstName != "Alicia" {
		t.Fatalf("first name = %q, want Alicia", updated.FirstName)
	}
	if updated.EmailID != user.EmailID || updated.MobileNumber != user.MobileNumber {
		t.Fatalf("untouched fields must keep their stored values")
	}
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, newFakeTokenRepo())

	first, err := svc.Register(validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	second := validRegistration()
	second.EmailID = "bob@example.com"
	second.MobileNumber = "9876500000"
	if _, err := svc.Register(second); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	taken := "bob@example.com"
	if _, err := svc.UpdateUser(first.ID, dto.UpdateUserRequest{EmailID: &taken}); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("error = %v, want ErrDuplicateEmail", err)
	}

	// re-submitting the current email is a no-op, not a conflict
	same := first.EmailID
	if _, err := svc.UpdateUser(first.ID, dto.UpdateUserRequest{EmailID: &same}); err != nil {
		t.Fatalf("updating to own email error = %v", err)
	}
}
