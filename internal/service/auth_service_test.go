package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/QNhat1998/sales-api/internal/domain"
	"github.com/QNhat1998/sales-api/internal/dto"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	users         map[string]*domain.User
	usernameIndex map[string]*domain.User
	emailIndex    map[string]*domain.User
	createError   error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:         make(map[string]*domain.User),
		usernameIndex: make(map[string]*domain.User),
		emailIndex:    make(map[string]*domain.User),
	}
}

func (r *mockUserRepository) add(user *domain.User) {
	r.users[user.ID] = user
	r.usernameIndex[user.Username] = user
	r.emailIndex[user.Email] = user
}

func (r *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if r.createError != nil {
		return r.createError
	}
	r.add(user)
	return nil
}

func (r *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.users[id], nil
}

func (r *mockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.usernameIndex[username], nil
}

func (r *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.emailIndex[email], nil
}

func (r *mockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	_, byName := r.usernameIndex[username]
	_, byEmail := r.emailIndex[email]
	return byName || byEmail, nil
}

func (r *mockUserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, int64, error) {
	var users []*domain.User
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, int64(len(users)), nil
}

func (r *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.add(user)
	return nil
}

func (r *mockUserRepository) Delete(ctx context.Context, id string) error {
	user := r.users[id]
	if user != nil {
		delete(r.usernameIndex, user.Username)
		delete(r.emailIndex, user.Email)
		delete(r.users, id)
	}
	return nil
}

// mockTokenLedger backs both token repositories
type mockTokenLedger struct {
	byToken map[string]*domain.LedgerToken
}

func newMockTokenLedger() *mockTokenLedger {
	return &mockTokenLedger{byToken: make(map[string]*domain.LedgerToken)}
}

func (r *mockTokenLedger) Create(ctx context.Context, token *domain.LedgerToken) error {
	r.byToken[token.Token] = token
	return nil
}

func (r *mockTokenLedger) GetByToken(ctx context.Context, token string) (*domain.LedgerToken, error) {
	return r.byToken[token], nil
}

func (r *mockTokenLedger) Delete(ctx context.Context, userID, token string) error {
	entry := r.byToken[token]
	if entry != nil && entry.UserID == userID {
		delete(r.byToken, token)
	}
	return nil
}

func (r *mockTokenLedger) DeleteByToken(ctx context.Context, token string) error {
	delete(r.byToken, token)
	return nil
}

func (r *mockTokenLedger) DeleteByUserID(ctx context.Context, userID string) error {
	for token, entry := range r.byToken {
		if entry.UserID == userID {
			delete(r.byToken, token)
		}
	}
	return nil
}

func (r *mockTokenLedger) Claim(ctx context.Context, token string) (*domain.LedgerToken, error) {
	entry := r.byToken[token]
	if entry != nil {
		delete(r.byToken, token)
	}
	return entry, nil
}

func testAuthConfig() *AuthServiceConfig {
	return &AuthServiceConfig{
		JWTSecret:          "test-secret-key",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		BcryptCost:         bcrypt.MinCost,
	}
}

func newTestAuthService() (AuthService, *mockUserRepository, *mockTokenLedger, *mockTokenLedger) {
	userRepo := newMockUserRepository()
	accessRepo := newMockTokenLedger()
	refreshRepo := newMockTokenLedger()
	svc := NewAuthService(userRepo, accessRepo, refreshRepo, testAuthConfig())
	return svc, userRepo, accessRepo, refreshRepo
}

func seedUser(t *testing.T, userRepo *mockUserRepository, username, password string, active bool) *domain.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error = %v", err)
	}
	user := &domain.User{
		ID:           username + "-id",
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hashed),
		FirstName:    "Test",
		LastName:     "User",
		IsActive:     active,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	userRepo.add(user)
	return user
}

func TestAuthService_Signup(t *testing.T) {
	svc, _, accessRepo, refreshRepo := newTestAuthService()

	t.Run("successful signup", func(t *testing.T) {
		req := &dto.SignupRequest{
			Username:  "johndoe",
			Email:     "john@example.com",
			Password:  "Password1!",
			FirstName: "John",
			LastName:  "Doe",
		}

		resp, err := svc.Signup(context.Background(), req)
		if err != nil {
			t.Fatalf("Signup() error = %v", err)
		}

		if resp.AccessToken == "" {
			t.Error("Signup() AccessToken is empty")
		}
		if resp.RefreshToken == "" {
			t.Error("Signup() RefreshToken is empty")
		}
		if resp.AccessToken == resp.RefreshToken {
			t.Error("Signup() access and refresh tokens should differ")
		}
		if resp.User.Username != req.Username {
			t.Errorf("Signup() User.Username = %v, want %v", resp.User.Username, req.Username)
		}
		if resp.User.FullName != "John Doe" {
			t.Errorf("Signup() User.FullName = %v, want John Doe", resp.User.FullName)
		}
		if !resp.User.IsActive {
			t.Error("Signup() new user should be active")
		}

		// Both tokens are recorded in the ledger
		if entry, _ := accessRepo.GetByToken(context.Background(), resp.AccessToken); entry == nil {
			t.Error("Signup() access token not recorded in ledger")
		}
		if entry, _ := refreshRepo.GetByToken(context.Background(), resp.RefreshToken); entry == nil {
			t.Error("Signup() refresh token not recorded in ledger")
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		req := &dto.SignupRequest{
			Username:  "johndoe",
			Email:     "other@example.com",
			Password:  "Password1!",
			FirstName: "Other",
			LastName:  "User",
		}

		_, err := svc.Signup(context.Background(), req)
		if !errors.Is(err, domain.ErrUserExists) {
			t.Errorf("Signup() error = %v, want %v", err, domain.ErrUserExists)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		req := &dto.SignupRequest{
			Username:  "janedoe",
			Email:     "john@example.com",
			Password:  "Password1!",
			FirstName: "Jane",
			LastName:  "Doe",
		}

		_, err := svc.Signup(context.Background(), req)
		if !errors.Is(err, domain.ErrUserExists) {
			t.Errorf("Signup() error = %v, want %v", err, domain.ErrUserExists)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	svc, userRepo, _, _ := newTestAuthService()
	seedUser(t, userRepo, "alice", "Password1!", true)
	seedUser(t, userRepo, "inactive", "Password1!", false)

	t.Run("successful login", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{
			Username: "alice",
			Password: "Password1!",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		if resp.AccessToken == "" {
			t.Error("Login() AccessToken is empty")
		}
		if resp.RefreshToken == "" {
			t.Error("Login() RefreshToken is empty")
		}
		if resp.User.Username != "alice" {
			t.Errorf("Login() User.Username = %v, want alice", resp.User.Username)
		}
		if resp.ExpiresIn != int64((15 * time.Minute).Seconds()) {
			t.Errorf("Login() ExpiresIn = %d, want %d", resp.ExpiresIn, int64((15*time.Minute).Seconds()))
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Username: "alice",
			Password: "WrongPassword1!",
		})
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want %v", err, domain.ErrInvalidCredentials)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Username: "nobody",
			Password: "Password1!",
		})
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want %v", err, domain.ErrInvalidCredentials)
		}
	})

	t.Run("inactive user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Username: "inactive",
			Password: "Password1!",
		})
		if !errors.Is(err, domain.ErrUserInactive) {
			t.Errorf("Login() error = %v, want %v", err, domain.ErrUserInactive)
		}
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	svc, userRepo, accessRepo, _ := newTestAuthService()
	user := seedUser(t, userRepo, "bob", "Password1!", true)

	loginResp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "bob",
		Password: "Password1!",
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	t.Run("valid token", func(t *testing.T) {
		claims, err := svc.ValidateToken(context.Background(), loginResp.AccessToken)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("ValidateToken() UserID = %v, want %v", claims.UserID, user.ID)
		}
		if claims.Username != "bob" {
			t.Errorf("ValidateToken() Username = %v, want bob", claims.Username)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not-a-jwt")
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("ValidateToken() error = %v, want %v", err, domain.ErrInvalidToken)
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		tampered := loginResp.AccessToken[:len(loginResp.AccessToken)-1] + "X"
		_, err := svc.ValidateToken(context.Background(), tampered)
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("ValidateToken() error = %v, want %v", err, domain.ErrInvalidToken)
		}
	})

	t.Run("revoked token fails while signature is still valid", func(t *testing.T) {
		if err := accessRepo.DeleteByToken(context.Background(), loginResp.AccessToken); err != nil {
			t.Fatalf("DeleteByToken() error = %v", err)
		}
		_, err := svc.ValidateToken(context.Background(), loginResp.AccessToken)
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("ValidateToken() error = %v, want %v", err, domain.ErrInvalidToken)
		}
	})

	t.Run("deactivated user fails even with a live ledger entry", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{
			Username: "bob",
			Password: "Password1!",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		user.IsActive = false
		defer func() { user.IsActive = true }()

		_, err = svc.ValidateToken(context.Background(), resp.AccessToken)
		if !errors.Is(err, domain.ErrUserInactive) {
			t.Errorf("ValidateToken() error = %v, want %v", err, domain.ErrUserInactive)
		}
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, userRepo, _, refreshRepo := newTestAuthService()
	user := seedUser(t, userRepo, "carol", "Password1!", true)

	loginResp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "carol",
		Password: "Password1!",
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	t.Run("successful refresh rotates the token", func(t *testing.T) {
		resp, err := svc.RefreshToken(context.Background(), loginResp.RefreshToken)
		if err != nil {
			t.Fatalf("RefreshToken() error = %v", err)
		}
		if resp.AccessToken == "" {
			t.Error("RefreshToken() AccessToken is empty")
		}
		if resp.RefreshToken == loginResp.RefreshToken {
			t.Error("RefreshToken() should return a new refresh token")
		}

		// Old token was consumed, replaying it must fail
		_, err = svc.RefreshToken(context.Background(), loginResp.RefreshToken)
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("Replayed RefreshToken() error = %v, want %v", err, domain.ErrInvalidToken)
		}

		// The new access token is valid
		claims, err := svc.ValidateToken(context.Background(), resp.AccessToken)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("ValidateToken() UserID = %v, want %v", claims.UserID, user.ID)
		}
	})

	t.Run("unknown refresh token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), "unknown-token")
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("RefreshToken() error = %v, want %v", err, domain.ErrInvalidToken)
		}
	})

	t.Run("expired refresh token", func(t *testing.T) {
		expired := &domain.LedgerToken{
			ID:        "expired-entry",
			UserID:    user.ID,
			Token:     "expired-refresh-token",
			ExpiresAt: time.Now().Add(-time.Hour),
			CreatedAt: time.Now().Add(-8 * 24 * time.Hour),
		}
		if err := refreshRepo.Create(context.Background(), expired); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		_, err := svc.RefreshToken(context.Background(), "expired-refresh-token")
		if !errors.Is(err, domain.ErrTokenExpired) {
			t.Errorf("RefreshToken() error = %v, want %v", err, domain.ErrTokenExpired)
		}

		// The expired entry was consumed by the claim
		if entry, _ := refreshRepo.GetByToken(context.Background(), "expired-refresh-token"); entry != nil {
			t.Error("Expired refresh token should be removed after the attempt")
		}
	})

	t.Run("inactive user cannot refresh", func(t *testing.T) {
		inactive := seedUser(t, userRepo, "dave", "Password1!", true)
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{
			Username: "dave",
			Password: "Password1!",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		inactive.IsActive = false

		_, err = svc.RefreshToken(context.Background(), resp.RefreshToken)
		if !errors.Is(err, domain.ErrUserInactive) {
			t.Errorf("RefreshToken() error = %v, want %v", err, domain.ErrUserInactive)
		}
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, userRepo, _, _ := newTestAuthService()
	user := seedUser(t, userRepo, "erin", "Password1!", true)

	t.Run("logout revokes the access token", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{
			Username: "erin",
			Password: "Password1!",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		if err := svc.Logout(context.Background(), user.ID, resp.AccessToken); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}

		_, err = svc.ValidateToken(context.Background(), resp.AccessToken)
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("After logout, ValidateToken() error = %v, want %v", err, domain.ErrInvalidToken)
		}
	})

	t.Run("logout twice does not error", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{
			Username: "erin",
			Password: "Password1!",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		if err := svc.Logout(context.Background(), user.ID, resp.AccessToken); err != nil {
			t.Fatalf("First Logout() error = %v", err)
		}
		if err := svc.Logout(context.Background(), user.ID, resp.AccessToken); err != nil {
			t.Errorf("Second Logout() should not error, got %v", err)
		}
	})
}

func TestAuthService_LogoutAll(t *testing.T) {
	svc, userRepo, accessRepo, refreshRepo := newTestAuthService()
	user := seedUser(t, userRepo, "frank", "Password1!", true)

	login := func() *dto.AuthResponse {
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{
			Username: "frank",
			Password: "Password1!",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		return resp
	}

	first := login()
	second := login()

	if err := svc.LogoutAll(context.Background(), user.ID); err != nil {
		t.Fatalf("LogoutAll() error = %v", err)
	}

	if len(accessRepo.byToken) != 0 {
		t.Errorf("Expected empty access ledger after LogoutAll, got %d entries", len(accessRepo.byToken))
	}
	if len(refreshRepo.byToken) != 0 {
		t.Errorf("Expected empty refresh ledger after LogoutAll, got %d entries", len(refreshRepo.byToken))
	}

	for _, resp := range []*dto.AuthResponse{first, second} {
		if _, err := svc.ValidateToken(context.Background(), resp.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("ValidateToken() error = %v, want %v", err, domain.ErrInvalidToken)
		}
		if _, err := svc.RefreshToken(context.Background(), resp.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("RefreshToken() error = %v, want %v", err, domain.ErrInvalidToken)
		}
	}
}

func TestAuthService_GetUser(t *testing.T) {
	svc, userRepo, _, _ := newTestAuthService()
	user := seedUser(t, userRepo, "grace", "Password1!", true)

	t.Run("get existing user", func(t *testing.T) {
		got, err := svc.GetUser(context.Background(), user.ID)
		if err != nil {
			t.Fatalf("GetUser() error = %v", err)
		}
		if got.Username != "grace" {
			t.Errorf("GetUser() Username = %v, want grace", got.Username)
		}
	})

	t.Run("get non-existent user", func(t *testing.T) {
		_, err := svc.GetUser(context.Background(), "non-existent-id")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("GetUser() error = %v, want %v", err, domain.ErrUserNotFound)
		}
	})
}
