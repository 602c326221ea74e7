package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/QNhat1998/sales-api/internal/domain"
	"github.com/QNhat1998/sales-api/internal/dto"
)

// MockAuthService is a mock implementation of AuthService for testing
type MockAuthService struct {
	SignupFunc        func(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	LoginFunc         func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshTokenFunc  func(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	LogoutFunc        func(ctx context.Context, userID, accessToken string) error
	LogoutAllFunc     func(ctx context.Context, userID string) error
	ValidateTokenFunc func(ctx context.Context, token string) (*domain.Claims, error)
	GetUserFunc       func(ctx context.Context, id string) (*domain.User, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, userID, accessToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID, accessToken)
	}
	return nil
}

func (m *MockAuthService) LogoutAll(ctx context.Context, userID string) error {
	if m.LogoutAllFunc != nil {
		return m.LogoutAllFunc(ctx, userID)
	}
	return nil
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*domain.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockAuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func setupAuthRouter(svc *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuthHandler(svc)

	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.RefreshToken)

		protected := auth.Group("")
		protected.Use(AuthMiddleware(svc))
		{
			protected.POST("/logout", h.Logout)
			protected.GET("/profile", h.Profile)
		}
	}

	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("successful signup", func(t *testing.T) {
		svc := &MockAuthService{
			SignupFunc: func(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
				return &dto.AuthResponse{
					User:        dto.UserResponse{ID: "user-1", Username: req.Username},
					AccessToken: "access",
					ExpiresIn:   900,
				}, nil
			},
		}
		router := setupAuthRouter(svc)

		w := doJSON(router, http.MethodPost, "/auth/signup", dto.SignupRequest{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  "Password1!",
			FirstName: "Alice",
			LastName:  "Smith",
		}, nil)

		if w.Code != http.StatusCreated {
			t.Errorf("expected status 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate user returns conflict", func(t *testing.T) {
		svc := &MockAuthService{
			SignupFunc: func(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
				return nil, domain.ErrUserExists
			},
		}
		router := setupAuthRouter(svc)

		w := doJSON(router, http.MethodPost, "/auth/signup", dto.SignupRequest{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  "Password1!",
			FirstName: "Alice",
			LastName:  "Smith",
		}, nil)

		if w.Code != http.StatusConflict {
			t.Errorf("expected status 409, got %d", w.Code)
		}
	})

	t.Run("short password rejected before the service is called", func(t *testing.T) {
		called := false
		svc := &MockAuthService{
			SignupFunc: func(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
				called = true
				return nil, nil
			},
		}
		router := setupAuthRouter(svc)

		w := doJSON(router, http.MethodPost, "/auth/signup", map[string]string{
			"username":   "alice",
			"email":      "alice@example.com",
			"password":   "short",
			"first_name": "Alice",
			"last_name":  "Smith",
		}, nil)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
		if called {
			t.Error("service should not be called for an invalid request")
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		svc := &MockAuthService{
			LoginFunc: func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
				return &dto.AuthResponse{
					User:         dto.UserResponse{ID: "user-1", Username: "alice"},
					AccessToken:  "access",
					RefreshToken: "refresh",
					ExpiresIn:    900,
				}, nil
			},
		}
		router := setupAuthRouter(svc)

		w := doJSON(router, http.MethodPost, "/auth/login", dto.LoginRequest{
			Username: "alice",
			Password: "Password1!",
		}, nil)

		if w.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", w.Code)
		}

		var resp struct {
			Success bool             `json:"success"`
			Data    dto.AuthResponse `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if !resp.Success {
			t.Error("expected success envelope")
		}
		if resp.Data.AccessToken != "access" {
			t.Errorf("expected access token in response, got %q", resp.Data.AccessToken)
		}
	})

	t.Run("bad credentials and inactive user get the same answer", func(t *testing.T) {
		for name, loginErr := range map[string]error{
			"bad credentials": domain.ErrInvalidCredentials,
			"inactive user":   domain.ErrUserInactive,
		} {
			svc := &MockAuthService{
				LoginFunc: func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
					return nil, loginErr
				},
			}
			router := setupAuthRouter(svc)

			w := doJSON(router, http.MethodPost, "/auth/login", dto.LoginRequest{
				Username: "alice",
				Password: "whatever",
			}, nil)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("%s: expected status 401, got %d", name, w.Code)
			}
			var resp struct {
				Error struct {
					Message string `json:"message"`
				} `json:"error"`
			}
			json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.Error.Message != "Invalid username or password" {
				t.Errorf("%s: unexpected message %q", name, resp.Error.Message)
			}
		}
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Run("rotation", func(t *testing.T) {
		svc := &MockAuthService{
			RefreshTokenFunc: func(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
				if refreshToken != "old-refresh" {
					t.Errorf("unexpected refresh token %q", refreshToken)
				}
				return &dto.TokenResponse{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil
			},
		}
		router := setupAuthRouter(svc)

		w := doJSON(router, http.MethodPost, "/auth/refresh", dto.RefreshTokenRequest{
			RefreshToken: "old-refresh",
		}, nil)

		if w.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", w.Code)
		}
	})

	t.Run("replayed token", func(t *testing.T) {
		svc := &MockAuthService{
			RefreshTokenFunc: func(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
				return nil, domain.ErrInvalidToken
			},
		}
		router := setupAuthRouter(svc)

		w := doJSON(router, http.MethodPost, "/auth/refresh", dto.RefreshTokenRequest{
			RefreshToken: "used-before",
		}, nil)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", w.Code)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	validator := &MockAuthService{
		ValidateTokenFunc: func(ctx context.Context, token string) (*domain.Claims, error) {
			if token == "good-token" {
				return &domain.Claims{UserID: "user-1", Username: "alice"}, nil
			}
			return nil, domain.ErrInvalidToken
		},
	}

	t.Run("missing header", func(t *testing.T) {
		router := setupAuthRouter(validator)
		w := doJSON(router, http.MethodGet, "/auth/profile", nil, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		router := setupAuthRouter(validator)
		w := doJSON(router, http.MethodGet, "/auth/profile", nil, map[string]string{
			"Authorization": "Token good-token",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		router := setupAuthRouter(validator)
		w := doJSON(router, http.MethodGet, "/auth/profile", nil, map[string]string{
			"Authorization": "Bearer revoked-token",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", w.Code)
		}
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		router := setupAuthRouter(validator)
		w := doJSON(router, http.MethodGet, "/auth/profile", nil, map[string]string{
			"Authorization": "Bearer good-token",
		})
		if w.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data dto.ProfileResponse `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp.Data.UserID != "user-1" || resp.Data.Username != "alice" {
			t.Errorf("unexpected principal: %+v", resp.Data)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	var gotUserID, gotToken string
	svc := &MockAuthService{
		ValidateTokenFunc: func(ctx context.Context, token string) (*domain.Claims, error) {
			return &domain.Claims{UserID: "user-1", Username: "alice"}, nil
		},
		LogoutFunc: func(ctx context.Context, userID, accessToken string) error {
			gotUserID = userID
			gotToken = accessToken
			return nil
		},
	}
	router := setupAuthRouter(svc)

	w := doJSON(router, http.MethodPost, "/auth/logout", nil, map[string]string{
		"Authorization": "Bearer good-token",
	})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if gotUserID != "user-1" {
		t.Errorf("expected logout for user-1, got %q", gotUserID)
	}
	if gotToken != "good-token" {
		t.Errorf("expected the presented token to be revoked, got %q", gotToken)
	}
}
