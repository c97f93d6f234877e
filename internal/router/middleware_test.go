package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/modahaus-api/internal/authz"
	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/models"
	"github.com/modahaus-api/internal/repository"
	"github.com/modahaus-api/internal/service"
)

const testJWTSecret = "router-test-secret"

func newRouterTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createRouterTestUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func signTestToken(t *testing.T, user *models.User, issuedAt time.Time) string {
	t.Helper()
	claims := &service.UserJWTClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func decodeEnvelope(t *testing.T, body []byte) (int, string) {
	t.Helper()
	var resp struct {
		StatusCode int    `json:"status_code"`
		Msg        string `json:"msg"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return resp.StatusCode, resp.Msg
}

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://shop.modahaus.co.ke", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://shop.modahaus.co.ke", []string{"*"}, true)
	if got != "https://shop.modahaus.co.ke" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if strings.TrimSpace(w2.Header().Get(requestIDHeader)) == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

func TestUserJWTAuthMiddlewareMissingSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(UserJWTAuthMiddleware("", nil))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	code, _ := decodeEnvelope(t, w.Body.Bytes())
	if code != 401 {
		t.Fatalf("status_code want 401 got %d", code)
	}
}

func TestUserJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newRouterTestDB(t)
	userRepo := repository.NewUserRepository(db)
	user := createRouterTestUser(t, db, "amina@modahaus.local", constants.RoleBuyer)

	r := gin.New()
	r.Use(UserJWTAuthMiddleware(testJWTSecret, userRepo))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint("user_id"),
			"role":    c.GetString(userRoleContextKey),
		})
	})

	serve := func(authHeader string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		r.ServeHTTP(w, req)
		return w
	}

	// missing header
	w := serve("")
	if code, _ := decodeEnvelope(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("missing header want 401 got %d", code)
	}

	// malformed header
	w = serve("Token abc")
	if code, _ := decodeEnvelope(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("malformed header want 401 got %d", code)
	}

	// garbage token
	w = serve("Bearer not-a-token")
	if code, _ := decodeEnvelope(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("garbage token want 401 got %d", code)
	}

	// valid token resolves role from the database record
	token := signTestToken(t, user, time.Now())
	w = serve("Bearer " + token)
	var ok struct {
		UserID uint   `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &ok); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ok.UserID != user.ID || ok.Role != constants.RoleBuyer {
		t.Fatalf("context want user %d role buyer, got %+v", user.ID, ok)
	}

	// bumping the token version revokes previously issued tokens
	if err := db.Model(user).Update("token_version", gorm.Expr("token_version + 1")).Error; err != nil {
		t.Fatalf("bump token version: %v", err)
	}
	w = serve("Bearer " + token)
	if code, _ := decodeEnvelope(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("stale token version want 401 got %d", code)
	}

	// tokens issued before token_invalid_before are rejected
	user.TokenVersion++
	cutoff := time.Now().Add(time.Minute)
	if err := db.Model(user).Update("token_invalid_before", cutoff).Error; err != nil {
		t.Fatalf("set token_invalid_before: %v", err)
	}
	w = serve("Bearer " + signTestToken(t, user, time.Now().Add(-time.Hour)))
	if code, _ := decodeEnvelope(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("token issued before cutoff want 401 got %d", code)
	}

	// disabled users are rejected even with a fresh token
	if err := db.Model(user).Updates(map[string]interface{}{
		"status":               constants.UserStatusDisabled,
		"token_invalid_before": nil,
	}).Error; err != nil {
		t.Fatalf("disable user: %v", err)
	}
	w = serve("Bearer " + signTestToken(t, user, time.Now()))
	if code, _ := decodeEnvelope(t, w.Body.Bytes()); code != 401 {
		t.Fatalf("disabled user want 401 got %d", code)
	}
}

func TestOptionalUserJWTMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newRouterTestDB(t)
	userRepo := repository.NewUserRepository(db)
	user := createRouterTestUser(t, db, "amina@modahaus.local", constants.RoleBuyer)

	r := gin.New()
	r.Use(OptionalUserJWTMiddleware(testJWTSecret, userRepo))
	r.GET("/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id")})
	})

	// anonymous requests pass through without user context
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous status want 200 got %d", w.Code)
	}
	var anon struct {
		UserID uint `json:"user_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &anon); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if anon.UserID != 0 {
		t.Fatalf("anonymous request should carry no user, got %d", anon.UserID)
	}

	// invalid tokens degrade to anonymous instead of failing
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Authorization", "Bearer junk")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("invalid token status want 200 got %d", w.Code)
	}

	// valid tokens attach the user
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, user, time.Now()))
	r.ServeHTTP(w, req)
	var authed struct {
		UserID uint `json:"user_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &authed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if authed.UserID != user.ID {
		t.Fatalf("expected user %d in context, got %d", user.ID, authed.UserID)
	}
}

func TestRBACMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newRouterTestDB(t)
	authzService, err := authz.NewService(db)
	if err != nil {
		t.Fatalf("new authz service: %v", err)
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap roles: %v", err)
	}

	newServer := func(role string) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if role != "" {
				c.Set(userRoleContextKey, role)
			}
			c.Next()
		})
		r.Use(RBACMiddleware(authzService))
		r.GET("/api/v1/orders", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
		r.GET("/api/v1/admin/orders", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
		return r
	}

	serve := func(r *gin.Engine, path string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		code, _ := decodeEnvelope(t, w.Body.Bytes())
		return code
	}

	buyer := newServer(constants.RoleBuyer)
	if code := serve(buyer, "/api/v1/admin/orders"); code != 403 {
		t.Fatalf("buyer on admin route want 403 got %d", code)
	}

	admin := newServer(constants.RoleAdmin)
	w := httptest.NewRecorder()
	admin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil))
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("admin on admin route should pass, got %s", w.Body.String())
	}

	// no role in context means the request never authenticated
	anonymous := newServer("")
	if code := serve(anonymous, "/api/v1/orders"); code != 401 {
		t.Fatalf("missing role want 401 got %d", code)
	}
}
