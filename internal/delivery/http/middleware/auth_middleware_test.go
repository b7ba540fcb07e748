package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storerate/internal/domain/entity"
	domainerrors "storerate/internal/domain/errors"
	"storerate/internal/domain/repository"
	"storerate/internal/domain/service"
	mockRepo "storerate/internal/mocks/repository"
	mockSvc "storerate/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	userRepo   *mockRepo.MockUserRepository
	echo       *echo.Echo
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	e := echo.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, userRepo),
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
		echo:       e,
	}
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "ok"})
}

func (fx authMiddlewareFixtures) serve(req *http.Request, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	if err := handler(c); err != nil {
		fx.echo.HTTPErrorHandler(err, c)
	}

	return rec
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := fx.serve(req, fx.middleware.Authenticate(okHandler))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Access denied. No token provided."}`, rec.Body.String())
}

func TestAuthenticate_NotBearer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := fx.serve(req, fx.middleware.Authenticate(okHandler))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token."}`, rec.Body.String())
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().ValidateToken("garbage").Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := fx.serve(req, fx.middleware.Authenticate(okHandler))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token."}`, rec.Body.String())
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: 42, Role: entity.RoleUser}, nil)
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, uint64(42)).
		Return(nil, repository.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := fx.serve(req, fx.middleware.Authenticate(okHandler))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token."}`, rec.Body.String())
}

func TestAuthenticate_AttachesUser(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{ID: 42, Email: "chris@example.com", Role: entity.RoleUser}
	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: 42, Role: entity.RoleUser}, nil)
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, uint64(42)).
		Return(user, nil)

	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		got, ok := CurrentUser(c)
		require.True(t, ok)
		assert.Equal(t, user, got)

		return okHandler(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := fx.serve(req, handler)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_Forbidden(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	handler := fx.middleware.RequireRole(entity.RoleAdmin)(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.Set(contextKeyUser, &entity.User{ID: 1, Role: entity.RoleUser})

	err := handler(c)
	require.Error(t, err)
	fx.echo.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Access denied. Insufficient permissions."}`, rec.Body.String())
}

func TestRequireRole_Allowed(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	handler := fx.middleware.RequireRole(entity.RoleAdmin)(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.Set(contextKeyUser, &entity.User{ID: 1, Role: entity.RoleAdmin})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_NoUserAttached(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	handler := fx.middleware.RequireRole(entity.RoleAdmin)(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := fx.serve(req, handler)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestErrorMiddleware_ValidationErrors(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodPost, "/api/register", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := domainerrors.NewValidationError([]string{
		"Name must be between 20 and 60 characters",
		"Must be a valid email",
	})
	fx.echo.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["Name must be between 20 and 60 characters","Must be a valid email"]}`, rec.Body.String())
}

func TestErrorMiddleware_UnknownRoute(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/api/no-such-route", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.echo.HTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, rec.Body.String())
}

func TestErrorMiddleware_ServerErrorLogsDetails(t *testing.T) {
	var logBuf bytes.Buffer
	em := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logBuf, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/stores", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	em.HandleHTTPError(domainerrors.NewDatabaseExecuteError(assert.AnError, "insert store failed"), c)

	// The body stays generic while the detail reaches the log.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	assert.Contains(t, logBuf.String(), "insert store failed")
	assert.Contains(t, logBuf.String(), "DATABASE_EXECUTE_FAILED")
}

func TestErrorMiddleware_ClientErrorIsNotLogged(t *testing.T) {
	var logBuf bytes.Buffer
	em := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logBuf, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/register", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	em.HandleHTTPError(domainerrors.ErrDuplicateEmail, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, logBuf.String())
}

func TestErrorMiddleware_UnexpectedErrorIsOpaque(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.echo.HTTPErrorHandler(assert.AnError, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
