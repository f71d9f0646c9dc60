package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixmate_backend/internal/config"
	"fixmate_backend/internal/handlers"
	"fixmate_backend/internal/models"
	"fixmate_backend/internal/ratelimit"
	"fixmate_backend/internal/repositories"
	"fixmate_backend/internal/services"
	"fixmate_backend/internal/services/dto"
	"fixmate_backend/internal/storage"
	"fixmate_backend/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.LoadConfig()
	config.AppConfig.JWT.Secret = "test-secret"
}

// The stubs below satisfy the service interfaces with empty results so the
// route table can be exercised without a database.

type stubAuthSvc struct{}

func (stubAuthSvc) Signup(*dto.SignupRequest) (*dto.AuthResult, error) { return nil, nil }
func (stubAuthSvc) Login(*dto.LoginRequest) (*dto.AuthResult, error)  { return nil, nil }
func (stubAuthSvc) VerifyEmail(string) error                          { return nil }
func (stubAuthSvc) RequestPasswordReset(string) error                 { return nil }
func (stubAuthSvc) ResetPassword(string, string) error                { return nil }
func (stubAuthSvc) ChangePassword(string, string, string) error       { return nil }

type stubUserSvc struct{}

func (stubUserSvc) GetProfile(string) (*models.User, error) { return nil, nil }
func (stubUserSvc) UpdateProfile(string, *dto.UpdateProfileRequest) (*models.User, error) {
	return nil, nil
}
func (stubUserSvc) ListProviders() ([]models.User, error) { return []models.User{}, nil }
func (stubUserSvc) SaveOnboarding(string, *dto.OnboardingRequest) (*models.User, error) {
	return nil, nil
}

type stubJobSvc struct{}

func (stubJobSvc) Create(string, *dto.CreateJobRequest) (*models.Job, error) { return nil, nil }
func (stubJobSvc) ListAll() ([]models.Job, error)                            { return []models.Job{}, nil }
func (stubJobSvc) ListMine(string) ([]models.Job, error)                     { return []models.Job{}, nil }
func (stubJobSvc) Update(string, string, *dto.UpdateJobRequest) (*models.Job, error) {
	return nil, nil
}
func (stubJobSvc) Complete(string, string) (*models.Job, error)       { return nil, nil }
func (stubJobSvc) Cancel(string, string) (*models.Job, error)         { return nil, nil }
func (stubJobSvc) Assign(string, string, string) (*models.Job, error) { return nil, nil }
func (stubJobSvc) Fund(string, string) (*models.Job, error)           { return nil, nil }
func (stubJobSvc) Start(string, string) (*models.Job, error)          { return nil, nil }
func (stubJobSvc) Apply(string, string, *dto.ApplyRequest) (*models.Job, error) {
	return nil, nil
}
func (stubJobSvc) Review(string, string, *dto.ReviewRequest) (*models.Job, error) {
	return nil, nil
}

type stubVerifySvc struct{}

func (stubVerifySvc) ListPending() ([]models.User, error) { return []models.User{}, nil }
func (stubVerifySvc) Decide(string, string, string) (*services.DecisionResult, error) {
	return nil, nil
}

type noStorage struct{}

func (noStorage) Save(context.Context, string, io.Reader, string) error { return nil }
func (noStorage) Delete(context.Context, string) error                  { return nil }
func (noStorage) URL(path string) string                                { return path }

type emptyUserRepo struct{}

func (emptyUserRepo) FindByID(string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (emptyUserRepo) FindByEmail(string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (emptyUserRepo) FindByResetToken(string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (emptyUserRepo) FindByVerifyToken(string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (emptyUserRepo) Create(*models.User) error                           { return nil }
func (emptyUserRepo) Update(*models.User) error                           { return nil }
func (emptyUserRepo) CreateProviderProfile(*models.ProviderProfile) error { return nil }
func (emptyUserRepo) UpdateProviderProfile(*models.ProviderProfile) error { return nil }
func (emptyUserRepo) FindProviders() ([]models.User, error)               { return nil, nil }
func (emptyUserRepo) FindPendingProviders() ([]models.User, error)        { return nil, nil }

var _ storage.Storage = noStorage{}
var _ repositories.UserRepository = emptyUserRepo{}

func newTestRouter() *gin.Engine {
	reg := handlers.NewRegistry(
		validator.New(),
		stubAuthSvc{},
		stubUserSvc{},
		stubJobSvc{},
		stubVerifySvc{},
		noStorage{},
		ratelimit.NewLimiter(nil),
	)
	r := gin.New()
	RegisterRoutes(r, reg, emptyUserRepo{}, ratelimit.NewLimiter(nil), config.AppConfig)
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestJobBoardIsPublic(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	w := do(r, http.MethodGet, "/jobs")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestProviderListingIsPublic(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	w := do(r, http.MethodGet, "/users/providers")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestSessionRoutesRejectAnonymous(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/jobs/my"},
		{http.MethodPost, "/jobs/add"},
		{http.MethodGet, "/users/profile"},
		{http.MethodPatch, "/users/onboarding"},
		{http.MethodGet, "/admins/providers/pending"},
		{http.MethodPost, "/upload/image"},
	} {
		w := do(r, tc.method, tc.path)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

// Partial-update endpoints answer to PATCH; a 401 proves the route exists
// behind the session gate, a 404 would mean the verb is wrong.
func TestPartialUpdateRoutesUsePatch(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	for _, path := range []string{
		"/users/change-password",
		"/users/onboarding",
		"/jobs/j1/end",
		"/admins/providers/u1/verify",
	} {
		w := do(r, http.MethodPatch, path)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "PATCH %s", path)

		w = do(r, http.MethodPost, path)
		assert.Equal(t, http.StatusNotFound, w.Code, "POST %s", path)
	}
}
