package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixmate_backend/internal/appErrors"
	"fixmate_backend/internal/models"
	"fixmate_backend/internal/services/dto"
)

type jobFixture struct {
	svc      JobService
	jobRepo  *fakeJobRepo
	userRepo *fakeUserRepo
	client   *models.User
	provider *models.User
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	jobRepo := newFakeJobRepo()
	userRepo := newFakeUserRepo()

	client := &models.User{Email: "client@example.com", Role: models.UserRoleCustomer, FullName: "Client", IsActive: true}
	provider := &models.User{Email: "pro@example.com", Role: models.UserRoleProvider, FullName: "Pro", IsActive: true}
	require.NoError(t, userRepo.Create(client))
	require.NoError(t, userRepo.Create(provider))

	return &jobFixture{
		svc:      NewJobService(jobRepo, userRepo),
		jobRepo:  jobRepo,
		userRepo: userRepo,
		client:   client,
		provider: provider,
	}
}

func createJobReq() *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:       "Fix kitchen sink",
		Description: "The sink leaks under the counter",
		Category:    "plumbing",
		Address:     "12 Main St",
		City:        "Springfield",
		Budget:      dto.Number(150),
	}
}

func (f *jobFixture) createJob(t *testing.T) *models.Job {
	t.Helper()
	job, err := f.svc.Create(f.client.ID, createJobReq())
	require.NoError(t, err)
	return job
}

func TestCreateJobDefaults(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)

	job := f.createJob(t)
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.True(t, job.IsActive)
	assert.Equal(t, 150.0, job.Budget)
	assert.Equal(t, 150.0, job.EscrowAmount)
	assert.False(t, job.EscrowFunded)
	assert.Nil(t, job.EscrowReleasedAt)
	assert.Equal(t, models.PaymentTypeFixed, job.PaymentType)
	assert.Equal(t, models.UrgencyMedium, job.Urgency)
}

func TestCreateJobRejectsNonPositiveBudget(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)

	req := createJobReq()
	req.Budget = dto.Number(0)
	_, err := f.svc.Create(f.client.ID, req)
	assert.Error(t, err)

	req.Budget = dto.Number(-5)
	_, err = f.svc.Create(f.client.ID, req)
	assert.Error(t, err)
}

func TestCreateJobRequiresContent(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)

	req := createJobReq()
	req.Title = "   "
	_, err := f.svc.Create(f.client.ID, req)
	require.Error(t, err)
	var appErr *appErrors.AppError
	require.True(t, appErrors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeValidationFailed, appErr.Code)
}

func TestListMineOnlyReturnsCallersJobs(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)

	f.createJob(t)
	other := &models.User{Email: "other@example.com", Role: models.UserRoleCustomer, FullName: "Other", IsActive: true}
	require.NoError(t, f.userRepo.Create(other))
	_, err := f.svc.Create(other.ID, createJobReq())
	require.NoError(t, err)

	mine, err := f.svc.ListMine(f.client.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, f.client.ID, mine[0].ClientID)
}

func TestUpdateJobWhitelist(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)
	job := f.createJob(t)

	title := "Fix bathroom sink"
	budget := dto.Number(200)
	updated, err := f.svc.Update(job.ID, f.client.ID, &dto.UpdateJobRequest{Title: &title, Budget: &budget})
	require.NoError(t, err)
	assert.Equal(t, "Fix bathroom sink", updated.Title)
	assert.Equal(t, 200.0, updated.Budget)
	// Untouched fields survive.
	assert.Equal(t, "The sink leaks under the counter", updated.Description)
}

func TestUpdateJobRejectsNonOwner(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)
	job := f.createJob(t)

	title := "hijacked"
	_, err := f.svc.Update(job.ID, f.provider.ID, &dto.UpdateJobRequest{Title: &title})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestUpdateJobRejectsTerminalStates(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)
	job := f.createJob(t)

	_, err := f.svc.Cancel(job.ID, f.client.ID)
	require.NoError(t, err)

	title := "too late"
	_, err = f.svc.Update(job.ID, f.client.ID, &dto.UpdateJobRequest{Title: &title})
	require.Error(t, err)
	var appErr *appErrors.AppError
	require.True(t, appErrors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeInvalidState, appErr.Code)
}

func TestLifecycleAssignFundStartComplete(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)
	job := f.createJob(t)

	job, err := f.svc.Assign(job.ID, f.client.ID, f.provider.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusAssigned, job.Status)
	require.NotNil(t, job.WorkerID)
	assert.Equal(t, f.provider.ID, *job.WorkerID)

	job, err = f.svc.Fund(job.ID, f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusEscrowFunded, job.Status)
	assert.True(t, job.EscrowFunded)

	job, err = f.svc.Start(job.ID, f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusInProgress, job.Status)

	job, err = f.svc.Complete(job.ID, f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, job.Status)
	assert.False(t, job.IsActive)
	assert.NotNil(t, job.EscrowReleasedAt)
}

func TestCompleteAllowedFromEscrowFunded(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)
	job := f.createJob(t)

	_, err := f.svc.Assign(job.ID, f.client.ID, f.provider.ID)
	require.NoError(t, err)
	_, err = f.svc.Fund(job.ID, f.client.ID)
	require.NoError(t, err)

	done, err := f.svc.Complete(job.ID, f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, done.Status)
}

func TestCompleteRejectedFromOpen(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)
	job := f.createJob(t)

	_, err := f.svc.Complete(job.ID, f.client.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot complete a job with status: open")
}

func TestAssignRequiresProvider(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)
	job := f.createJob(t)

	other := &models.User{Email: "cust2@example.com", Role: models.UserRoleCustomer, FullName: "Cust", IsActive: true}
	require.NoError(t, f.userRepo.Create(other))

	_, err := f.svc.Assign(job.ID, f.client.ID, other.ID)
	assert.Error(t, err)

	_, err = f.svc.Assign(job.ID, f.client.ID, "missing-id")
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}

func TestCancelFromAnyNonTerminalState(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)

	// open -> cancelled
	job := f.createJob(t)
	cancelled, err := f.svc.Cancel(job.ID, f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCancelled, cancelled.Status)
	assert.False(t, cancelled.IsActive)

	// cancelled is terminal
	_, err = f.svc.Cancel(job.ID, f.client.ID)
	assert.Error(t, err)

	// in_progress -> cancelled
	job2 := f.createJob(t)
	_, err = f.svc.Assign(job2.ID, f.client.ID, f.provider.ID)
	require.NoError(t, err)
	_, err = f.svc.Start(job2.ID, f.client.ID)
	require.NoError(t, err)
	_, err = f.svc.Cancel(job2.ID, f.client.ID)
	assert.NoError(t, err)
}

func TestApplyRules(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)
	job := f.createJob(t)

	// Owner cannot bid on their own job.
	_, err := f.svc.Apply(job.ID, f.client.ID, &dto.ApplyRequest{ProposedPrice: dto.Number(120)})
	assert.Error(t, err)

	got, err := f.svc.Apply(job.ID, f.provider.ID, &dto.ApplyRequest{ProposedPrice: dto.Number(120), Message: "Can start Monday"})
	require.NoError(t, err)
	require.Len(t, got.Applications, 1)
	assert.Equal(t, f.provider.ID, got.Applications[0].WorkerID)

	// Duplicate application rejected.
	_, err = f.svc.Apply(job.ID, f.provider.ID, &dto.ApplyRequest{ProposedPrice: dto.Number(110)})
	assert.Error(t, err)

	// Applications only while the job is open.
	_, err = f.svc.Assign(job.ID, f.client.ID, f.provider.ID)
	require.NoError(t, err)
	later := &models.User{Email: "late@example.com", Role: models.UserRoleProvider, FullName: "Late", IsActive: true}
	require.NoError(t, f.userRepo.Create(later))
	_, err = f.svc.Apply(job.ID, later.ID, &dto.ApplyRequest{ProposedPrice: dto.Number(100)})
	assert.Error(t, err)
}

func TestReviewOnlyAfterCompletionAndOnce(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)
	job := f.createJob(t)

	_, err := f.svc.Review(job.ID, f.client.ID, &dto.ReviewRequest{Rating: 5})
	assert.Error(t, err)

	_, err = f.svc.Assign(job.ID, f.client.ID, f.provider.ID)
	require.NoError(t, err)
	_, err = f.svc.Start(job.ID, f.client.ID)
	require.NoError(t, err)
	_, err = f.svc.Complete(job.ID, f.client.ID)
	require.NoError(t, err)

	reviewed, err := f.svc.Review(job.ID, f.client.ID, &dto.ReviewRequest{Rating: 4, Comment: "Solid work"})
	require.NoError(t, err)
	require.NotNil(t, reviewed.Review())
	assert.Equal(t, 4, *reviewed.Review().Rating)

	_, err = f.svc.Review(job.ID, f.client.ID, &dto.ReviewRequest{Rating: 1})
	assert.Error(t, err)
}

func TestJobNotFound(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)

	_, err := f.svc.Complete("missing", f.client.ID)
	assert.ErrorIs(t, err, appErrors.ErrJobNotFound)
}
