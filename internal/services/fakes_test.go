package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"fixmate_backend/internal/models"
	"fixmate_backend/internal/repositories"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	mu       sync.Mutex
	users    map[string]*models.User
	profiles map[string]*models.ProviderProfile // keyed by user id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    map[string]*models.User{},
		profiles: map[string]*models.ProviderProfile{},
	}
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return f.withProfile(u), nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return f.withProfile(u), nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByResetToken(token string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if token != "" && u.ResetToken == token {
			return f.withProfile(u), nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByVerifyToken(token string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if token != "" && u.EmailVerifyToken == token {
			return f.withProfile(u), nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	clone := *user
	clone.ProviderProfile = nil
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) CreateProviderProfile(profile *models.ProviderProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	clone := *profile
	f.profiles[profile.UserID] = &clone
	return nil
}

func (f *fakeUserRepo) UpdateProviderProfile(profile *models.ProviderProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[profile.UserID]; !ok {
		return repositories.ErrUserNotFound
	}
	clone := *profile
	f.profiles[profile.UserID] = &clone
	return nil
}

func (f *fakeUserRepo) FindProviders() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		if u.Role == models.UserRoleProvider && u.IsActive {
			out = append(out, *f.withProfile(u))
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindPendingProviders() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		p := f.profiles[u.ID]
		if u.Role == models.UserRoleProvider && p != nil && p.VerificationStatus == models.VerificationPending {
			out = append(out, *f.withProfile(u))
		}
	}
	return out, nil
}

// withProfile returns a copy of the user with its profile attached, the way
// the gorm implementation preloads it.
func (f *fakeUserRepo) withProfile(u *models.User) *models.User {
	clone := *u
	if p, ok := f.profiles[u.ID]; ok {
		pc := *p
		clone.ProviderProfile = &pc
	}
	return &clone
}

// fakeJobRepo is an in-memory JobRepository for service tests.
type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
	apps []models.JobApplication
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*models.Job{}}
}

func (f *fakeJobRepo) Create(job *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	clone := *job
	f.jobs[job.ID] = &clone
	return nil
}

func (f *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	clone := *j
	for _, a := range f.apps {
		if a.JobID == id {
			clone.Applications = append(clone.Applications, a)
		}
	}
	return &clone, nil
}

func (f *fakeJobRepo) FindActive() ([]models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Job
	for _, j := range f.jobs {
		if j.IsActive {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) FindByClient(clientID string) ([]models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Job
	for _, j := range f.jobs {
		if j.ClientID == clientID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) Update(job *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	clone := *job
	clone.Applications = nil
	f.jobs[job.ID] = &clone
	return nil
}

func (f *fakeJobRepo) CreateApplication(app *models.JobApplication) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	f.apps = append(f.apps, *app)
	return nil
}

func (f *fakeJobRepo) HasApplication(jobID, workerID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.apps {
		if a.JobID == jobID && a.WorkerID == workerID {
			return true, nil
		}
	}
	return false, nil
}

// fakeEmail records sends instead of dialing SMTP.
type fakeEmail struct {
	mu            sync.Mutex
	verifications []string
	resets        []string
}

func (f *fakeEmail) SendVerification(to, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifications = append(f.verifications, to)
	return nil
}

func (f *fakeEmail) SendPasswordReset(to, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets = append(f.resets, to)
	return nil
}

// fixedGeocoder answers every lookup with one coordinate pair.
type fixedGeocoder struct {
	lat, lng float64
}

func (g fixedGeocoder) Forward(_ context.Context, _ string) (float64, float64, error) {
	return g.lat, g.lng, nil
}
