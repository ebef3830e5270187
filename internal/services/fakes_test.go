package services

import (
	"context"
	"sync"

	"github.com/kamranshamim45/ai-job-portal/internal/models"
	"github.com/kamranshamim45/ai-job-portal/internal/recommend"
	"github.com/kamranshamim45/ai-job-portal/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository fakes. They mirror the store semantics the services
// rely on: sentinel errors on misses and uniqueness violations.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User

	jobRepo *fakeJobRepo
	appRepo *fakeAppRepo
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
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
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int64)
	for _, u := range f.users {
		counts[string(u.Role)]++
	}
	return counts, nil
}

// DeleteCascade mirrors the store semantics: the user's jobs go, the
// applications on those jobs go, and the user's own applications go.
func (f *fakeUserRepo) DeleteCascade(ctx context.Context, userID string) error {
	f.mu.Lock()
	if _, ok := f.users[userID]; !ok {
		f.mu.Unlock()
		return repositories.ErrUserNotFound
	}
	delete(f.users, userID)
	f.mu.Unlock()

	if f.jobRepo != nil {
		for _, jobID := range f.jobRepo.jobIDsByRecruiter(userID) {
			_ = f.jobRepo.DeleteCascade(ctx, jobID)
		}
	}
	if f.appRepo != nil {
		f.appRepo.deleteByApplicant(userID)
	}
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job

	appRepo *fakeAppRepo

	lastFilter repositories.JobFilter
	appCounts  map[string]int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:      make(map[string]*models.Job),
		appCounts: make(map[string]int64),
	}
}

func (f *fakeJobRepo) Create(_ context.Context, job *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	cp := *job
	f.jobs[job.ID] = &cp
	return nil
}

func (f *fakeJobRepo) FindByID(_ context.Context, id string) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobRepo) Update(_ context.Context, job *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	f.jobs[job.ID] = &cp
	return nil
}

func (f *fakeJobRepo) UpdateStatus(_ context.Context, id string, status models.JobStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return repositories.ErrJobNotFound
	}
	j.Status = status
	return nil
}

func (f *fakeJobRepo) Find(_ context.Context, filter repositories.JobFilter) ([]models.Job, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter

	allowed := make(map[models.JobStatus]bool, len(filter.Statuses))
	for _, s := range filter.Statuses {
		allowed[s] = true
	}

	var out []models.Job
	for _, j := range f.jobs {
		if len(allowed) > 0 && !allowed[j.Status] {
			continue
		}
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

func (f *fakeJobRepo) FindByRecruiter(_ context.Context, recruiterID string) ([]repositories.JobCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []repositories.JobCount
	for _, j := range f.jobs {
		if j.RecruiterID == recruiterID {
			out = append(out, repositories.JobCount{Job: *j, ApplicationCount: f.appCounts[j.ID]})
		}
	}
	return out, nil
}

func (f *fakeJobRepo) FindAll(_ context.Context) ([]models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Job, 0, len(f.jobs))
	for _, j := range f.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (f *fakeJobRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.jobs)), nil
}

func (f *fakeJobRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int64)
	for _, j := range f.jobs {
		counts[string(j.Status)]++
	}
	return counts, nil
}

// DeleteCascade removes the job and every application referencing it, like
// the real repository does in one transaction.
func (f *fakeJobRepo) DeleteCascade(_ context.Context, id string) error {
	f.mu.Lock()
	if _, ok := f.jobs[id]; !ok {
		f.mu.Unlock()
		return repositories.ErrJobNotFound
	}
	delete(f.jobs, id)
	delete(f.appCounts, id)
	f.mu.Unlock()

	if f.appRepo != nil {
		f.appRepo.deleteByJob(id)
	}
	return nil
}

func (f *fakeJobRepo) jobIDsByRecruiter(recruiterID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for id, j := range f.jobs {
		if j.RecruiterID == recruiterID {
			ids = append(ids, id)
		}
	}
	return ids
}

type fakeAppRepo struct {
	mu   sync.Mutex
	apps map[string]*models.Application

	jobRepo  *fakeJobRepo
	userRepo *fakeUserRepo
}

func newFakeAppRepo(jobRepo *fakeJobRepo, userRepo *fakeUserRepo) *fakeAppRepo {
	f := &fakeAppRepo{
		apps:     make(map[string]*models.Application),
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
	if jobRepo != nil {
		jobRepo.appRepo = f
	}
	if userRepo != nil {
		userRepo.jobRepo = jobRepo
		userRepo.appRepo = f
	}
	return f
}

func (f *fakeAppRepo) deleteByJob(jobID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, a := range f.apps {
		if a.JobID == jobID {
			delete(f.apps, id)
		}
	}
}

func (f *fakeAppRepo) deleteByApplicant(applicantID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, a := range f.apps {
		if a.ApplicantID == applicantID {
			delete(f.apps, id)
		}
	}
}

func (f *fakeAppRepo) Create(_ context.Context, app *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.apps {
		if a.ApplicantID == app.ApplicantID && a.JobID == app.JobID {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	cp := *app
	cp.Job = nil
	cp.Applicant = nil
	f.apps[app.ID] = &cp
	return nil
}

func (f *fakeAppRepo) FindByID(ctx context.Context, id string) (*models.Application, error) {
	f.mu.Lock()
	a, ok := f.apps[id]
	if !ok {
		f.mu.Unlock()
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	f.mu.Unlock()

	if f.jobRepo != nil {
		if job, err := f.jobRepo.FindByID(ctx, cp.JobID); err == nil {
			cp.Job = job
		}
	}
	if f.userRepo != nil {
		if user, err := f.userRepo.FindByID(ctx, cp.ApplicantID); err == nil {
			cp.Applicant = user
		}
	}
	return &cp, nil
}

func (f *fakeAppRepo) FindByPair(_ context.Context, applicantID, jobID string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.apps {
		if a.ApplicantID == applicantID && a.JobID == jobID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (f *fakeAppRepo) FindByApplicant(_ context.Context, applicantID string) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, a := range f.apps {
		if a.ApplicantID == applicantID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppRepo) FindByRecruiter(ctx context.Context, recruiterID string) ([]models.Application, error) {
	f.mu.Lock()
	ids := make([]string, 0, len(f.apps))
	for id := range f.apps {
		ids = append(ids, id)
	}
	f.mu.Unlock()

	var out []models.Application
	for _, id := range ids {
		a, err := f.FindByID(ctx, id)
		if err != nil {
			continue
		}
		if a.Job != nil && a.Job.RecruiterID == recruiterID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppRepo) FindAll(_ context.Context) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Application, 0, len(f.apps))
	for _, a := range f.apps {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppRepo) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

func (f *fakeAppRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.apps)), nil
}

// fakeRecommender returns a fixed ranking and records the skills it was
// asked about.
type fakeRecommender struct {
	mu     sync.Mutex
	skills []string
	recs   []recommend.Recommendation
	err    error
}

func (f *fakeRecommender) Recommend(_ context.Context, skills []string) ([]recommend.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.skills = skills
	if f.err != nil {
		return nil, f.err
	}
	return f.recs, nil
}
