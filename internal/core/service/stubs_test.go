package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// memUserRepo is an in-memory UserRepository honoring soft deletion the
// same way the real store does: deleted rows never resolve.
type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: make(map[int64]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email && u.DeletedAt == nil {
			return nil, domain.ErrEmailInUse
		}
	}
	clone := *user
	clone.ID = r.nextID
	r.nextID++
	r.users[clone.ID] = &clone
	return &clone, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.DeletedAt == nil {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) UpdateProfile(ctx context.Context, id int64, update ports.ProfileUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, domain.ErrUserNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	if update.Avatar != nil {
		u.Avatar = *update.Avatar
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	if update.Company != nil {
		u.Company = *update.Company
	}
	if update.Position != nil {
		u.Position = *update.Position
	}
	if update.Location != nil {
		u.Location = *update.Location
	}
	u.UpdatedAt = time.Now().UTC()
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *memUserRepo) SoftDelete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	now := time.Now().UTC()
	u.DeletedAt = &now
	return nil
}

func (r *memUserRepo) List(_ context.Context, limit, offset int) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, u := range r.users {
		if u.DeletedAt == nil {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

func (r *memUserRepo) ListByRole(_ context.Context, role domain.Role, limit, offset int) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, u := range r.users {
		if u.DeletedAt == nil && u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

func (r *memUserRepo) SetPaymentStatus(_ context.Context, id int64, isPaid bool, paidUntil *time.Time) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, domain.ErrUserNotFound
	}
	u.IsPaid = isPaid
	u.PaidUntil = paidUntil
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) SetCheckoutRef(_ context.Context, id int64, ref string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	u.CheckoutRef = ref
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

type memJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*domain.Job
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *memJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *job
	r.jobs[clone.ID] = &clone
	return &clone, nil
}

func (r *memJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *memJobRepo) ListActive(_ context.Context, limit, offset int) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Job
	for _, j := range r.jobs {
		if j.Status == domain.JobActive {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PostedAt.After(out[j].PostedAt) })
	return page(out, limit, offset), nil
}

func (r *memJobRepo) ListAll(_ context.Context, limit, offset int) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Job
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PostedAt.After(out[j].PostedAt) })
	return page(out, limit, offset), nil
}

func (r *memJobRepo) Search(_ context.Context, params ports.JobSearch) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Job
	for _, j := range r.jobs {
		if j.Status != domain.JobActive {
			continue
		}
		if params.Title != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(params.Title)) {
			continue
		}
		if params.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(params.Location)) {
			continue
		}
		if !containsAll(j.Skills, params.Skills) {
			continue
		}
		out = append(out, *j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PostedAt.After(out[j].PostedAt) })
	return page(out, params.Limit, params.Offset), nil
}

func (r *memJobRepo) Update(_ context.Context, id string, update ports.JobUpdate) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if update.Title != nil {
		j.Title = *update.Title
	}
	if update.Description != nil {
		j.Description = *update.Description
	}
	if update.Salary != nil {
		j.Salary = *update.Salary
	}
	if update.Skills != nil {
		j.Skills = update.Skills
	}
	clone := *j
	return &clone, nil
}

func (r *memJobRepo) SetStatus(_ context.Context, id string, status domain.JobStatus) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	j.Status = status
	clone := *j
	return &clone, nil
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if strings.EqualFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type memJobSeekerRepo struct {
	mu      sync.Mutex
	seekers map[string]*domain.JobSeeker
}

func newMemJobSeekerRepo() *memJobSeekerRepo {
	return &memJobSeekerRepo{seekers: make(map[string]*domain.JobSeeker)}
}

func (r *memJobSeekerRepo) Create(_ context.Context, seeker *domain.JobSeeker) (*domain.JobSeeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *seeker
	r.seekers[clone.ID] = &clone
	return &clone, nil
}

func (r *memJobSeekerRepo) FindByID(_ context.Context, id string) (*domain.JobSeeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.seekers[id]
	if !ok {
		return nil, domain.ErrJobSeekerNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *memJobSeekerRepo) ListByConsultant(_ context.Context, consultantID int64, limit, offset int) ([]domain.JobSeeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.JobSeeker
	for _, s := range r.seekers {
		if s.ConsultantID == consultantID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddedAt.After(out[j].AddedAt) })
	return page(out, limit, offset), nil
}

func (r *memJobSeekerRepo) Search(_ context.Context, params ports.JobSeekerSearch) ([]domain.JobSeeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.JobSeeker
	for _, s := range r.seekers {
		if params.ConsultantID != nil && s.ConsultantID != *params.ConsultantID {
			continue
		}
		if params.Location != "" && !strings.Contains(strings.ToLower(s.Location), strings.ToLower(params.Location)) {
			continue
		}
		if params.MinExperience != nil && s.Experience < *params.MinExperience {
			continue
		}
		if !containsAll(s.Skills, params.Skills) {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddedAt.After(out[j].AddedAt) })
	return page(out, params.Limit, params.Offset), nil
}

func (r *memJobSeekerRepo) Update(_ context.Context, id string, update ports.JobSeekerUpdate) (*domain.JobSeeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.seekers[id]
	if !ok {
		return nil, domain.ErrJobSeekerNotFound
	}
	if update.Name != nil {
		s.Name = *update.Name
	}
	if update.Resume != nil {
		s.Resume = *update.Resume
	}
	if update.Experience != nil {
		s.Experience = *update.Experience
	}
	if update.Skills != nil {
		s.Skills = update.Skills
	}
	clone := *s
	return &clone, nil
}

func (r *memJobSeekerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seekers[id]; !ok {
		return domain.ErrJobSeekerNotFound
	}
	delete(r.seekers, id)
	return nil
}

type memActivityRepo struct {
	mu      sync.Mutex
	entries []domain.ActivityLog
	failing bool
}

func (r *memActivityRepo) Insert(_ context.Context, entry *domain.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return context.DeadlineExceeded
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memActivityRepo) ListRecent(_ context.Context, limit, offset int) ([]domain.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ActivityLog, len(r.entries))
	copy(out, r.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return page(out, limit, offset), nil
}

func (r *memActivityRepo) ListByActor(_ context.Context, actorID int64, limit, offset int) ([]domain.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ActivityLog
	for _, e := range r.entries {
		if e.ActorID != nil && *e.ActorID == actorID {
			out = append(out, e)
		}
	}
	return page(out, limit, offset), nil
}

func (r *memActivityRepo) ListByEntity(_ context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ActivityLog
	for _, e := range r.entries {
		if e.EntityType == entityType && e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return page(out, limit, offset), nil
}

// memOTPStore mimics the expiring store: entries written before expireAll
// stop resolving.
type memOTPStore struct {
	mu    sync.Mutex
	codes map[string]string
}

func newMemOTPStore() *memOTPStore {
	return &memOTPStore{codes: make(map[string]string)}
}

func (s *memOTPStore) Set(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = code
	return nil
}

func (s *memOTPStore) Get(_ context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes[email], nil
}

func (s *memOTPStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, email)
	return nil
}

func (s *memOTPStore) expireAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes = make(map[string]string)
}

type captureSender struct {
	mu   sync.Mutex
	sent []ports.Mail
	err  error
}

func (c *captureSender) Send(_ context.Context, mail ports.Mail) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, mail)
	return nil
}

func (c *captureSender) last() *ports.Mail {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.sent) == 0 {
		return nil
	}
	return &c.sent[len(c.sent)-1]
}

type stubPaymentProvider struct {
	mu       sync.Mutex
	created  []ports.CheckoutParams
	sessions map[string]*ports.CheckoutSession
}

func newStubPaymentProvider() *stubPaymentProvider {
	return &stubPaymentProvider{sessions: make(map[string]*ports.CheckoutSession)}
}

func (p *stubPaymentProvider) CreateCheckout(_ context.Context, params ports.CheckoutParams) (*ports.CheckoutSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, params)
	session := &ports.CheckoutSession{
		ID:            "cs_test_" + params.Metadata["plan"],
		PaymentStatus: "unpaid",
		CustomerEmail: params.Email,
		Metadata:      params.Metadata,
	}
	p.sessions[session.ID] = session
	return session, nil
}

func (p *stubPaymentProvider) GetCheckout(_ context.Context, sessionID string) (*ports.CheckoutSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	session, ok := p.sessions[sessionID]
	if !ok {
		return nil, domain.ErrCheckoutNotFound
	}
	clone := *session
	return &clone, nil
}

func (p *stubPaymentProvider) markPaid(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.sessions[sessionID]; ok {
		s.PaymentStatus = "paid"
	}
}
