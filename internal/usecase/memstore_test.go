package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/candidate"
	"jobboard/internal/domain/chat"
	"jobboard/internal/domain/company"
	"jobboard/internal/domain/follow"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/notification"
	"jobboard/internal/domain/review"
	"jobboard/internal/domain/user"
	"jobboard/internal/policy"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

// memStore backs every in-memory repository used by the workflow tests.
type memStore struct {
	mu            sync.Mutex
	users         map[uuid.UUID]user.User
	companies     map[uuid.UUID]company.Company
	profiles      map[uuid.UUID]candidate.Profile
	industries    map[uuid.UUID]job.Industry
	jobs          map[uuid.UUID]job.Job
	applications  map[uuid.UUID]application.Application
	follows       map[uuid.UUID]follow.Follow
	reviews       []review.Review
	notifications []notification.Notification
	rooms         []chat.Room
	messages      []chat.Message

	jobListCalls int
}

func newMemStore() *memStore {
	return &memStore{
		users:        map[uuid.UUID]user.User{},
		companies:    map[uuid.UUID]company.Company{},
		profiles:     map[uuid.UUID]candidate.Profile{},
		industries:   map[uuid.UUID]job.Industry{},
		jobs:         map[uuid.UUID]job.Job{},
		applications: map[uuid.UUID]application.Application{},
		follows:      map[uuid.UUID]follow.Follow{},
	}
}

func (s *memStore) notificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notifications)
}

func (s *memStore) jobCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

type memUsers struct{ s *memStore }

func (r memUsers) CreateUser(_ context.Context, u user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return user.ErrDuplicate
		}
	}
	r.s.users[u.ID] = u
	return nil
}

func (r memUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r memUsers) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (r memUsers) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r memUsers) UpdateUser(_ context.Context, u user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	r.s.users[u.ID] = u
	return nil
}

type memCompanies struct{ s *memStore }

func (r memCompanies) Create(_ context.Context, c company.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.companies {
		if existing.UserID == c.UserID || existing.TaxCode == c.TaxCode {
			return repository.ErrDuplicate
		}
	}
	r.s.companies[c.ID] = c
	return nil
}

func (r memCompanies) GetByID(_ context.Context, id uuid.UUID) (company.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok || !c.Active {
		return company.Company{}, repository.ErrNotFound
	}
	return c, nil
}

func (r memCompanies) GetByUserID(_ context.Context, userID uuid.UUID) (company.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.companies {
		if c.UserID == userID {
			return c, nil
		}
	}
	return company.Company{}, repository.ErrNotFound
}

func (r memCompanies) List(_ context.Context, limit, offset int) ([]company.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []company.Company{}
	for _, c := range r.s.companies {
		if c.Active {
			out = append(out, c)
		}
	}
	return page(out, limit, offset), nil
}

func (r memCompanies) Update(_ context.Context, c company.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[c.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.companies[c.ID] = c
	return nil
}

func (r memCompanies) UpdateStatus(_ context.Context, id uuid.UUID, status company.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Status = status
	r.s.companies[id] = c
	return nil
}

type memProfiles struct{ s *memStore }

func (r memProfiles) GetByUserID(_ context.Context, userID uuid.UUID) (candidate.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[userID]
	if !ok {
		return candidate.Profile{}, repository.ErrNotFound
	}
	return p, nil
}

func (r memProfiles) Create(_ context.Context, p candidate.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.profiles[p.UserID]; ok {
		return repository.ErrDuplicate
	}
	r.s.profiles[p.UserID] = p
	return nil
}

func (r memProfiles) Update(_ context.Context, p candidate.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.profiles[p.UserID]; !ok {
		return repository.ErrNotFound
	}
	r.s.profiles[p.UserID] = p
	return nil
}

type memIndustries struct{ s *memStore }

func (r memIndustries) List(_ context.Context) ([]job.Industry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []job.Industry{}
	for _, in := range r.s.industries {
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memIndustries) GetByID(_ context.Context, id uuid.UUID) (job.Industry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	in, ok := r.s.industries[id]
	if !ok || !in.Active {
		return job.Industry{}, repository.ErrNotFound
	}
	return in, nil
}

type memJobs struct{ s *memStore }

func (r memJobs) Create(_ context.Context, j job.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.industries[j.IndustryID]; !ok {
		return repository.ErrReference
	}
	r.s.jobs[j.ID] = j
	return nil
}

func (r memJobs) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	j, ok := r.s.jobs[id]
	if !ok {
		return job.Job{}, repository.ErrNotFound
	}
	return j, nil
}

func (r memJobs) GetActiveDetail(_ context.Context, id uuid.UUID) (repository.JobDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	j, ok := r.s.jobs[id]
	if !ok || !j.Active {
		return repository.JobDetail{}, repository.ErrNotFound
	}
	return repository.JobDetail{Job: j, Company: r.s.companies[j.CompanyID], Industry: r.s.industries[j.IndustryID]}, nil
}

func (r memJobs) List(_ context.Context, f repository.JobFilter) ([]repository.JobDetail, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.jobListCalls++
	out := []repository.JobDetail{}
	for _, j := range r.s.jobs {
		if !j.Active {
			continue
		}
		if f.CompanyID != uuid.Nil && j.CompanyID != f.CompanyID {
			continue
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(f.Query)) {
			continue
		}
		out = append(out, repository.JobDetail{Job: j, Company: r.s.companies[j.CompanyID], Industry: r.s.industries[j.IndustryID]})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Job.CreatedAt.After(out[b].Job.CreatedAt) })
	return page(out, f.Limit, f.Offset), len(out), nil
}

type memApplications struct{ s *memStore }

func (r memApplications) Create(_ context.Context, a application.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.applications {
		if existing.JobID == a.JobID && existing.CandidateID == a.CandidateID {
			return repository.ErrDuplicate
		}
	}
	r.s.applications[a.ID] = a
	return nil
}

func (r memApplications) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.applications[id]
	if !ok {
		return application.Application{}, repository.ErrNotFound
	}
	a.JobCompanyID = r.s.jobs[a.JobID].CompanyID
	return a, nil
}

func (r memApplications) Exists(_ context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.applications {
		if a.JobID == jobID && a.CandidateID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (r memApplications) filter(keep func(application.Application) bool) []application.Application {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []application.Application{}
	for _, a := range r.s.applications {
		a.JobCompanyID = r.s.jobs[a.JobID].CompanyID
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (r memApplications) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	return r.filter(func(a application.Application) bool { return a.CandidateID == candidateID }), nil
}

func (r memApplications) ListByCompany(_ context.Context, companyID uuid.UUID) ([]application.Application, error) {
	return r.filter(func(a application.Application) bool { return a.JobCompanyID == companyID }), nil
}

func (r memApplications) ListByJob(_ context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return r.filter(func(a application.Application) bool { return a.JobID == jobID }), nil
}

func (r memApplications) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.applications[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.Status = status
	r.s.applications[id] = a
	return nil
}

func (r memApplications) UpdateContent(_ context.Context, id uuid.UUID, coverLetter, cvCustomURL string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.applications[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.CoverLetter, a.CVCustomURL = coverLetter, cvCustomURL
	r.s.applications[id] = a
	return nil
}

func (r memApplications) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.applications[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.applications, id)
	return nil
}

func (r memApplications) HasAcceptedApplication(_ context.Context, candidateID, companyID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.applications {
		if a.CandidateID == candidateID && a.Status == application.StatusAccepted && r.s.jobs[a.JobID].CompanyID == companyID {
			return true, nil
		}
	}
	return false, nil
}

type memFollows struct{ s *memStore }

func (r memFollows) Create(_ context.Context, f follow.Follow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.follows {
		if existing.CandidateID == f.CandidateID && existing.CompanyID == f.CompanyID {
			return repository.ErrDuplicate
		}
	}
	r.s.follows[f.ID] = f
	return nil
}

func (r memFollows) GetByID(_ context.Context, id uuid.UUID) (follow.Follow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.follows[id]
	if !ok {
		return follow.Follow{}, repository.ErrNotFound
	}
	return f, nil
}

func (r memFollows) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.follows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.follows, id)
	return nil
}

func (r memFollows) Exists(_ context.Context, candidateID, companyID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.follows {
		if f.CandidateID == candidateID && f.CompanyID == companyID && f.Active {
			return true, nil
		}
	}
	return false, nil
}

func (r memFollows) ListFollowers(_ context.Context, companyID uuid.UUID) ([]user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []user.User{}
	for _, f := range r.s.follows {
		if f.CompanyID == companyID && f.Active {
			out = append(out, r.s.users[f.CandidateID])
		}
	}
	return out, nil
}

func (r memFollows) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]repository.FollowedCompany, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []repository.FollowedCompany{}
	for _, f := range r.s.follows {
		if f.CandidateID == candidateID && f.Active {
			out = append(out, repository.FollowedCompany{Follow: f, Company: r.s.companies[f.CompanyID]})
		}
	}
	return out, nil
}

type memReviews struct{ s *memStore }

func (r memReviews) Create(_ context.Context, rv review.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reviews = append(r.s.reviews, rv)
	return nil
}

func (r memReviews) GetByID(_ context.Context, id uuid.UUID) (review.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rv := range r.s.reviews {
		if rv.ID == id {
			return rv, nil
		}
	}
	return review.Review{}, repository.ErrNotFound
}

func (r memReviews) ListTopLevel(_ context.Context, companyID *uuid.UUID, limit, offset int) ([]review.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []review.Review{}
	for i := len(r.s.reviews) - 1; i >= 0; i-- {
		rv := r.s.reviews[i]
		if rv.IsReply() || (companyID != nil && rv.CompanyID != *companyID) {
			continue
		}
		out = append(out, rv)
	}
	return page(out, limit, offset), nil
}

func (r memReviews) ListReplies(_ context.Context, parentIDs []uuid.UUID) (map[uuid.UUID][]review.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	want := map[uuid.UUID]bool{}
	for _, id := range parentIDs {
		want[id] = true
	}
	out := map[uuid.UUID][]review.Review{}
	for _, rv := range r.s.reviews {
		if rv.ParentID != nil && want[*rv.ParentID] {
			out[*rv.ParentID] = append(out[*rv.ParentID], rv)
		}
	}
	return out, nil
}

type memNotifications struct {
	s   *memStore
	err error
}

func (r memNotifications) CreateBulk(_ context.Context, items []notification.Notification) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.notifications = append(r.s.notifications, items...)
	return int64(len(items)), nil
}

func (r memNotifications) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []notification.Notification{}
	for i := len(r.s.notifications) - 1; i >= 0; i-- {
		if r.s.notifications[i].UserID == userID {
			out = append(out, r.s.notifications[i])
		}
	}
	return page(out, limit, offset), nil
}

func (r memNotifications) CountUnread(_ context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, item := range r.s.notifications {
		if item.UserID == userID && !item.IsRead {
			n++
		}
	}
	return n, nil
}

func (r memNotifications) GetByID(_ context.Context, id uuid.UUID) (notification.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, item := range r.s.notifications {
		if item.ID == id {
			return item, nil
		}
	}
	return notification.Notification{}, repository.ErrNotFound
}

func (r memNotifications) MarkRead(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.notifications {
		if r.s.notifications[i].ID == id {
			r.s.notifications[i].IsRead = true
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r memNotifications) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for i := range r.s.notifications {
		if r.s.notifications[i].UserID == userID && !r.s.notifications[i].IsRead {
			r.s.notifications[i].IsRead = true
			n++
		}
	}
	return n, nil
}

type memChats struct{ s *memStore }

func sameJob(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (r memChats) FindRoom(_ context.Context, employerID, candidateID uuid.UUID, jobID *uuid.UUID) (chat.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, room := range r.s.rooms {
		if room.EmployerID == employerID && room.CandidateID == candidateID && sameJob(room.JobID, jobID) {
			return room, nil
		}
	}
	return chat.Room{}, repository.ErrNotFound
}

func (r memChats) CreateRoom(ctx context.Context, room chat.Room) error {
	if _, err := r.FindRoom(ctx, room.EmployerID, room.CandidateID, room.JobID); err == nil {
		return repository.ErrDuplicate
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.rooms = append(r.s.rooms, room)
	return nil
}

func (r memChats) GetRoom(_ context.Context, id uuid.UUID) (chat.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, room := range r.s.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return chat.Room{}, repository.ErrNotFound
}

func (r memChats) ListRoomsByUser(_ context.Context, userID uuid.UUID) ([]chat.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []chat.Room{}
	for _, room := range r.s.rooms {
		if room.HasParticipant(userID) {
			out = append(out, room)
		}
	}
	return out, nil
}

func (r memChats) ListMessages(_ context.Context, roomID uuid.UUID, limit, offset int) ([]chat.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []chat.Message{}
	for _, m := range r.s.messages {
		if m.RoomID == roomID {
			out = append(out, m)
		}
	}
	return page(out, limit, offset), nil
}

func (r memChats) CreateMessage(_ context.Context, m chat.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.messages = append(r.s.messages, m)
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// memCache is a SearchCache over a map. Patterns support a trailing '*'.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *memCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		return false, nil
	}
	c.entries[key] = []byte(value)
	return true, nil
}

// fixture wires the in-memory store to the default gate.
type fixture struct {
	store *memStore
	gate  *policy.Gate
	ctx   context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := newMemStore()
	return &fixture{store: s, gate: policy.NewDefaultGate(memApplications{s}), ctx: context.Background()}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func (f *fixture) addUser(role user.Role) user.User {
	u := user.User{
		ID:        uuid.New(),
		Username:  "u" + uuid.NewString()[:8],
		Email:     uuid.NewString()[:8] + "@example.com",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		IsActive:  true,
	}
	f.store.mu.Lock()
	f.store.users[u.ID] = u
	f.store.mu.Unlock()
	return u
}

func (f *fixture) addEmployer(status company.Status) policy.Actor {
	u := f.addUser(user.RoleEmployer)
	c := company.Company{
		ID:      uuid.New(),
		UserID:  u.ID,
		Name:    "Acme " + u.Username,
		TaxCode: uuid.NewString(),
		Address: "Main street 1",
		Status:  status,
		Active:  true,
	}
	f.store.mu.Lock()
	f.store.companies[c.ID] = c
	f.store.mu.Unlock()
	return policy.Actor{User: u, Company: &c}
}

func (f *fixture) addCandidate() policy.Actor {
	u := f.addUser(user.RoleCandidate)
	p := candidate.Profile{ID: uuid.New(), UserID: u.ID, Active: true}
	f.store.mu.Lock()
	f.store.profiles[u.ID] = p
	f.store.mu.Unlock()
	return policy.Actor{User: u, Candidate: &p}
}

func (f *fixture) addIndustry(name string) job.Industry {
	in := job.Industry{ID: uuid.New(), Name: name, Active: true}
	f.store.mu.Lock()
	f.store.industries[in.ID] = in
	f.store.mu.Unlock()
	return in
}

func (f *fixture) addJob(employer policy.Actor) job.Job {
	in := f.addIndustry("Software")
	j := job.Job{
		ID:         uuid.New(),
		CompanyID:  employer.CompanyID(),
		IndustryID: in.ID,
		Title:      "Backend Engineer",
		JobType:    job.TypeFullTime,
		SalaryType: job.SalaryMonthly,
		Location:   "Jakarta",
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}
	f.store.mu.Lock()
	f.store.jobs[j.ID] = j
	f.store.mu.Unlock()
	return j
}

func (f *fixture) follow(candidateActor policy.Actor, companyID uuid.UUID) follow.Follow {
	fl := follow.Follow{ID: uuid.New(), CandidateID: candidateActor.ID(), CompanyID: companyID, Active: true}
	f.store.mu.Lock()
	f.store.follows[fl.ID] = fl
	f.store.mu.Unlock()
	return fl
}

func (f *fixture) applications() *Applications {
	return NewApplicationUsecase(memApplications{f.store}, memJobs{f.store}, f.gate)
}

func asValidation(t *testing.T, err error) *ValidationError {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ValidationError should match ErrInvalidInput")
	}
	return ve
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
