package store_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"supportdesk-backend/apperr"
	"supportdesk-backend/models"
)

// In-memory gateways standing in for the remote data source.

type fakeCustomers struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Customer

	listErr   error
	insertErr error
	listGate  chan struct{} // when set, List blocks until closed

	deleteCalls int
}

func newFakeCustomers() *fakeCustomers {
	return &fakeCustomers{rows: map[uuid.UUID]models.Customer{}}
}

func (f *fakeCustomers) List(ctx context.Context) ([]models.Customer, error) {
	if f.listGate != nil {
		<-f.listGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Customer, 0, len(f.rows))
	for _, c := range f.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCustomers) Get(ctx context.Context, id uuid.UUID) (models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return models.Customer{}, apperr.New(apperr.NotFound, "customer not found")
	}
	return c, nil
}

func (f *fakeCustomers) Insert(ctx context.Context, c models.Customer) (models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return models.Customer{}, f.insertErr
	}
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	f.rows[c.ID] = c
	return c, nil
}

func (f *fakeCustomers) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return models.Customer{}, apperr.New(apperr.NotFound, "customer not found")
	}
	if v, ok := fields["name"]; ok {
		c.Name = v.(string)
	}
	if v, ok := fields["email"]; ok {
		c.Email = v.(string)
	}
	if v, ok := fields["phone"]; ok {
		c.Phone = v.(string)
	}
	if v, ok := fields["address"]; ok {
		c.Address = v.(string)
	}
	c.UpdatedAt = time.Now()
	f.rows[id] = c
	return c, nil
}

func (f *fakeCustomers) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if _, ok := f.rows[id]; !ok {
		return apperr.New(apperr.NotFound, "customer not found")
	}
	delete(f.rows, id)
	return nil
}

type fakeUsers struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.User

	insertErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{rows: map[uuid.UUID]models.User{}}
}

func (f *fakeUsers) List(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.rows))
	for _, u := range f.rows {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeUsers) Get(ctx context.Context, id uuid.UUID) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return models.User{}, apperr.New(apperr.NotFound, "attendant not found")
	}
	return u, nil
}

func (f *fakeUsers) Insert(ctx context.Context, u models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return models.User{}, f.insertErr
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.rows[u.ID] = u
	return u, nil
}

func (f *fakeUsers) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return models.User{}, apperr.New(apperr.NotFound, "attendant not found")
	}
	if v, ok := fields["name"]; ok {
		u.Name = v.(string)
	}
	if v, ok := fields["phone"]; ok {
		u.Phone = v.(string)
	}
	if v, ok := fields["role"]; ok {
		u.Role = v.(string)
	}
	u.UpdatedAt = time.Now()
	f.rows[id] = u
	return u, nil
}

func (f *fakeUsers) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return apperr.New(apperr.NotFound, "attendant not found")
	}
	delete(f.rows, id)
	return nil
}

type fakeIdentity struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Identity

	signUpErr error
	deleteErr error
	deleted   []uuid.UUID
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{rows: map[uuid.UUID]models.Identity{}}
}

func (f *fakeIdentity) SignUp(ctx context.Context, email, password string) (models.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.signUpErr != nil {
		return models.Identity{}, f.signUpErr
	}
	for _, id := range f.rows {
		if id.Email == email {
			return models.Identity{}, apperr.New(apperr.Conflict, "email already registered")
		}
	}
	identity := models.Identity{ID: uuid.New(), Email: email, CreatedAt: time.Now()}
	f.rows[identity.ID] = identity
	return identity, nil
}

func (f *fakeIdentity) DeleteUser(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.rows, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAttendances struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Attendance
	seq  int
}

func newFakeAttendances() *fakeAttendances {
	return &fakeAttendances{rows: map[uuid.UUID]models.Attendance{}}
}

func (f *fakeAttendances) List(ctx context.Context) ([]models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Attendance, 0, len(f.rows))
	for _, a := range f.rows {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeAttendances) Get(ctx context.Context, id uuid.UUID) (models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return models.Attendance{}, apperr.New(apperr.NotFound, "attendance not found")
	}
	return a, nil
}

func (f *fakeAttendances) Insert(ctx context.Context, a models.Attendance) (models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a.ID = uuid.New()
	f.seq++
	a.CreatedAt = time.Unix(int64(f.seq), 0)
	a.UpdatedAt = a.CreatedAt
	f.rows[a.ID] = a
	return a, nil
}

func (f *fakeAttendances) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return models.Attendance{}, apperr.New(apperr.NotFound, "attendance not found")
	}
	if v, ok := fields["title"]; ok {
		a.Title = v.(string)
	}
	if v, ok := fields["problem_description"]; ok {
		a.ProblemDescription = v.(string)
	}
	if v, ok := fields["solution"]; ok {
		a.Solution = v.(string)
	}
	if v, ok := fields["status"]; ok {
		a.Status = v.(string)
	}
	if v, ok := fields["priority"]; ok {
		a.Priority = v.(string)
	}
	if v, ok := fields["attendant_id"]; ok {
		a.AttendantID = v.(uuid.UUID)
	}
	if v, ok := fields["due_date"]; ok {
		d := v.(time.Time)
		a.DueDate = &d
	}
	a.UpdatedAt = time.Now()
	f.rows[id] = a
	return a, nil
}

func (f *fakeAttendances) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return apperr.New(apperr.NotFound, "attendance not found")
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeAttendances) CountByStatus(ctx context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := map[string]int64{}
	for _, a := range f.rows {
		counts[a.Status]++
	}
	return counts, nil
}

func (f *fakeAttendances) CountByPriority(ctx context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := map[string]int64{}
	for _, a := range f.rows {
		counts[a.Priority]++
	}
	return counts, nil
}

func (f *fakeAttendances) Recent(ctx context.Context, limit int) ([]models.Attendance, error) {
	all, _ := f.List(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

type fakeComments struct {
	mu   sync.Mutex
	rows []models.Comment
	seq  int

	insertErr error
}

func newFakeComments() *fakeComments {
	return &fakeComments{}
}

func (f *fakeComments) ListByAttendance(ctx context.Context, attendanceID uuid.UUID) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Comment
	for _, c := range f.rows {
		if c.AttendanceID == attendanceID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeComments) Insert(ctx context.Context, c models.Comment) (models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return models.Comment{}, f.insertErr
	}
	c.ID = uuid.New()
	f.seq++
	c.CreatedAt = time.Unix(int64(f.seq), 0)
	f.rows = append(f.rows, c)
	return c, nil
}
