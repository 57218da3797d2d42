package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"agridash/internal/models"
	"agridash/internal/repository"
	"agridash/pkg/mailer"

	"github.com/google/uuid"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUsers) Create(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUsers) find(match func(*models.User) bool) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.ID == id })
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.Email == email })
}

func (f *fakeUsers) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.Username == identifier || u.Email == identifier })
}

func (f *fakeUsers) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.ResetToken != nil && *u.ResetToken == token })
}

func (f *fakeUsers) Exists(ctx context.Context, column, value string, exclude uuid.UUID) (bool, error) {
	_, err := f.find(func(u *models.User) bool {
		if u.ID == exclude {
			return false
		}
		switch column {
		case "username":
			return u.Username == value
		case "email":
			return u.Email == value
		case "phone":
			return u.Phone == value
		}
		return false
	})
	return err == nil, nil
}

func (f *fakeUsers) UpdateProfile(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUsers) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiry time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.ResetToken = &token
	u.TokenExpiry = &expiry
	return nil
}

func (f *fakeUsers) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = hash
	u.ResetToken = nil
	u.TokenExpiry = nil
	return nil
}

type fakeCrops struct {
	mu    sync.Mutex
	crops []*models.Crop
}

func (f *fakeCrops) Create(ctx context.Context, c *models.Crop) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	f.crops = append(f.crops, &cp)
	return nil
}

func (f *fakeCrops) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Crop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Crop
	for _, c := range f.crops {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].PlantingDate, out[j].PlantingDate
		if a == nil || b == nil {
			return a != nil
		}
		return a.After(*b)
	})
	return out, nil
}

func (f *fakeCrops) Delete(ctx context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.crops {
		if c.ID == id && c.UserID == userID {
			f.crops = append(f.crops[:i], f.crops[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeSoil struct {
	mu    sync.Mutex
	tests []*models.SoilTest
}

func (f *fakeSoil) Create(ctx context.Context, t *models.SoilTest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *t
	f.tests = append(f.tests, &cp)
	return nil
}

func (f *fakeSoil) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.SoilTest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.SoilTest
	for _, t := range f.tests {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].TestDate.Equal(out[j].TestDate) {
			return out[i].TestDate.After(out[j].TestDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type captureMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (m *captureMailer) Send(ctx context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}
