package handler

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/journalapp/journal/internal/model"
	"github.com/journalapp/journal/internal/repository"
)

// memUsers and memEntries mirror the repository contract in memory.

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]*model.User
}

func newMemUsers() *memUsers {
	return &memUsers{byName: make(map[string]*model.User)}
}

func (m *memUsers) CreateUser(ctx context.Context, username, hashedPassword string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byName[username]; ok {
		return nil, repository.ErrUsernameExists
	}
	m.nextID++
	u := &model.User{ID: m.nextID, Username: username, HashedPassword: hashedPassword, CreatedAt: time.Now().UTC()}
	m.byName[username] = u
	return u, nil
}

func (m *memUsers) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byName[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

type memEntries struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Entry
}

func newMemEntries() *memEntries {
	return &memEntries{rows: make(map[int64]model.Entry)}
}

func (m *memEntries) find(id int64, owner *int64) (model.Entry, bool) {
	e, ok := m.rows[id]
	if !ok {
		return model.Entry{}, false
	}
	if owner != nil && !e.OwnedBy(*owner) {
		return model.Entry{}, false
	}
	return e, true
}

func (m *memEntries) ListEntries(ctx context.Context, owner *int64) ([]*model.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*model.Entry{}
	for id := range m.rows {
		if e, ok := m.find(id, owner); ok {
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memEntries) GetEntry(ctx context.Context, id int64, owner *int64) (*model.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.find(id, owner)
	if !ok {
		return nil, repository.ErrEntryNotFound
	}
	return &e, nil
}

func (m *memEntries) CreateEntry(ctx context.Context, owner *int64, f model.EntryFields) (*model.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	e := model.Entry{ID: m.nextID, Title: f.Title, Notes: f.Notes, PhotoURL: f.PhotoURL}
	if owner != nil {
		uid := *owner
		e.UserID = &uid
	}
	m.rows[e.ID] = e
	return &e, nil
}

func (m *memEntries) UpdateEntry(ctx context.Context, id int64, owner *int64, f model.EntryFields) (*model.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.find(id, owner)
	if !ok {
		return nil, repository.ErrEntryNotFound
	}
	e.Title, e.Notes, e.PhotoURL = f.Title, f.Notes, f.PhotoURL
	m.rows[id] = e
	return &e, nil
}

func (m *memEntries) DeleteEntry(ctx context.Context, id int64, owner *int64) (*model.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.find(id, owner)
	if !ok {
		return nil, repository.ErrEntryNotFound
	}
	delete(m.rows, id)
	return &e, nil
}
