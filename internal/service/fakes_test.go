package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/journalapp/journal/internal/model"
	"github.com/journalapp/journal/internal/repository"
)

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*model.User
	err    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, username, hashedPassword string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.users[username]; ok {
		return nil, repository.ErrUsernameExists
	}
	f.nextID++
	u := &model.User{ID: f.nextID, Username: username, HashedPassword: hashedPassword, CreatedAt: time.Now().UTC()}
	f.users[username] = u
	return u, nil
}

func (f *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

// plainHasher stores passwords with a prefix so tests stay fast.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "plain$" + password, nil }

func (plainHasher) Verify(encodedHash, password string) (bool, error) {
	if len(encodedHash) < 6 || encodedHash[:6] != "plain$" {
		return false, errors.New("malformed hash")
	}
	return encodedHash[6:] == password, nil
}

type fakeSigner struct{}

func (fakeSigner) Sign(id model.Identity) (string, error) {
	return "token-for-" + id.Username, nil
}

type fakeEntryStore struct {
	mu      sync.Mutex
	nextID  int64
	entries map[int64]*model.Entry
	err     error
}

func newFakeEntryStore() *fakeEntryStore {
	return &fakeEntryStore{entries: make(map[int64]*model.Entry)}
}

func visible(e *model.Entry, owner *int64) bool {
	if owner == nil {
		return true
	}
	return e.OwnedBy(*owner)
}

func (f *fakeEntryStore) ListEntries(ctx context.Context, owner *int64) ([]*model.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.Entry
	for _, e := range f.entries {
		if visible(e, owner) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEntryStore) GetEntry(ctx context.Context, id int64, owner *int64) (*model.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.entries[id]
	if !ok || !visible(e, owner) {
		return nil, repository.ErrEntryNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEntryStore) CreateEntry(ctx context.Context, owner *int64, fields model.EntryFields) (*model.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	e := &model.Entry{ID: f.nextID, Title: fields.Title, Notes: fields.Notes, PhotoURL: fields.PhotoURL}
	if owner != nil {
		uid := *owner
		e.UserID = &uid
	}
	f.entries[e.ID] = e
	cp := *e
	return &cp, nil
}

func (f *fakeEntryStore) UpdateEntry(ctx context.Context, id int64, owner *int64, fields model.EntryFields) (*model.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.entries[id]
	if !ok || !visible(e, owner) {
		return nil, repository.ErrEntryNotFound
	}
	e.Title, e.Notes, e.PhotoURL = fields.Title, fields.Notes, fields.PhotoURL
	cp := *e
	return &cp, nil
}

func (f *fakeEntryStore) DeleteEntry(ctx context.Context, id int64, owner *int64) (*model.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.entries[id]
	if !ok || !visible(e, owner) {
		return nil, repository.ErrEntryNotFound
	}
	delete(f.entries, id)
	return e, nil
}
