package cli

import (
	"context"
	"net/http"
	"sort"

	"github.com/journalapp/journal/internal/client"
	"github.com/journalapp/journal/internal/model"
)

// fakeAPI records calls and serves entries from memory.
type fakeAPI struct {
	token    string
	entries  map[int64]model.Entry
	nextID   int64
	calls    []string
	signInOK bool
	failWith error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{entries: make(map[int64]model.Entry), signInOK: true}
}

func (f *fakeAPI) SignUp(ctx context.Context, username, password string) (*client.User, error) {
	f.calls = append(f.calls, "sign-up")
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &client.User{UserID: 1, Username: username}, nil
}

func (f *fakeAPI) SignIn(ctx context.Context, username, password string) (*client.Session, error) {
	f.calls = append(f.calls, "sign-in")
	if !f.signInOK {
		return nil, &client.StatusError{StatusCode: http.StatusUnauthorized, Message: "invalid login"}
	}
	f.token = "tok-" + username
	return &client.Session{Token: f.token, User: model.Identity{UserID: 1, Username: username}}, nil
}

func (f *fakeAPI) SetToken(token string) { f.token = token }

func (f *fakeAPI) ListEntries(ctx context.Context) ([]model.Entry, error) {
	f.calls = append(f.calls, "list")
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]model.Entry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAPI) GetEntry(ctx context.Context, id int64) (*model.Entry, error) {
	f.calls = append(f.calls, "get")
	e, ok := f.entries[id]
	if !ok {
		return nil, &client.StatusError{StatusCode: http.StatusNotFound, Message: "entry not found"}
	}
	return &e, nil
}

func (f *fakeAPI) CreateEntry(ctx context.Context, in client.EntryInput) (*model.Entry, error) {
	f.calls = append(f.calls, "create")
	if in.Title == "" {
		return nil, &client.StatusError{StatusCode: http.StatusBadRequest, Message: "title is missing"}
	}
	f.nextID++
	e := model.Entry{ID: f.nextID, Title: in.Title, Notes: in.Notes, PhotoURL: in.PhotoURL}
	f.entries[e.ID] = e
	return &e, nil
}

func (f *fakeAPI) UpdateEntry(ctx context.Context, id int64, in client.EntryInput) (*model.Entry, error) {
	f.calls = append(f.calls, "update")
	if _, ok := f.entries[id]; !ok {
		return nil, &client.StatusError{StatusCode: http.StatusNotFound, Message: "entry not found"}
	}
	e := model.Entry{ID: id, Title: in.Title, Notes: in.Notes, PhotoURL: in.PhotoURL}
	f.entries[id] = e
	return &e, nil
}

func (f *fakeAPI) DeleteEntry(ctx context.Context, id int64) error {
	f.calls = append(f.calls, "delete")
	if _, ok := f.entries[id]; !ok {
		return &client.StatusError{StatusCode: http.StatusNotFound, Message: "entry not found"}
	}
	delete(f.entries, id)
	return nil
}
