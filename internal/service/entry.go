package service

import (
	"context"
	"errors"

	"github.com/journalapp/journal/internal/apperror"
	"github.com/journalapp/journal/internal/auth"
	"github.com/journalapp/journal/internal/metrics"
	"github.com/journalapp/journal/internal/model"
	"github.com/journalapp/journal/internal/repository"
)

// MsgEntryNotFound is returned for missing or foreign entries.
const MsgEntryNotFound = "entry not found"

// EntryStore persists journal entries. A nil owner disables owner filtering.
type EntryStore interface {
	ListEntries(ctx context.Context, owner *int64) ([]*model.Entry, error)
	GetEntry(ctx context.Context, id int64, owner *int64) (*model.Entry, error)
	CreateEntry(ctx context.Context, owner *int64, fields model.EntryFields) (*model.Entry, error)
	UpdateEntry(ctx context.Context, id int64, owner *int64, fields model.EntryFields) (*model.Entry, error)
	DeleteEntry(ctx context.Context, id int64, owner *int64) (*model.Entry, error)
}

// EntryService handles entry business logic.
type EntryService struct {
	store   EntryStore
	scoped  bool
	metrics metrics.Recorder
}

// NewEntryService creates a new EntryService. When scoped is true every
// operation requires an identity in the context and is limited to that user.
func NewEntryService(store EntryStore, scoped bool, recorder metrics.Recorder) *EntryService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &EntryService{
		store:   store,
		scoped:  scoped,
		metrics: recorder,
	}
}

// Scoped reports whether entries are limited to their owner.
func (s *EntryService) Scoped() bool {
	return s.scoped
}

// List returns all entries visible to the caller, ordered by id.
func (s *EntryService) List(ctx context.Context) ([]*model.Entry, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.ListEntries(ctx, owner)
	if err != nil {
		return nil, apperror.Unexpected(err)
	}
	if entries == nil {
		entries = []*model.Entry{}
	}
	return entries, nil
}

// Get returns a single entry.
func (s *EntryService) Get(ctx context.Context, id int64) (*model.Entry, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.store.GetEntry(ctx, id, owner)
	if err != nil {
		return nil, translateEntryErr(err)
	}
	return entry, nil
}

// Create validates and stores a new entry owned by the caller.
func (s *EntryService) Create(ctx context.Context, in EntryInput) (*model.Entry, error) {
	if err := ValidateEntryInput(in); err != nil {
		return nil, err
	}
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.store.CreateEntry(ctx, owner, in.Fields())
	if err != nil {
		return nil, apperror.Unexpected(err)
	}

	s.metrics.IncEntryCreated()
	return entry, nil
}

// Update replaces title, notes and photo URL of an existing entry.
func (s *EntryService) Update(ctx context.Context, id int64, in EntryInput) (*model.Entry, error) {
	if err := ValidateEntryInput(in); err != nil {
		return nil, err
	}
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.store.UpdateEntry(ctx, id, owner, in.Fields())
	if err != nil {
		return nil, translateEntryErr(err)
	}

	s.metrics.IncEntryUpdated()
	return entry, nil
}

// Delete removes an entry and returns the deleted row.
func (s *EntryService) Delete(ctx context.Context, id int64) (*model.Entry, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.store.DeleteEntry(ctx, id, owner)
	if err != nil {
		return nil, translateEntryErr(err)
	}

	s.metrics.IncEntryDeleted()
	return entry, nil
}

func (s *EntryService) owner(ctx context.Context) (*int64, error) {
	if !s.scoped {
		return nil, nil
	}
	owner := auth.UserIDFromContext(ctx)
	if owner == nil {
		return nil, apperror.Authentication("authentication required")
	}
	return owner, nil
}

func translateEntryErr(err error) error {
	if errors.Is(err, repository.ErrEntryNotFound) {
		return apperror.NotFound(MsgEntryNotFound)
	}
	return apperror.Unexpected(err)
}
