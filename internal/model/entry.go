package model

// Entry is a single journal record.
// UserID is nil for entries created while ownership scoping is disabled.
type Entry struct {
	ID       int64  `json:"entryId"`
	UserID   *int64 `json:"userId,omitempty"`
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photoUrl"`
}

// EntryFields holds the client-editable fields of an entry.
type EntryFields struct {
	Title    string
	Notes    string
	PhotoURL string
}

// Fields returns the editable fields of the entry.
func (e *Entry) Fields() EntryFields {
	return EntryFields{Title: e.Title, Notes: e.Notes, PhotoURL: e.PhotoURL}
}

// OwnedBy reports whether the entry belongs to the given user.
// Unowned entries belong to nobody.
func (e *Entry) OwnedBy(userID int64) bool {
	return e.UserID != nil && *e.UserID == userID
}
