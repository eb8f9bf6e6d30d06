// Package cli implements the journal terminal client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/journalapp/journal/internal/client"
	"github.com/journalapp/journal/internal/model"
)

// API is the subset of the journal client the views use.
type API interface {
	SignUp(ctx context.Context, username, password string) (*client.User, error)
	SignIn(ctx context.Context, username, password string) (*client.Session, error)
	SetToken(token string)
	ListEntries(ctx context.Context) ([]model.Entry, error)
	GetEntry(ctx context.Context, id int64) (*model.Entry, error)
	CreateEntry(ctx context.Context, in client.EntryInput) (*model.Entry, error)
	UpdateEntry(ctx context.Context, id int64, in client.EntryInput) (*model.Entry, error)
	DeleteEntry(ctx context.Context, id int64) error
}

// App runs one command per invocation.
type App struct {
	api      API
	sessions *SessionStore
	in       *bufio.Reader
	out      io.Writer
	stdinFD  int
}

// NewApp creates an App reading from in and writing to out. stdinFD is
// used to detect a terminal for password input.
func NewApp(api API, sessions *SessionStore, in io.Reader, out io.Writer, stdinFD int) *App {
	return &App{
		api:      api,
		sessions: sessions,
		in:       bufio.NewReader(in),
		out:      out,
		stdinFD:  stdinFD,
	}
}

const usage = `Usage: journal <command> [args]

Commands:
  sign-up        create an account
  sign-in        sign in and show your entries
  sign-out       forget the saved session
  list           show all entries
  show <id>      show one entry
  new            create an entry
  edit <id>      edit an entry
  delete <id>    delete an entry (-y skips confirmation)
`

var errUsage = errors.New("usage")

// Run executes the command in args and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return 2
	}

	err := a.dispatch(ctx, args[0], args[1:])
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprint(a.out, usage)
		return 2
	default:
		renderError(a.out, err)
		return 1
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "sign-up":
		return a.signUp(ctx)
	case "sign-in":
		return a.signIn(ctx)
	case "sign-out":
		return a.signOut()
	case "list":
		return a.list(ctx)
	case "show":
		id, err := entryIDArg(args)
		if err != nil {
			return err
		}
		return a.show(ctx, id)
	case "new":
		return a.create(ctx)
	case "edit":
		id, err := entryIDArg(args)
		if err != nil {
			return err
		}
		return a.edit(ctx, id)
	case "delete":
		fs := flag.NewFlagSet("delete", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		yes := fs.Bool("y", false, "skip confirmation")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		id, err := entryIDArg(fs.Args())
		if err != nil {
			return err
		}
		return a.delete(ctx, id, *yes)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return errUsage
	}
}

func entryIDArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, errors.New("entryId needs to be a number")
	}
	return id, nil
}

func (a *App) readCredentials() (string, string, error) {
	username, err := prompt(a.in, a.out, "Username")
	if err != nil {
		return "", "", err
	}
	password, err := promptPassword(a.in, a.out, a.stdinFD)
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

func (a *App) signUp(ctx context.Context) error {
	username, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	user, err := a.api.SignUp(ctx, username, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account %q created. Run `journal sign-in` to continue.\n", user.Username)
	return nil
}

// signIn stores the session and re-renders the list for the new user.
func (a *App) signIn(ctx context.Context) error {
	username, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	session, err := a.api.SignIn(ctx, username, password)
	if err != nil {
		return err
	}
	if err := a.sessions.Save(Session{Token: session.Token, Username: session.User.Username}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s.\n", session.User.Username)
	return a.list(ctx)
}

func (a *App) signOut() error {
	a.api.SetToken("")
	if err := a.sessions.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *App) list(ctx context.Context) error {
	entries, err := a.api.ListEntries(ctx)
	if err != nil {
		return err
	}
	renderEntries(a.out, entries)
	return nil
}

func (a *App) show(ctx context.Context, id int64) error {
	entry, err := a.api.GetEntry(ctx, id)
	if err != nil {
		return err
	}
	renderEntry(a.out, entry)
	return nil
}

func (a *App) create(ctx context.Context) error {
	in, err := a.entryForm(client.EntryInput{})
	if err != nil {
		return err
	}
	entry, err := a.api.CreateEntry(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created entry %d.\n", entry.ID)
	return a.list(ctx)
}

func (a *App) edit(ctx context.Context, id int64) error {
	current, err := a.api.GetEntry(ctx, id)
	if err != nil {
		return err
	}
	in, err := a.entryForm(client.EntryInput{Title: current.Title, Notes: current.Notes, PhotoURL: current.PhotoURL})
	if err != nil {
		return err
	}
	if _, err := a.api.UpdateEntry(ctx, id, in); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated entry %d.\n", id)
	return a.list(ctx)
}

func (a *App) delete(ctx context.Context, id int64, skipConfirm bool) error {
	if !skipConfirm {
		ok, err := confirm(a.in, a.out, fmt.Sprintf("Delete entry %d?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
	}
	if err := a.api.DeleteEntry(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted entry %d.\n", id)
	return a.list(ctx)
}

// entryForm prompts for every field; empty input keeps the value in
// current, so a blank create form submits empty fields and the server
// reports which one is missing.
func (a *App) entryForm(current client.EntryInput) (client.EntryInput, error) {
	var err error
	if current.Title, err = promptDefault(a.in, a.out, "Title", current.Title); err != nil {
		return current, err
	}
	if current.Notes, err = promptDefault(a.in, a.out, "Notes", current.Notes); err != nil {
		return current, err
	}
	if current.PhotoURL, err = promptDefault(a.in, a.out, "Photo URL", current.PhotoURL); err != nil {
		return current, err
	}
	return current, nil
}
