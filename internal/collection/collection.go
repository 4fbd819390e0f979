package collection

import (
	"container/list"
	"errors"
	"fmt"
	"io"

	"github.com/RacoonMediaServer/rms-films/internal/model"
	"github.com/google/uuid"
	"go-micro.dev/v4/logger"
)

var (
	// ErrAlreadyExists means a film with the same title is already stored
	ErrAlreadyExists = errors.New("film already exists")

	// ErrNotFound means there is no film with requested title
	ErrNotFound = errors.New("film not found")
)

// Collection is a title-keyed, insertion-ordered store of films.
// It is not safe for concurrent use
type Collection struct {
	id    string
	films map[string]*list.Element
	order *list.List
	out   io.Writer
}

type Option func(c *Collection)

// WithOutput sets the writer which receives console diagnostics and reports
func WithOutput(w io.Writer) Option {
	return func(c *Collection) {
		c.out = w
	}
}

// SetOutput replaces the writer which receives diagnostics and reports
func (c *Collection) SetOutput(w io.Writer) {
	c.out = w
}

// New creates an empty collection
func New(opts ...Option) *Collection {
	c := &Collection{
		id:    uuid.NewString(),
		films: map[string]*list.Element{},
		order: list.New(),
		out:   io.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collection) log() logger.Logger {
	return logger.Fields(map[string]interface{}{"collection": c.id})
}

// Add stores the film under its title. Existing entries are never overwritten
func (c *Collection) Add(f *model.Film) error {
	if f == nil {
		return fmt.Errorf("%w: film is nil", model.ErrInvalidArgument)
	}
	title := f.Title()
	if _, ok := c.films[title]; ok {
		fmt.Fprintf(c.out, "Error: Film with title '%s' already exists in the collection.\n", title)
		c.log().Logf(logger.WarnLevel, "Add '%s' rejected: duplicate title", title)
		return fmt.Errorf("add '%s': %w", title, ErrAlreadyExists)
	}

	c.films[title] = c.order.PushBack(f)
	fmt.Fprintf(c.out, "Film '%s' added to the collection.\n", title)
	c.log().Logf(logger.DebugLevel, "Film '%s' added, size = %d", title, len(c.films))
	return nil
}

// Remove deletes the film with exactly matching title
func (c *Collection) Remove(title string) error {
	e, ok := c.films[title]
	if !ok {
		fmt.Fprintf(c.out, "Error: Film with title '%s' not found in the collection.\n", title)
		c.log().Logf(logger.WarnLevel, "Remove '%s' failed: not found", title)
		return fmt.Errorf("remove '%s': %w", title, ErrNotFound)
	}

	c.order.Remove(e)
	delete(c.films, title)
	fmt.Fprintf(c.out, "Film '%s' removed from the collection.\n", title)
	c.log().Logf(logger.DebugLevel, "Film '%s' removed, size = %d", title, len(c.films))
	return nil
}

// FindByTitle returns the stored film with exactly matching title
func (c *Collection) FindByTitle(title string) (*model.Film, bool) {
	e, ok := c.films[title]
	if !ok {
		return nil, false
	}
	return e.Value.(*model.Film), true
}

func (c *Collection) Size() int {
	return len(c.films)
}

// Titles returns stored titles in insertion order
func (c *Collection) Titles() []string {
	titles := make([]string, 0, c.order.Len())
	for e := c.order.Front(); e != nil; e = e.Next() {
		titles = append(titles, e.Value.(*model.Film).Title())
	}
	return titles
}

// List writes numbered report of all films to the output
func (c *Collection) List() {
	if len(c.films) == 0 {
		fmt.Fprintln(c.out, "The film collection is empty.")
		return
	}

	fmt.Fprintln(c.out, "\n--- Film Collection ---")
	i := 0
	for f := range c.All() {
		i++
		fmt.Fprintf(c.out, "%d. %s\n", i, f)
	}
	fmt.Fprintln(c.out, "----------------------")
}
