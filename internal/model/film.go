package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned when a film cannot be constructed from the given values
var ErrInvalidArgument = errors.New("invalid argument")

// Film represents one catalog entry. Fields are not changed after construction
type Film struct {
	// Title is the unique key of the film inside a collection
	title string

	// Genre is optional, empty means unset
	genre string

	// Year is optional, 0 means unset
	year uint

	// Director is optional, empty means unset
	director string
}

type FilmOption func(f *Film)

func WithGenre(genre string) FilmOption {
	return func(f *Film) {
		f.genre = genre
	}
}

func WithYear(year uint) FilmOption {
	return func(f *Film) {
		f.year = year
	}
}

func WithDirector(director string) FilmOption {
	return func(f *Film) {
		f.director = director
	}
}

// NewFilm creates a film record. Title must not be empty
func NewFilm(title string, opts ...FilmOption) (*Film, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: film title cannot be empty", ErrInvalidArgument)
	}
	f := &Film{title: title}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Film) Title() string {
	return f.title
}

func (f *Film) Genre() string {
	return f.genre
}

func (f *Film) Year() uint {
	return f.year
}

func (f *Film) Director() string {
	return f.director
}

// YearString returns decimal year or empty string if the year is unset
func (f *Film) YearString() string {
	if f.year == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(f.year), 10)
}

// String returns human-readable description, unset fields are omitted
func (f *Film) String() string {
	details := []string{"Title: " + f.title}
	if f.genre != "" {
		details = append(details, "Genre: "+f.genre)
	}
	if f.year != 0 {
		details = append(details, "Year: "+f.YearString())
	}
	if f.director != "" {
		details = append(details, "Director: "+f.director)
	}
	return strings.Join(details, ", ")
}

const unsetPlaceholder = "None"

// GoString returns debug representation with all fields
func (f *Film) GoString() string {
	year := unsetPlaceholder
	if f.year != 0 {
		year = f.YearString()
	}
	return fmt.Sprintf("Film(title='%s', genre='%s', year=%s, director='%s')",
		f.title, placeholder(f.genre), year, placeholder(f.director))
}

func placeholder(s string) string {
	if s == "" {
		return unsetPlaceholder
	}
	return s
}
