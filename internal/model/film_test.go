package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilm(t *testing.T) {
	_, err := NewFilm("")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	f, err := NewFilm("Inception", WithGenre("Sci-Fi"), WithYear(2010), WithDirector("Christopher Nolan"))
	require.NoError(t, err)
	assert.Equal(t, "Inception", f.Title())
	assert.Equal(t, "Sci-Fi", f.Genre())
	assert.Equal(t, uint(2010), f.Year())
	assert.Equal(t, "Christopher Nolan", f.Director())

	for _, title := range []string{"A", " ", "Стражи Галактики"} {
		_, err = NewFilm(title)
		assert.NoError(t, err, "title %q", title)
	}
}

func TestFilmString(t *testing.T) {
	type testCase struct {
		opts   []FilmOption
		output string
	}

	testCases := []testCase{
		{
			output: "Title: Heat",
		},
		{
			opts:   []FilmOption{WithGenre("Crime")},
			output: "Title: Heat, Genre: Crime",
		},
		{
			opts:   []FilmOption{WithYear(1995), WithDirector("Michael Mann")},
			output: "Title: Heat, Year: 1995, Director: Michael Mann",
		},
		{
			opts:   []FilmOption{WithGenre("Crime"), WithYear(1995), WithDirector("Michael Mann")},
			output: "Title: Heat, Genre: Crime, Year: 1995, Director: Michael Mann",
		},
	}

	for i, tc := range testCases {
		f, err := NewFilm("Heat", tc.opts...)
		require.NoError(t, err)
		assert.Equal(t, tc.output, f.String(), "Test %d failed", i)
	}
}

func TestFilmGoString(t *testing.T) {
	f, _ := NewFilm("Heat", WithYear(1995))
	assert.Equal(t, "Film(title='Heat', genre='None', year=1995, director='None')", fmt.Sprintf("%#v", f))

	f, _ = NewFilm("Heat", WithGenre("Crime"), WithDirector("Michael Mann"))
	assert.Equal(t, "Film(title='Heat', genre='Crime', year=None, director='Michael Mann')", f.GoString())
	assert.Equal(t, "", f.YearString())
}
