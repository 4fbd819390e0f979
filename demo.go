package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/RacoonMediaServer/rms-films/internal/collection"
	"github.com/RacoonMediaServer/rms-films/internal/model"
	"go-micro.dev/v4/logger"
)

type demoFilm struct {
	title string
	opts  []model.FilmOption
}

var demoFilms = []demoFilm{
	{"Inception", []model.FilmOption{model.WithGenre("Sci-Fi"), model.WithYear(2010), model.WithDirector("Christopher Nolan")}},
	{"The Shawshank Redemption", []model.FilmOption{model.WithGenre("Drama"), model.WithYear(1994), model.WithDirector("Frank Darabont")}},
	{"Pulp Fiction", []model.FilmOption{model.WithGenre("Crime"), model.WithYear(1994), model.WithDirector("Quentin Tarantino")}},
	{"The Dark Knight", []model.FilmOption{model.WithGenre("Action"), model.WithYear(2008), model.WithDirector("Christopher Nolan")}},
	{"Inception", []model.FilmOption{model.WithGenre("Thriller"), model.WithYear(2010)}},
}

// runDemo adds sample films (the last one is a duplicate), lists them and removes one film twice.
// Returns true when every step produced the expected outcome
func runDemo(c *collection.Collection, w io.Writer) (bool, error) {
	added := 0
	for _, d := range demoFilms {
		f, err := model.NewFilm(d.title, d.opts...)
		if err != nil {
			return false, err
		}
		if err = c.Add(f); err == nil {
			added++
		} else if !errors.Is(err, collection.ErrAlreadyExists) {
			return false, err
		}
	}
	logger.Infof("Demo: %d of %d films added", added, len(demoFilms))

	c.List()

	const removeTitle = "Pulp Fiction"
	first := c.Remove(removeTitle)
	second := c.Remove(removeTitle)

	fmt.Fprintf(w, "\nFilms in the collection: %d\n", c.Size())
	ok := added == len(demoFilms)-1 && first == nil && errors.Is(second, collection.ErrNotFound) && c.Size() == added-1
	return ok, nil
}
