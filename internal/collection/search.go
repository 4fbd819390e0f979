package collection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RacoonMediaServer/rms-films/internal/model"
	"go-micro.dev/v4/logger"
)

// SearchBy selects film attribute used by Find
type SearchBy int

const (
	SearchByTitle SearchBy = iota
	SearchByGenre
	SearchByYear
	SearchByDirector
)

var ErrUnknownSearchMode = errors.New("unknown search mode")

var searchModes = map[string]SearchBy{
	"title":    SearchByTitle,
	"genre":    SearchByGenre,
	"year":     SearchByYear,
	"director": SearchByDirector,
}

// ParseSearchBy converts attribute name (title, genre, year, director) to SearchBy
func ParseSearchBy(name string) (SearchBy, error) {
	by, ok := searchModes[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: '%s'", ErrUnknownSearchMode, name)
	}
	return by, nil
}

func (by SearchBy) String() string {
	for name, mode := range searchModes {
		if mode == by {
			return name
		}
	}
	return fmt.Sprintf("SearchBy(%d)", int(by))
}

func (by SearchBy) matcher(query string) func(f *model.Film) bool {
	switch by {
	case SearchByTitle:
		return containsFold(query, (*model.Film).Title)
	case SearchByGenre:
		return containsFold(query, (*model.Film).Genre)
	case SearchByDirector:
		return containsFold(query, (*model.Film).Director)
	case SearchByYear:
		return func(f *model.Film) bool {
			year := f.YearString()
			return year != "" && year == query
		}
	}
	return nil
}

func containsFold(query string, field func(f *model.Film) string) func(f *model.Film) bool {
	query = strings.ToLower(query)
	return func(f *model.Film) bool {
		value := field(f)
		return value != "" && strings.Contains(strings.ToLower(value), query)
	}
}

// Find returns films which attribute matches the query, in insertion order.
// Unknown search mode matches nothing
func (c *Collection) Find(query string, by SearchBy) []*model.Film {
	match := by.matcher(query)
	if match == nil {
		c.log().Logf(logger.DebugLevel, "Find '%s' skipped: unknown search mode %d", query, int(by))
		return nil
	}

	var result []*model.Film
	for e := c.order.Front(); e != nil; e = e.Next() {
		f := e.Value.(*model.Film)
		if match(f) {
			result = append(result, f)
		}
	}
	return result
}
