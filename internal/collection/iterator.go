package collection

import (
	"iter"

	"github.com/RacoonMediaServer/rms-films/internal/model"
	"go-micro.dev/v4/logger"
)

// Iterator walks the titles captured at creation time and resolves every
// title against the live collection. Titles removed after the snapshot are
// skipped, films added after it are not visited
type Iterator struct {
	c      *Collection
	titles []string
	cursor int
}

// Iterate creates new iterator over current titles
func (c *Collection) Iterate() *Iterator {
	return &Iterator{c: c, titles: c.Titles()}
}

// Next returns the next film. false means the iterator is depleted,
// all further calls return false too
func (it *Iterator) Next() (*model.Film, bool) {
	for it.cursor < len(it.titles) {
		title := it.titles[it.cursor]
		it.cursor++
		if f, ok := it.c.FindByTitle(title); ok {
			return f, true
		}
		it.c.log().Logf(logger.DebugLevel, "Iterator skips '%s': removed from the collection", title)
	}
	return nil, false
}

// All returns a single-use sequence backed by a fresh Iterator
func (c *Collection) All() iter.Seq[*model.Film] {
	it := c.Iterate()
	return func(yield func(*model.Film) bool) {
		for f, ok := it.Next(); ok; f, ok = it.Next() {
			if !yield(f) {
				return
			}
		}
	}
}
