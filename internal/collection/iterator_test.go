package collection

import (
	"testing"

	"github.com/RacoonMediaServer/rms-films/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(it *Iterator) []string {
	var titles []string
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		titles = append(titles, f.Title())
	}
	return titles
}

func TestIterateInsertionOrder(t *testing.T) {
	c := New()
	for _, title := range []string{"Zodiac", "Alien", "Memento"} {
		require.NoError(t, c.Add(mustFilm(t, title)))
	}

	if diff := cmp.Diff([]string{"Zodiac", "Alien", "Memento"}, drain(c.Iterate())); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}

	var titles []string
	for f := range c.All() {
		titles = append(titles, f.Title())
	}
	assert.Equal(t, []string{"Zodiac", "Alien", "Memento"}, titles)
}

func TestIteratorExhausted(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(mustFilm(t, "Alien")))

	it := c.Iterate()
	f, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "Alien", f.Title())

	for i := 0; i < 3; i++ {
		f, ok = it.Next()
		assert.False(t, ok)
		assert.Nil(t, f)
	}

	_, ok = New().Iterate().Next()
	assert.False(t, ok)

	// new iterator starts over
	assert.Equal(t, []string{"Alien"}, drain(c.Iterate()))
}

func TestIteratorSnapshot(t *testing.T) {
	c := New()
	for _, title := range []string{"Alien", "Aliens", "Alien 3"} {
		require.NoError(t, c.Add(mustFilm(t, title)))
	}

	it := c.Iterate()
	first, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "Alien", first.Title())

	// removed titles are skipped, additions are not observed
	require.NoError(t, c.Remove("Aliens"))
	require.NoError(t, c.Add(mustFilm(t, "Prometheus")))
	assert.Equal(t, []string{"Alien 3"}, drain(it))
}

func TestIteratorResolvesLiveValue(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(mustFilm(t, "Alien", model.WithYear(1979))))

	it := c.Iterate()
	require.NoError(t, c.Remove("Alien"))
	replacement := mustFilm(t, "Alien", model.WithYear(2079))
	require.NoError(t, c.Add(replacement))

	f, ok := it.Next()
	require.True(t, ok)
	assert.Same(t, replacement, f)
}

func TestAllStopsEarly(t *testing.T) {
	c := New()
	for _, title := range []string{"A", "B", "C"} {
		require.NoError(t, c.Add(mustFilm(t, title)))
	}

	var titles []string
	for f := range c.All() {
		titles = append(titles, f.Title())
		if len(titles) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"A", "B"}, titles)
}
