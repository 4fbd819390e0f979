package catalog

import (
	"github.com/RacoonMediaServer/rms-films/internal/collection"
	"github.com/RacoonMediaServer/rms-films/internal/model"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go-micro.dev/v4/logger"
	"gopkg.in/yaml.v3"
)

type entry struct {
	Title    string `yaml:"title"`
	Genre    string `yaml:"genre"`
	Year     uint   `yaml:"year"`
	Director string `yaml:"director"`
}

type document struct {
	Films []entry `yaml:"films"`
}

// Load reads catalog file and builds films in the order of appearance
func Load(fs afero.Fs, path string) ([]*model.Film, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "Catalog.ReadFile")
	}
	return Parse(data)
}

// Parse decodes YAML catalog document
func Parse(data []byte) ([]*model.Film, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "Catalog.Decode")
	}

	films := make([]*model.Film, 0, len(doc.Films))
	for i, e := range doc.Films {
		f, err := model.NewFilm(e.Title,
			model.WithGenre(e.Genre),
			model.WithYear(e.Year),
			model.WithDirector(e.Director),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "Catalog.Entry[%d]", i)
		}
		films = append(films, f)
	}
	return films, nil
}

// Populate adds films to the collection, duplicates are skipped. Returns number of added films
func Populate(c *collection.Collection, films []*model.Film) int {
	added := 0
	for _, f := range films {
		if err := c.Add(f); err != nil {
			logger.Warnf("Skip catalog entry: %s", err)
			continue
		}
		added++
	}
	return added
}
