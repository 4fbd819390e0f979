package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/RacoonMediaServer/rms-films/internal/catalog"
	"github.com/RacoonMediaServer/rms-films/internal/collection"
	"github.com/RacoonMediaServer/rms-films/internal/config"
	"github.com/RacoonMediaServer/rms-films/internal/model"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"go-micro.dev/v4/logger"
)

var Version = "v0.0.0"

const appName = "rms-films"

func main() {
	app := &cli.App{
		Name:    appName,
		Usage:   "in-memory film collection",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to configuration file",
				Value: fmt.Sprintf("/etc/rms/%s.json", appName),
			},
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "path to YAML catalog, overrides configuration",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"debug"},
				Usage:   "debug log level",
			},
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool("verbose") {
				_ = logger.Init(logger.WithLevel(logger.DebugLevel))
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "print all films of the catalog",
				Action: listAction,
			},
			{
				Name:      "get",
				Usage:     "print film with exact title",
				ArgsUsage: "<title>",
				Action:    getAction,
			},
			{
				Name:      "find",
				Usage:     "search films by attribute",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "by",
						Usage: "title, genre, year or director",
						Value: "title",
					},
				},
				Action: findAction,
			},
			{
				Name:   "demo",
				Usage:  "run the sample add/list/remove session",
				Action: demoAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatalf("%s", err)
	}
}

func catalogPath(ctx *cli.Context) (string, error) {
	if ctx.IsSet("catalog") {
		return ctx.String("catalog"), nil
	}
	if err := config.Load(ctx.String("config")); err != nil {
		return "", fmt.Errorf("load configuration failed: %w", err)
	}
	return config.Config().Catalog, nil
}

func loadCollection(ctx *cli.Context) (*collection.Collection, error) {
	path, err := catalogPath(ctx)
	if err != nil {
		return nil, err
	}

	c := collection.New()
	if path == "" {
		logger.Warn("Catalog is not configured, collection is empty")
		c.SetOutput(ctx.App.Writer)
		return c, nil
	}

	films, err := catalog.Load(afero.NewOsFs(), path)
	if err != nil {
		return nil, err
	}
	added := catalog.Populate(c, films)
	logger.Infof("Loaded %d films from '%s'", added, path)
	c.SetOutput(ctx.App.Writer)
	return c, nil
}

func listAction(ctx *cli.Context) error {
	c, err := loadCollection(ctx)
	if err != nil {
		return err
	}
	c.List()
	return nil
}

func getAction(ctx *cli.Context) error {
	title := ctx.Args().First()
	if title == "" {
		return fmt.Errorf("%w: title is required", model.ErrInvalidArgument)
	}
	c, err := loadCollection(ctx)
	if err != nil {
		return err
	}
	f, ok := c.FindByTitle(title)
	if !ok {
		return fmt.Errorf("get '%s': %w", title, collection.ErrNotFound)
	}
	fmt.Fprintln(ctx.App.Writer, f)
	return nil
}

func findAction(ctx *cli.Context) error {
	by, err := collection.ParseSearchBy(ctx.String("by"))
	if err != nil {
		return err
	}
	c, err := loadCollection(ctx)
	if err != nil {
		return err
	}
	films := c.Find(ctx.Args().First(), by)
	if len(films) == 0 {
		fmt.Fprintln(ctx.App.Writer, "Nothing found.")
		return nil
	}
	for i, f := range films {
		fmt.Fprintf(ctx.App.Writer, "#%d. %s\n", i+1, f)
	}
	return nil
}

func demoAction(ctx *cli.Context) error {
	c := collection.New(collection.WithOutput(ctx.App.Writer))
	done, err := runDemo(c, ctx.App.Writer)
	if err != nil {
		return err
	}
	if !done {
		return errors.New("demo session finished with unexpected results")
	}
	return nil
}
