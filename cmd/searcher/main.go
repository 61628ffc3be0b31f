package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/Adithya-Monish-Kumar-K/keyword-search/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/keyword-search/pkg/logger"
)

const configKey = "config"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "searcher",
		Usage: "Rank short documents by how many distinct query words they contain",
		Description: "Reads a stop-word line, a document count, that many document lines and a\n" +
			"query line from stdin, then prints the top matches to stdout.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Override logging level (debug, info, warn, error)",
			},
			&cli.IntFlag{
				Name:  "max-results",
				Usage: "Override the number of results returned per query",
			},
		},
		Before: setup,
		Action: searchCommand,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Load a corpus file and serve searches over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "corpus",
						Usage:    "File with a stop-word line, a document count and the documents",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "port",
						Usage: "HTTP port (overrides server.port)",
					},
				},
			},
		},
	}
}

// setup loads configuration, applies flag overrides and configures logging.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		level := strings.ToLower(c.String("log-level"))
		if !logger.ValidLevel(level) {
			return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", level)
		}
		cfg.Logging.Level = level
	}
	if c.IsSet("max-results") {
		cfg.Search.MaxResults = c.Int("max-results")
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format, c.App.ErrWriter)
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[configKey] = cfg
	return nil
}

func loadedConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}
