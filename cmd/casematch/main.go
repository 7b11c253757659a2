// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poiesic/casematch"
	"github.com/poiesic/casematch/kb"
	"github.com/poiesic/casematch/search"
	"github.com/urfave/cli/v2"
)

func main() {
	// Optional .env for TRIAGE_KB_LOCAL / TRIAGE_KB_REMOTE
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "casematch",
		Usage: "Lexical case matching over a triage knowledge base",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Find the knowledge base cases most similar to a query",
				ArgsUsage: "<query text>",
				Action:    searchCommand,
				Flags: append(sourceFlags(),
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of results to return",
						Value:   search.DefaultTopK,
					},
				),
			},
			{
				Name:   "stats",
				Usage:  "Report knowledge base row and indexed counts",
				Action: statsCommand,
				Flags:  sourceFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "kb",
			Usage: "Local path to the knowledge base CSV (defaults to TRIAGE_KB_LOCAL)",
		},
		&cli.StringFlag{
			Name:  "remote",
			Usage: "Remote object URL fetched when the local path is absent (defaults to TRIAGE_KB_REMOTE)",
		},
		&cli.DurationFlag{
			Name:  "fetch-timeout",
			Usage: "Timeout for the one-shot remote fetch",
			Value: kb.DefaultFetchTimeout,
		},
	}
}

func configFromFlags(c *cli.Context) *kb.Config {
	cfg := kb.ConfigFromEnv()
	if path := c.String("kb"); path != "" {
		cfg.LocalPath = path
	}
	if url := c.String("remote"); url != "" {
		cfg.RemoteURL = url
	}
	cfg.FetchTimeout = c.Duration("fetch-timeout")
	return cfg
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("search: query text required")
	}

	engine, err := casematch.New(configFromFlags(c))
	if err != nil {
		return err
	}

	results, err := engine.Search(c.Context, query, c.Int("top-k"))
	if err != nil {
		return err
	}

	fmt.Printf("Found %d similar cases\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %s [%.3f]\n", i+1, hit.Record.Condition, hit.Score)
		if hit.Record.Symptoms != "" {
			fmt.Printf("   symptoms: %s\n", hit.Record.Symptoms)
		}
		if hit.Record.Advice != "" {
			fmt.Printf("   advice:   %s\n", hit.Record.Advice)
		}
		if hit.Record.URL != "" {
			fmt.Printf("   source:   %s\n", hit.Record.URL)
		}
	}

	for _, item := range engine.Evidence().Snapshot(true) {
		slog.Debug("evidence", "source", item.Source, "detail", item.Detail)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	engine, err := casematch.New(configFromFlags(c))
	if err != nil {
		return err
	}

	stats, err := engine.Stats(c.Context)
	if err != nil {
		return err
	}

	fmt.Printf("rows: %d\nindexed: %d\n", stats.Rows, stats.Indexed)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
