// Command seed loads the bundled sample blogs into the configured store.
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"bloglist/internal/blog"
	"bloglist/internal/config"
	"bloglist/internal/listhelper"
	"bloglist/internal/logger"
)

//go:embed blogs.json
var sampleBlogs []byte

func main() {
	reset := flag.Bool("reset", false, "Delete all existing blogs before seeding")
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}
	log := logger.New("seed", cfg.LogLevel, "")

	ctx := context.Background()
	repo, err := blog.OpenStore(ctx, cfg.Store)
	if err != nil {
		log.Error("open store", slog.String("location", blog.Location(cfg.Store)), slog.Any("err", err))
		os.Exit(1)
	}
	defer repo.Close(ctx)

	n, err := seed(ctx, repo, *reset)
	if err != nil {
		log.Error("seed failed", slog.Any("err", err))
		os.Exit(1)
	}

	blogs, err := repo.List(ctx)
	if err != nil {
		log.Error("list blogs", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("seed finished",
		slog.Int("inserted", n),
		slog.Int("total", len(blogs)),
		slog.Int("total_likes", listhelper.TotalLikes(blogs)))
}

func loadSamples() ([]blog.Input, error) {
	var inputs []blog.Input
	if err := json.Unmarshal(sampleBlogs, &inputs); err != nil {
		return nil, fmt.Errorf("decode sample blogs: %w", err)
	}
	return inputs, nil
}

func seed(ctx context.Context, repo blog.Repository, reset bool) (int, error) {
	inputs, err := loadSamples()
	if err != nil {
		return 0, err
	}

	if reset {
		if err := repo.DeleteAll(ctx); err != nil {
			return 0, fmt.Errorf("reset: %w", err)
		}
	}

	service := blog.NewService(repo)
	for i, in := range inputs {
		if _, err := service.Create(ctx, in); err != nil {
			return i, fmt.Errorf("insert %q: %w", in.Title, err)
		}
	}
	return len(inputs), nil
}
