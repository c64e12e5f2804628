package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evgeniy-krivenko/notebook/internal/config"
	"github.com/evgeniy-krivenko/notebook/internal/events"
	"github.com/evgeniy-krivenko/notebook/internal/repository"
	"github.com/evgeniy-krivenko/notebook/internal/repository/memory"
	categoriesuc "github.com/evgeniy-krivenko/notebook/internal/usecase/categories"
	notesuc "github.com/evgeniy-krivenko/notebook/internal/usecase/notes"
	"github.com/evgeniy-krivenko/notebook/pkg/database"
	"github.com/evgeniy-krivenko/notebook/pkg/logger/slogx"
)

type usecases struct {
	notes      *notesuc.Usecase
	categories *categoriesuc.Usecase
	// ping is nil for the memory driver.
	ping func(context.Context) error
}

func newUsecases(ctx context.Context, cfg config.Config, bus *events.Bus) (usecases, func(), error) {
	slogx.Info(ctx, "init storage", slog.String("driver", cfg.Storage.Driver))

	if cfg.Storage.Driver == config.DriverMemory {
		store := memory.New()

		uc, err := buildUsecases(
			func() (*notesuc.Usecase, error) {
				return notesuc.New(notesuc.NewOptions(store, store, store, bus))
			},
			func() (*categoriesuc.Usecase, error) {
				return categoriesuc.New(categoriesuc.NewOptions(store, store, store, bus))
			},
		)
		return uc, func() {}, err
	}

	pool, err := database.NewPGX(ctx, database.NewOptions(
		cfg.Database.Address(),
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		database.WithRetryAttempts(cfg.Database.RetryAttempts),
		database.WithMaxConns(cfg.Database.MaxConns),
		database.WithLogger(slogx.Default()),
	))
	if err != nil {
		return usecases{}, nil, fmt.Errorf("connect to postgres: %v", err)
	}

	db := database.NewDatabase(pool)
	if err := database.Migrate(ctx, db, repository.Migrations, repository.MigrationsDir); err != nil {
		db.Close()
		return usecases{}, nil, err
	}

	repo := repository.New(db)

	uc, err := buildUsecases(
		func() (*notesuc.Usecase, error) {
			return notesuc.New(notesuc.NewOptions(repo, repo, db, bus))
		},
		func() (*categoriesuc.Usecase, error) {
			return categoriesuc.New(categoriesuc.NewOptions(repo, repo, db, bus))
		},
	)
	if err != nil {
		db.Close()
		return usecases{}, nil, err
	}
	uc.ping = db.Ping

	return uc, db.Close, nil
}

func buildUsecases(
	newNotes func() (*notesuc.Usecase, error),
	newCategories func() (*categoriesuc.Usecase, error),
) (usecases, error) {
	n, err := newNotes()
	if err != nil {
		return usecases{}, err
	}

	c, err := newCategories()
	if err != nil {
		return usecases{}, err
	}

	return usecases{notes: n, categories: c}, nil
}
