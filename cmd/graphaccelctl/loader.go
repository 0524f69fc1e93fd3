package main

import (
	"context"

	"github.com/dd0wney/graphaccel/internal/config"
	"github.com/dd0wney/graphaccel/internal/graphstore"
	"github.com/dd0wney/graphaccel/internal/pgsource"
)

// pgLoader adapts pgsource.Source's streaming Load to the hostbind.Loader
// interface, which wants a fully-built store plus the generation recorded
// immediately after load completion.
type pgLoader struct {
	src *pgsource.Source
}

func (l *pgLoader) Load(ctx context.Context, graphName string, cfg config.Config) (*graphstore.Store, int64, error) {
	records := make(chan graphstore.EdgeRecordIn, 256)
	loadErr := make(chan error, 1)

	go func() {
		loadErr <- l.src.Load(ctx, graphName, cfg, records)
	}()

	store := graphstore.New()
	if err := graphstore.BulkLoad(store, records); err != nil {
		<-loadErr
		return nil, 0, err
	}
	if err := <-loadErr; err != nil {
		return nil, 0, err
	}

	if limit := cfg.MaxMemoryMB * 1024 * 1024; store.MemoryUsage() > limit {
		return nil, 0, &graphstore.LoadError{Op: "MemoryUsage", Cause: graphstore.ErrMemoryLimit}
	}

	gen, err := l.src.Fetch(ctx, graphName)
	if err != nil {
		return nil, 0, err
	}
	return store, gen, nil
}
