package domain

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/testbook/internal/adapter"
	"github.com/mouse-blink/testbook/internal/codec"
	m "github.com/mouse-blink/testbook/internal/model"
)

// Checker validates document files without opening them in an editor.
type Checker interface {
	// CheckFiles loads every file with at most threads loads in flight and
	// returns one report per path, in the order of paths. A file that fails
	// to load is reported, not returned as an error.
	CheckFiles(ctx context.Context, paths []m.Path, threads int) ([]m.CheckReport, error)
}

type checker struct {
	store  adapter.DocumentStore
	logger *slog.Logger
}

// NewChecker creates a Checker reading files through store.
func NewChecker(store adapter.DocumentStore, logger *slog.Logger) Checker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &checker{store: store, logger: logger}
}

func (c *checker) CheckFiles(ctx context.Context, paths []m.Path, threads int) ([]m.CheckReport, error) {
	if threads <= 0 {
		threads = 1
	}

	reports := make([]m.CheckReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			reports[i] = c.checkFile(path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "check")
	}

	return reports, nil
}

func (c *checker) checkFile(path m.Path) m.CheckReport {
	report := m.CheckReport{File: path}

	payload, err := c.store.Load(path)
	if err != nil {
		report.Err = err
		return report
	}

	report.Size = int64(codec.HeaderLen + len(payload))

	doc := &m.Document{}
	if err := codec.Unmarshal(payload, doc); err != nil {
		report.Err = err
		return report
	}

	if err := CheckDocument(doc); err != nil {
		report.Err = err
		return report
	}

	report.Nodes = len(doc.Nodes)

	for id, n := range doc.Nodes {
		switch {
		case n.Kind() == m.KindTest:
			report.Tests++
		case id != m.RootID:
			report.Groups++
		}
	}

	c.logger.Debug("document checked", slog.String("path", string(path)), slog.Int("nodes", report.Nodes))

	return report
}
