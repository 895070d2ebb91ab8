package report

import (
	"context"
	"fmt"

	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProductLister lists products
type ProductLister interface {
	List(ctx context.Context) ([]model.Product, error)
}

// SalesLister lists sale records
type SalesLister interface {
	List(ctx context.Context) ([]model.SaleRecord, error)
}

// FinanceLister lists financial entries
type FinanceLister interface {
	List(ctx context.Context) ([]model.FinancialEntry, error)
}

// Snapshot holds one consistent read of every collection a report needs
type Snapshot struct {
	Products []model.Product
	Sales    []model.SaleRecord
	Entries  []model.FinancialEntry
}

// Loader fetches report inputs from their ledgers
type Loader struct {
	products ProductLister
	sales    SalesLister
	finance  FinanceLister
}

func NewLoader(products ProductLister, sales SalesLister, finance FinanceLister) *Loader {
	return &Loader{products: products, sales: sales, finance: finance}
}

// Load reads the three collections concurrently. The first failure cancels
// the others and is returned.
func (l *Loader) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := l.products.List(gctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		snap.Products = rows
		return nil
	})
	g.Go(func() error {
		rows, err := l.sales.List(gctx)
		if err != nil {
			return fmt.Errorf("list sales: %w", err)
		}
		snap.Sales = rows
		return nil
	})
	g.Go(func() error {
		rows, err := l.finance.List(gctx)
		if err != nil {
			return fmt.Errorf("list financial entries: %w", err)
		}
		snap.Entries = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Summary loads a fresh snapshot and summarizes it
func (l *Loader) Summary(ctx context.Context) (Summary, error) {
	snap, err := l.Load(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(snap.Products, snap.Sales, snap.Entries), nil
}
