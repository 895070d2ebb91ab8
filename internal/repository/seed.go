package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout of a catalog seed. Amounts are strings so
// they reach decimal.Decimal without passing through float64.
type SeedFile struct {
	Inputs []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Unit        string `yaml:"unit"`
		CostPerUnit string `yaml:"cost_per_unit"`
	} `yaml:"inputs"`
	Products []struct {
		ID            string `yaml:"id"`
		Name          string `yaml:"name"`
		Category      string `yaml:"category"`
		Description   string `yaml:"description"`
		UnitPrice     string `yaml:"unit_price"`
		StockQuantity int    `yaml:"stock_quantity"`
	} `yaml:"products"`
	Finance []struct {
		Description string `yaml:"description"`
		Type        string `yaml:"type"`
		Status      string `yaml:"status"`
		Amount      string `yaml:"amount"`
		DueDate     string `yaml:"due_date"`
	} `yaml:"finance"`
	Sales []struct {
		ClientName string `yaml:"client_name"`
		Total      string `yaml:"total"`
		Status     string `yaml:"status"`
	} `yaml:"sales"`
}

// SeedResult counts the records created per collection
type SeedResult struct {
	Inputs   int
	Products int
	Finance  int
	Sales    int
}

// ParseSeed decodes a seed document
func ParseSeed(data []byte) (*SeedFile, error) {
	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &f, nil
}

// SeedFromFile reads path and applies it with Seed
func (r *Repositories) SeedFromFile(ctx context.Context, path string) (SeedResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedResult{}, fmt.Errorf("read seed file: %w", err)
	}
	f, err := ParseSeed(data)
	if err != nil {
		return SeedResult{}, err
	}
	return r.Seed(ctx, f)
}

// Seed fills each collection from f, but only a collection that is still
// empty. Running it again against a populated database creates nothing.
func (r *Repositories) Seed(ctx context.Context, f *SeedFile) (SeedResult, error) {
	var res SeedResult

	existingInputs, err := r.Inputs.List(ctx)
	if err != nil {
		return res, fmt.Errorf("list inputs: %w", err)
	}
	if len(existingInputs) == 0 {
		for _, s := range f.Inputs {
			cost, err := parseAmount("input "+s.Name, s.CostPerUnit)
			if err != nil {
				return res, err
			}
			in := model.Input{ID: s.ID, Name: s.Name, Unit: s.Unit, CostPerUnit: cost}
			if err := r.Inputs.Create(ctx, &in); err != nil {
				return res, fmt.Errorf("create input %q: %w", s.Name, err)
			}
			res.Inputs++
		}
	}

	existingProducts, err := r.Products.List(ctx)
	if err != nil {
		return res, fmt.Errorf("list products: %w", err)
	}
	if len(existingProducts) == 0 {
		for _, s := range f.Products {
			price, err := parseAmount("product "+s.Name, s.UnitPrice)
			if err != nil {
				return res, err
			}
			if price.IsNegative() || s.StockQuantity < 0 {
				return res, fmt.Errorf("product %q: price and stock must not be negative", s.Name)
			}
			p := model.Product{
				ID:            s.ID,
				Name:          s.Name,
				Category:      s.Category,
				Description:   s.Description,
				UnitPrice:     price,
				StockQuantity: s.StockQuantity,
			}
			if err := r.Products.Create(ctx, &p); err != nil {
				return res, fmt.Errorf("create product %q: %w", s.Name, err)
			}
			res.Products++
		}
	}

	existingEntries, err := r.Finance.List(ctx)
	if err != nil {
		return res, fmt.Errorf("list financial entries: %w", err)
	}
	if len(existingEntries) == 0 {
		for _, s := range f.Finance {
			amount, err := parseAmount("entry "+s.Description, s.Amount)
			if err != nil {
				return res, err
			}
			e := model.FinancialEntry{
				Description: s.Description,
				Type:        model.EntryType(s.Type),
				Status:      model.EntryStatus(s.Status),
				Amount:      amount,
			}
			if e.Type != model.EntryIncome && e.Type != model.EntryExpense {
				return res, fmt.Errorf("entry %q: unknown type %q", s.Description, s.Type)
			}
			if e.Status != model.EntryPaid && e.Status != model.EntryPending {
				return res, fmt.Errorf("entry %q: unknown status %q", s.Description, s.Status)
			}
			if s.DueDate != "" {
				due, err := time.Parse(time.DateOnly, s.DueDate)
				if err != nil {
					return res, fmt.Errorf("entry %q: due_date: %w", s.Description, err)
				}
				e.DueDate = &due
			}
			if err := r.Finance.Create(ctx, &e); err != nil {
				return res, fmt.Errorf("create financial entry %q: %w", s.Description, err)
			}
			res.Finance++
		}
	}

	existingSales, err := r.Sales.List(ctx)
	if err != nil {
		return res, fmt.Errorf("list sales: %w", err)
	}
	if len(existingSales) == 0 {
		for _, s := range f.Sales {
			total, err := parseAmount("sale "+s.ClientName, s.Total)
			if err != nil {
				return res, err
			}
			sale := model.SaleRecord{ClientName: s.ClientName, Total: total, Status: model.SaleStatus(s.Status)}
			switch sale.Status {
			case model.SalePending, model.SaleCompleted, model.SaleCancelled:
			default:
				return res, fmt.Errorf("sale %q: unknown status %q", s.ClientName, s.Status)
			}
			if err := r.Sales.Create(ctx, &sale); err != nil {
				return res, fmt.Errorf("create sale %q: %w", s.ClientName, err)
			}
			res.Sales++
		}
	}

	return res, nil
}

func parseAmount(what, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: invalid amount %q: %w", what, s, err)
	}
	return d, nil
}
