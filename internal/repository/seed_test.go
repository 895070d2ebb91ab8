package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const testSeed = `
inputs:
  - id: leite
    name: Leite
    unit: l
    cost_per_unit: "4.50"
  - name: Ovo
    unit: un
    cost_per_unit: "0.75"
products:
  - id: p1
    name: Pudim
    category: Doces
    unit_price: "12.00"
    stock_quantity: 4
finance:
  - description: Venda balcão
    type: INCOME
    status: PAID
    amount: "320.10"
    due_date: "2024-05-10"
sales:
  - client_name: Maria
    total: "48"
    status: COMPLETED
`

func TestSeedFillsEmptyCollections(t *testing.T) {
	repos := New(testDB(t), nil)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(testSeed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	res, err := repos.SeedFromFile(ctx, path)
	if err != nil {
		t.Fatalf("SeedFromFile: %v", err)
	}
	if res != (SeedResult{Inputs: 2, Products: 1, Finance: 1, Sales: 1}) {
		t.Fatalf("unexpected result: %+v", res)
	}

	inputs, _ := repos.Inputs.List(ctx)
	if len(inputs) != 2 || inputs[0].ID != "leite" || !inputs[0].CostPerUnit.Equal(decimal.RequireFromString("4.5")) {
		t.Fatalf("unexpected inputs: %+v", inputs)
	}
	if inputs[1].ID == "" {
		t.Fatalf("expected generated id for Ovo")
	}
	entries, _ := repos.Finance.List(ctx)
	if len(entries) != 1 || entries[0].DueDate == nil || !entries[0].Amount.Equal(decimal.RequireFromString("320.10")) {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	res, err = repos.SeedFromFile(ctx, path)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if res != (SeedResult{}) {
		t.Fatalf("second seed should create nothing, got %+v", res)
	}
}

func TestSeedRejectsBadRecords(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"bad amount", "inputs:\n  - name: Sal\n    cost_per_unit: abc\n", "invalid amount"},
		{"negative stock", "products:\n  - name: Bolo\n    stock_quantity: -1\n", "must not be negative"},
		{"unknown entry type", "finance:\n  - description: x\n    type: LOAN\n    status: PAID\n", "unknown type"},
		{"unknown sale status", "sales:\n  - client_name: Ana\n    status: LOST\n", "unknown status"},
	}
	for _, tc := range cases {
		f, err := ParseSeed([]byte(tc.doc))
		if err != nil {
			t.Fatalf("%s: ParseSeed: %v", tc.name, err)
		}
		_, err = New(testDB(t), nil).Seed(context.Background(), f)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.want, err)
		}
	}
}
