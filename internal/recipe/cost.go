package recipe

import (
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"github.com/shopspring/decimal"
)

// LineCost is the priced view of one recipe line
type LineCost struct {
	InputID     string          `json:"input_id"`
	InputName   string          `json:"input_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	Cost        decimal.Decimal `json:"cost"`
}

// Costing prices a recipe batch at current input costs
type Costing struct {
	RecipeID  string          `json:"recipe_id"`
	BatchCost decimal.Decimal `json:"batch_cost"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Lines     []LineCost      `json:"lines"`
	// input ids that no longer resolve; their lines cost zero
	Missing []string `json:"missing,omitempty"`
}

// Cost prices every line of r against inputs
func Cost(r model.Recipe, inputs []model.Input) Costing {
	byID := make(map[string]model.Input, len(inputs))
	for _, in := range inputs {
		byID[in.ID] = in
	}

	c := Costing{
		RecipeID:  r.ID,
		BatchCost: decimal.Zero,
		Lines:     make([]LineCost, 0, len(r.Lines)),
	}
	for _, l := range r.Lines {
		lc := LineCost{
			InputID:     l.InputID,
			InputName:   l.InputName,
			Quantity:    l.Quantity,
			Unit:        l.Unit,
			CostPerUnit: decimal.Zero,
			Cost:        decimal.Zero,
		}
		if in, ok := byID[l.InputID]; ok {
			lc.CostPerUnit = in.CostPerUnit
			lc.Cost = l.Quantity.Mul(in.CostPerUnit)
		} else {
			c.Missing = append(c.Missing, l.InputID)
		}
		c.BatchCost = c.BatchCost.Add(lc.Cost)
		c.Lines = append(c.Lines, lc)
	}

	yield := r.YieldQuantity
	if yield < 1 {
		yield = 1
	}
	c.UnitCost = c.BatchCost.Div(decimal.NewFromInt(int64(yield)))
	return c
}
