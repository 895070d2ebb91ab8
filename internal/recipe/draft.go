package recipe

import (
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
)

// Draft is a recipe being composed. Lines are built with AddLine or
// AddLines and checked again by Save, which replaces the stored line set
// wholesale.
type Draft struct {
	ID            string
	Name          string
	Description   string
	YieldQuantity int
	Lines         []model.RecipeLine
}

// DraftFrom starts an edit of a stored recipe
func DraftFrom(r model.Recipe) *Draft {
	lines := make([]model.RecipeLine, len(r.Lines))
	copy(lines, r.Lines)
	return &Draft{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		YieldQuantity: r.YieldQuantity,
		Lines:         lines,
	}
}

// RemoveLine drops the line at index. Out of range indexes are ignored.
func (d *Draft) RemoveLine(index int) {
	if index < 0 || index >= len(d.Lines) {
		return
	}
	d.Lines = append(d.Lines[:index:index], d.Lines[index+1:]...)
}
