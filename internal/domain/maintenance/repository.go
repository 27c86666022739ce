package maintenance

import (
	"context"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostSummary aggregates costs over a set of interventions
type CostSummary struct {
	Count          int64           `json:"count"`
	MaterialCost   decimal.Decimal `json:"material_cost"`
	HeliportCost   decimal.Decimal `json:"heliport_cost"`
	ContractorCost decimal.Decimal `json:"contractor_cost"`
	ManDays        decimal.Decimal `json:"man_days"`
}

// Total sums the monetary components
func (c CostSummary) Total() decimal.Decimal {
	return c.MaterialCost.Add(c.HeliportCost).Add(c.ContractorCost)
}

// InterventionRepository persists interventions
type InterventionRepository interface {
	shared.StructureRepository[Intervention]
	FindByTarget(ctx context.Context, kind TargetKind, targetID uuid.UUID) ([]Intervention, error)
	SummarizeCosts(ctx context.Context, kind TargetKind, targetID uuid.UUID) (CostSummary, error)
}
