package persistence

import (
	"context"

	"github.com/geotrail/backend/internal/domain/maintenance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInterventionRepository implements maintenance.InterventionRepository using GORM
type GormInterventionRepository struct {
	*GormStructureScopedRepository[maintenance.Intervention]
	db *gorm.DB
}

// NewGormInterventionRepository creates a new GormInterventionRepository
func NewGormInterventionRepository(db *gorm.DB) *GormInterventionRepository {
	return &GormInterventionRepository{
		GormStructureScopedRepository: NewGormStructureScopedRepository[maintenance.Intervention](
			db,
			[]string{"name", "description"},
			"start_date DESC",
			map[string]string{
				"status":      "status",
				"target_kind": "target_kind",
			},
		),
		db: db,
	}
}

// FindByTarget finds interventions attached to a target record
func (r *GormInterventionRepository) FindByTarget(ctx context.Context, kind maintenance.TargetKind, targetID uuid.UUID) ([]maintenance.Intervention, error) {
	var interventions []maintenance.Intervention
	if err := r.db.WithContext(ctx).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Order("start_date DESC").
		Find(&interventions).Error; err != nil {
		return nil, err
	}
	return interventions, nil
}

// SummarizeCosts aggregates the cost columns of interventions on a target
func (r *GormInterventionRepository) SummarizeCosts(ctx context.Context, kind maintenance.TargetKind, targetID uuid.UUID) (maintenance.CostSummary, error) {
	var row struct {
		Count          int64
		MaterialCost   decimal.Decimal
		HeliportCost   decimal.Decimal
		ContractorCost decimal.Decimal
		ManDays        decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&maintenance.Intervention{}).
		Select(`COUNT(*) AS count,
			COALESCE(SUM(material_cost), 0) AS material_cost,
			COALESCE(SUM(heliport_cost), 0) AS heliport_cost,
			COALESCE(SUM(contractor_cost), 0) AS contractor_cost,
			COALESCE(SUM(man_days), 0) AS man_days`).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Scan(&row).Error; err != nil {
		return maintenance.CostSummary{}, err
	}
	return maintenance.CostSummary{
		Count:          row.Count,
		MaterialCost:   row.MaterialCost,
		HeliportCost:   row.HeliportCost,
		ContractorCost: row.ContractorCost,
		ManDays:        row.ManDays,
	}, nil
}

var _ maintenance.InterventionRepository = (*GormInterventionRepository)(nil)
