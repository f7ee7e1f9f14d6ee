package db

import (
	"context"

	dbmodels "github.com/gartstein/farm/internal/farm/db/models"
	e "github.com/gartstein/farm/internal/farm/errors"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (r *Repository) CreateMaterial(ctx context.Context, material *models.Material) error {
	rec := dbmodels.FromMaterial(material)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return translate(err)
	}
	material.CreatedAt = rec.CreatedAt
	material.UpdatedAt = rec.UpdatedAt
	return nil
}

func (r *Repository) GetMaterial(ctx context.Context, id uuid.UUID) (*models.Material, error) {
	var rec dbmodels.Material
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return rec.ToModel(), nil
}

func (r *Repository) ListMaterials(ctx context.Context, filter models.MaterialFilter) ([]*models.Material, error) {
	query := r.db.WithContext(ctx).Model(&dbmodels.Material{})
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var recs []dbmodels.Material
	if err := query.Order("name").Find(&recs).Error; err != nil {
		return nil, err
	}

	materials := make([]*models.Material, len(recs))
	for i := range recs {
		materials[i] = recs[i].ToModel()
	}
	return materials, nil
}

func (r *Repository) MaterialExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&dbmodels.Material{}).
		Where("name = ?", name).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

// ModifyMaterial loads the material under a row lock, hands a copy to fn and
// saves what fn returns. When the stock level changed, a movement of the
// given kind is written in the same transaction and returned.
func (r *Repository) ModifyMaterial(
	ctx context.Context,
	id uuid.UUID,
	kind models.MovementKind,
	note string,
	fn func(models.Material) (models.Material, error),
) (*models.Material, *models.StockMovement, error) {
	var (
		updated  *models.Material
		movement *models.StockMovement
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec dbmodels.Material
		if err := lockForUpdate(tx).First(&rec, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		before := *rec.ToModel()

		after, err := fn(before)
		if err != nil {
			return err
		}
		after.ID = before.ID
		after.CreatedAt = before.CreatedAt

		out := dbmodels.FromMaterial(&after)
		if err := tx.Save(out).Error; err != nil {
			return translate(err)
		}
		updated = out.ToModel()

		delta := after.CurrentStock - before.CurrentStock
		if delta == 0 {
			return nil
		}
		mv := dbmodels.FromStockMovement(&models.StockMovement{
			ID:          uuid.New(),
			MaterialID:  id,
			Kind:        kind,
			Quantity:    delta,
			StockBefore: before.CurrentStock,
			StockAfter:  after.CurrentStock,
			Note:        note,
		})
		if err := tx.Create(mv).Error; err != nil {
			return err
		}
		movement = mv.ToModel()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return updated, movement, nil
}

func (r *Repository) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&dbmodels.Material{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return e.ErrNotFound
		}
		return tx.Delete(&dbmodels.StockMovement{}, "material_id = ?", id).Error
	})
}

// ListMovements returns the stock ledger of a material, newest first.
func (r *Repository) ListMovements(ctx context.Context, materialID uuid.UUID) ([]*models.StockMovement, error) {
	var recs []dbmodels.StockMovement
	err := r.db.WithContext(ctx).
		Where("material_id = ?", materialID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	movements := make([]*models.StockMovement, len(recs))
	for i := range recs {
		movements[i] = recs[i].ToModel()
	}
	return movements, nil
}
