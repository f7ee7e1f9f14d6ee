package db

import (
	"context"

	dbmodels "github.com/gartstein/farm/internal/farm/db/models"
	e "github.com/gartstein/farm/internal/farm/errors"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (r *Repository) CreateSalary(ctx context.Context, salary *models.Salary) error {
	rec := dbmodels.FromSalary(salary)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return translate(err)
	}
	salary.CreatedAt = rec.CreatedAt
	salary.UpdatedAt = rec.UpdatedAt
	return nil
}

func (r *Repository) GetSalary(ctx context.Context, id uuid.UUID) (*models.Salary, error) {
	var rec dbmodels.Salary
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return rec.ToModel(), nil
}

func (r *Repository) ListSalaries(ctx context.Context, filter models.SalaryFilter) ([]*models.Salary, error) {
	query := r.db.WithContext(ctx).Model(&dbmodels.Salary{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.SalaryMonth != "" {
		query = query.Where("salary_month = ?", filter.SalaryMonth)
	}

	var recs []dbmodels.Salary
	if err := query.Order("salary_month DESC").Order("staff_name").Find(&recs).Error; err != nil {
		return nil, err
	}

	salaries := make([]*models.Salary, len(recs))
	for i := range recs {
		salaries[i] = recs[i].ToModel()
	}
	return salaries, nil
}

// ModifySalary loads the salary under a row lock, hands a copy to fn and
// saves what fn returns.
func (r *Repository) ModifySalary(
	ctx context.Context,
	id uuid.UUID,
	fn func(models.Salary) (models.Salary, error),
) (*models.Salary, error) {
	var updated *models.Salary

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec dbmodels.Salary
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

		out := dbmodels.FromSalary(&after)
		if err := tx.Save(out).Error; err != nil {
			return translate(err)
		}
		updated = out.ToModel()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *Repository) DeleteSalary(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&dbmodels.Salary{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}
