// Package seed loads YAML fixture files of materials and salaries through
// the service layer, so seeded records get the same validation, derived
// fields and events as API-created ones.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	e "github.com/gartstein/farm/internal/farm/errors"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Fixture struct {
	Materials []MaterialFixture `yaml:"materials"`
	Salaries  []SalaryFixture   `yaml:"salaries"`
}

// MaterialFixture describes one material. Money is written as a string to
// keep it exact.
type MaterialFixture struct {
	Name         string `yaml:"name"`
	Unit         string `yaml:"unit"`
	Category     string `yaml:"category"`
	Supplier     string `yaml:"supplier"`
	CurrentStock int64  `yaml:"current_stock"`
	MinStock     int64  `yaml:"min_stock"`
	PricePerUnit string `yaml:"price_per_unit"`
}

type SalaryFixture struct {
	StaffName   string `yaml:"staff_name"`
	SalaryMonth string `yaml:"salary_month"`
	BaseSalary  string `yaml:"base_salary"`
	PaidAmount  string `yaml:"paid_amount"`
	Note        string `yaml:"note"`
}

// Parse decodes a fixture document. Unknown keys are rejected.
func Parse(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

type MaterialCreator interface {
	CreateMaterial(ctx context.Context, material *models.Material) (*models.Material, error)
}

type SalaryCreator interface {
	CreateSalary(ctx context.Context, salary *models.Salary) (*models.Salary, error)
	ListSalaries(ctx context.Context, filter models.SalaryFilter) ([]*models.Salary, error)
}

// Result counts what a Load call did.
type Result struct {
	Materials int
	Salaries  int
	Skipped   int
}

type Loader struct {
	materials MaterialCreator
	salaries  SalaryCreator
	logger    *zap.Logger
	now       func() time.Time
}

func NewLoader(materials MaterialCreator, salaries SalaryCreator, logger *zap.Logger) *Loader {
	return &Loader{
		materials: materials,
		salaries:  salaries,
		logger:    logger.Named("seed"),
		now:       time.Now,
	}
}

// Load creates every record of f. Materials whose name already exists and
// salaries whose staff name and month already exist are skipped, so
// reloading a fixture only adds what is missing. Any other error stops the
// load.
func (l *Loader) Load(ctx context.Context, f *Fixture) (Result, error) {
	var res Result

	for i, mf := range f.Materials {
		m, err := mf.model()
		if err != nil {
			return res, fmt.Errorf("material %d (%s): %w", i, mf.Name, err)
		}
		if _, err := l.materials.CreateMaterial(ctx, m); err != nil {
			if errors.Is(err, e.ErrDuplicateName) {
				l.logger.Info("Material already present, skipping", zap.String("name", mf.Name))
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("material %d (%s): %w", i, mf.Name, err)
		}
		res.Materials++
	}

	for i, sf := range f.Salaries {
		s, err := sf.model()
		if err != nil {
			return res, fmt.Errorf("salary %d (%s): %w", i, sf.StaffName, err)
		}
		if s.SalaryMonth == "" {
			s.SalaryMonth = l.now().Format(models.SalaryMonthLayout)
		}
		exists, err := l.salaryExists(ctx, s)
		if err != nil {
			return res, fmt.Errorf("salary %d (%s): %w", i, sf.StaffName, err)
		}
		if exists {
			l.logger.Info("Salary already present, skipping",
				zap.String("staff_name", s.StaffName),
				zap.String("salary_month", s.SalaryMonth),
			)
			res.Skipped++
			continue
		}
		if _, err := l.salaries.CreateSalary(ctx, s); err != nil {
			return res, fmt.Errorf("salary %d (%s): %w", i, sf.StaffName, err)
		}
		res.Salaries++
	}

	l.logger.Info("Fixture loaded",
		zap.Int("materials", res.Materials),
		zap.Int("salaries", res.Salaries),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}

func (l *Loader) salaryExists(ctx context.Context, s *models.Salary) (bool, error) {
	existing, err := l.salaries.ListSalaries(ctx, models.SalaryFilter{SalaryMonth: s.SalaryMonth})
	if err != nil {
		return false, err
	}
	for _, other := range existing {
		if other.StaffName == s.StaffName {
			return true, nil
		}
	}
	return false, nil
}

func (mf MaterialFixture) model() (*models.Material, error) {
	price, err := parseMoney(mf.PricePerUnit)
	if err != nil {
		return nil, fmt.Errorf("price_per_unit: %w", err)
	}
	return &models.Material{
		Name:         mf.Name,
		Unit:         mf.Unit,
		Category:     mf.Category,
		Supplier:     mf.Supplier,
		CurrentStock: mf.CurrentStock,
		MinStock:     mf.MinStock,
		PricePerUnit: price,
	}, nil
}

func (sf SalaryFixture) model() (*models.Salary, error) {
	base, err := parseMoney(sf.BaseSalary)
	if err != nil {
		return nil, fmt.Errorf("base_salary: %w", err)
	}
	paid, err := parseMoney(sf.PaidAmount)
	if err != nil {
		return nil, fmt.Errorf("paid_amount: %w", err)
	}
	return &models.Salary{
		StaffName:   sf.StaffName,
		SalaryMonth: sf.SalaryMonth,
		BaseSalary:  base,
		PaidAmount:  paid,
		Note:        sf.Note,
	}, nil
}

// parseMoney treats an empty string as zero.
func parseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", e.ErrInvalidInput, s)
	}
	return d, nil
}
