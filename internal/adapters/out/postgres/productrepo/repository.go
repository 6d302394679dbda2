package productrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ProductRepository and InventoryLedger using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add inserts a product. Catalog management lives elsewhere; this is used for
// seeding and tests.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	return r.get(ctx, r.db, id)
}

// Update writes the product stock.
func (r *GormProductRepository) Update(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", p.ID().Bytes()).
		Update("stock", p.Stock())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", p.ID().String())
	}

	return nil
}

// Reserve locks the product row with SELECT ... FOR UPDATE, checks and decrements
// the stock and writes it back. Concurrent reservations of one product wait on the
// lock and observe the decremented stock once the holder commits.
func (r *GormProductRepository) Reserve(ctx context.Context, productID kernel.UUID, quantity int) (*product.Product, error) {
	p, err := r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), productID)
	if err != nil {
		return nil, err
	}

	if err = p.Reserve(quantity); err != nil {
		return nil, err
	}

	if err = r.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *GormProductRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
