package productrepo

import (
	"context"
	"errors"
	"fmt"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add stores the product and creates its category if needed. An existing category must
// carry the same tax rate, and the product name must be new.
func (r *GormProductRepository) Add(ctx context.Context, product catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromDomain(product)
	db := r.db.WithContext(ctx)

	var existing CategoryDTO
	err := db.Where("name = ?", dto.CategoryName).
		Attrs(dto.Category).
		FirstOrCreate(&existing).Error
	if err != nil {
		return err
	}
	if !existing.TaxPercentage.Equal(dto.Category.TaxPercentage) {
		return fmt.Errorf("%w: %s has %s%%", catalog.ErrCategoryTaxRateConflict,
			existing.Name, existing.TaxPercentage.String())
	}

	var count int64
	if err = db.Model(&ProductDTO{}).Where("name = ?", dto.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", catalog.ErrProductAlreadyExists, dto.Name)
	}

	return db.Omit("Category").Create(&dto).Error
}

// FindByName returns the product with its category.
func (r *GormProductRepository) FindByName(ctx context.Context, name string) (catalog.Product, error) {
	var dto ProductDTO
	err := r.db.WithContext(ctx).Preload("Category").First(&dto, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Product{}, errs.NewObjectNotFoundError("product", name)
		}
		return catalog.Product{}, err
	}

	return toDomain(dto)
}

// FindByNames loads every known product among names in one query.
func (r *GormProductRepository) FindByNames(ctx context.Context, names []string) (map[string]catalog.Product, error) {
	products := make(map[string]catalog.Product, len(names))
	if len(names) == 0 {
		return products, nil
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Preload("Category").Where("name IN ?", names).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		product, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products[product.Name()] = product
	}

	return products, nil
}
