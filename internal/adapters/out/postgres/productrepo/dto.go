// Package productrepo persists the product catalog and serves it through an LRU cache.
package productrepo

import (
	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CategoryDTO is a product category. Categories are created on first use.
type CategoryDTO struct {
	Name          string          `gorm:"primaryKey"`
	TaxPercentage decimal.Decimal `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// ProductDTO is a catalog product, keyed by its unique name.
type ProductDTO struct {
	Name         string          `gorm:"primaryKey"`
	Price        decimal.Decimal `gorm:"type:numeric;not null"`
	CategoryName string          `gorm:"not null;index"`
	Category     CategoryDTO     `gorm:"foreignKey:CategoryName;references:Name"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(product catalog.Product) ProductDTO {
	category := product.Category()
	return ProductDTO{
		Name:         product.Name(),
		Price:        product.Price().Amount(),
		CategoryName: category.Name(),
		Category: CategoryDTO{
			Name:          category.Name(),
			TaxPercentage: category.TaxRate().Percentage(),
		},
	}
}

func toDomain(dto ProductDTO) (catalog.Product, error) {
	rate, err := kernel.NewTaxRate(dto.Category.TaxPercentage)
	if err != nil {
		return catalog.Product{}, err
	}
	category, err := catalog.NewCategory(dto.Category.Name, rate)
	if err != nil {
		return catalog.Product{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return catalog.Product{}, err
	}
	return catalog.NewProduct(dto.Name, price, category)
}
