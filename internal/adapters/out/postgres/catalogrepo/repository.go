package catalogrepo

import (
	"context"

	"shield/internal/core/ports"

	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogStore using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// FoodBoxesByDiet lists catalog entries for a dietary category in catalog order.
func (r *GormCatalogRepository) FoodBoxesByDiet(
	ctx context.Context, diet string,
) ([]ports.FoodBoxRecord, error) {
	var dtos []FoodBoxDTO
	err := r.db.WithContext(ctx).
		Preload("Contents").
		Order("id").
		Find(&dtos, "diet = ?", diet).
		Error
	if err != nil {
		return nil, err
	}

	records := make([]ports.FoodBoxRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, toRecord(dto))
	}

	return records, nil
}

// SeedFoodBoxes replaces the catalog with the supplied entries.
func (r *GormCatalogRepository) SeedFoodBoxes(ctx context.Context, boxes []ports.FoodBoxRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&FoodBoxItemDTO{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&FoodBoxDTO{}).Error; err != nil {
			return err
		}

		if len(boxes) == 0 {
			return nil
		}

		dtos := make([]FoodBoxDTO, 0, len(boxes))
		for _, box := range boxes {
			dtos = append(dtos, fromRecord(box))
		}

		return tx.Create(&dtos).Error
	})
}
