// Package catalogrepo persists the published food-box catalog for the
// coordination server.
package catalogrepo

import (
	"shield/internal/core/ports"
)

// FoodBoxDTO represents the database structure for one catalog entry.
type FoodBoxDTO struct {
	ID          int `gorm:"primaryKey"`
	Name        string
	Diet        string `gorm:"index"`
	DeliveredBy string
	Contents    []FoodBoxItemDTO `gorm:"foreignKey:FoodBoxID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for catalog entries.
func (FoodBoxDTO) TableName() string {
	return "food_boxes"
}

// FoodBoxItemDTO represents one item line of a catalog entry.
type FoodBoxItemDTO struct {
	FoodBoxID int `gorm:"primaryKey"`
	ItemID    int `gorm:"primaryKey"`
	Name      string
	Quantity  int
}

// TableName specifies the database table name for catalog item lines.
func (FoodBoxItemDTO) TableName() string {
	return "food_box_items"
}

// fromRecord converts a catalog record to its database representation.
func fromRecord(record ports.FoodBoxRecord) FoodBoxDTO {
	contents := make([]FoodBoxItemDTO, 0, len(record.Contents))
	for _, item := range record.Contents {
		contents = append(contents, FoodBoxItemDTO{
			FoodBoxID: record.ID,
			ItemID:    item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
		})
	}

	return FoodBoxDTO{
		ID:          record.ID,
		Name:        record.Name,
		Diet:        record.Diet,
		DeliveredBy: record.DeliveredBy,
		Contents:    contents,
	}
}

// toRecord converts a database DTO back to a catalog record.
func toRecord(dto FoodBoxDTO) ports.FoodBoxRecord {
	contents := make([]ports.ItemRecord, 0, len(dto.Contents))
	for _, item := range dto.Contents {
		contents = append(contents, ports.ItemRecord{
			ID:       item.ItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	return ports.FoodBoxRecord{
		ID:          dto.ID,
		Name:        dto.Name,
		Diet:        dto.Diet,
		DeliveredBy: dto.DeliveredBy,
		Contents:    contents,
	}
}
