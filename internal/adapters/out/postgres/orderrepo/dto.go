// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the store pattern for orders tracked by the coordination server,
// handling the conversion between port records and database representations.
package orderrepo

import (
	"shield/internal/core/domain/model/order"
	"shield/internal/core/ports"
)

// OrderDTO represents the database structure for persisting catering orders.
// Order numbers are assigned by the database sequence on insert.
type OrderDTO struct {
	ID       int    `gorm:"primaryKey"`
	CHI      string `gorm:"column:chi;size:10;index"`
	Provider string
	Status   int            `gorm:"index"`
	Contents []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one item line of an order.
type OrderItemDTO struct {
	OrderID  int `gorm:"primaryKey"`
	ItemID   int `gorm:"primaryKey"`
	Name     string
	Quantity int
}

// TableName specifies the database table name for order item lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// SupermarketOrderDTO represents an order number assigned by a supermarket's
// own system and recorded with the coordination server for tracking only.
type SupermarketOrderDTO struct {
	ID       int    `gorm:"primaryKey"`
	CHI      string `gorm:"column:chi;size:10;index"`
	Provider string
	Postcode string
	Status   int
}

// TableName specifies the database table name for recorded supermarket orders.
func (SupermarketOrderDTO) TableName() string {
	return "supermarket_orders"
}

// fromRecord converts an order record to its database representation.
func fromRecord(record ports.OrderRecord) OrderDTO {
	contents := make([]OrderItemDTO, 0, len(record.Contents))
	for _, item := range record.Contents {
		contents = append(contents, OrderItemDTO{
			OrderID:  record.ID,
			ItemID:   item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	return OrderDTO{
		ID:       record.ID,
		CHI:      record.CHI,
		Provider: record.Provider,
		Status:   int(record.Status),
		Contents: contents,
	}
}

// toRecord converts a database DTO back to an order record.
func toRecord(dto OrderDTO) (ports.OrderRecord, error) {
	status := order.Status(dto.Status)
	if err := status.Validate(); err != nil {
		return ports.OrderRecord{}, err
	}

	contents := make([]ports.ItemRecord, 0, len(dto.Contents))
	for _, item := range dto.Contents {
		contents = append(contents, ports.ItemRecord{
			ID:       item.ItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	return ports.OrderRecord{
		ID:       dto.ID,
		CHI:      dto.CHI,
		Provider: dto.Provider,
		Status:   status,
		Contents: contents,
	}, nil
}
