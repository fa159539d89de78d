package orderrepo

import (
	"context"
	"errors"
	"strconv"

	"shield/internal/core/domain/model/order"
	"shield/internal/core/ports"
	"shield/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderStore using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Place saves a new order and returns the number the database assigned to it.
// The stored status is always None regardless of the supplied record.
func (r *GormOrderRepository) Place(ctx context.Context, record ports.OrderRecord) (int, error) {
	record.ID = 0
	record.Status = order.None

	dto := fromRecord(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}

// Get retrieves an order by number, item lines included.
func (r *GormOrderRepository) Get(ctx context.Context, id int) (ports.OrderRecord, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Contents").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.OrderRecord{}, errs.NewObjectNotFoundError("order", strconv.Itoa(id))
		}
		return ports.OrderRecord{}, err
	}

	return toRecord(dto)
}

// UpdateContents replaces an order's item lines.
func (r *GormOrderRepository) UpdateContents(ctx context.Context, id int, contents []ports.ItemRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dto OrderDTO
		if err := tx.First(&dto, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("order", strconv.Itoa(id))
			}
			return err
		}

		if err := tx.Delete(&OrderItemDTO{}, "order_id = ?", id).Error; err != nil {
			return err
		}

		if len(contents) == 0 {
			return nil
		}

		items := make([]OrderItemDTO, 0, len(contents))
		for _, item := range contents {
			items = append(items, OrderItemDTO{
				OrderID:  id,
				ItemID:   item.ID,
				Name:     item.Name,
				Quantity: item.Quantity,
			})
		}

		return tx.Create(&items).Error
	})
}

// UpdateStatus sets an order's status.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id int, status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id).
		Update("status", int(status))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", strconv.Itoa(id))
	}

	return nil
}

// ActiveOrders lists orders that are neither delivered nor cancelled, in
// placement order.
func (r *GormOrderRepository) ActiveOrders(ctx context.Context) ([]ports.OrderRecord, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Contents").
		Order("id").
		Find(&dtos, "status NOT IN ?", []int{int(order.Delivered), int(order.Cancelled)}).
		Error
	if err != nil {
		return nil, err
	}

	records := make([]ports.OrderRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toRecord(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// RecordSupermarketOrder stores an externally assigned order number under a
// supermarket's identity. The number must not already be recorded.
func (r *GormOrderRepository) RecordSupermarketOrder(
	ctx context.Context, chi string, id int, name string, postcode string,
) error {
	dto := SupermarketOrderDTO{
		ID:       id,
		CHI:      chi,
		Provider: name,
		Postcode: postcode,
		Status:   int(order.None),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateSupermarketOrderStatus sets a recorded supermarket order's status.
func (r *GormOrderRepository) UpdateSupermarketOrderStatus(
	ctx context.Context, id int, status order.Status,
) error {
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&SupermarketOrderDTO{}).
		Where("id = ?", id).
		Update("status", int(status))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("supermarket order", strconv.Itoa(id))
	}

	return nil
}
