package registrationrepo

import (
	"context"
	"errors"

	"shield/internal/core/ports"

	"gorm.io/gorm"
)

// GormRegistrationRepository implements ports.RegistrationStore using GORM.
type GormRegistrationRepository struct {
	db *gorm.DB
}

// NewGormRegistrationRepository creates a new GORM registration repository.
func NewGormRegistrationRepository(db *gorm.DB) *GormRegistrationRepository {
	return &GormRegistrationRepository{db: db}
}

// AddIndividual stores a registration, reporting false when the CHI was
// already registered. A repeat registration leaves the stored record intact.
func (r *GormRegistrationRepository) AddIndividual(
	ctx context.Context, record ports.IndividualRecord,
) (bool, error) {
	var existing IndividualDTO
	err := r.db.WithContext(ctx).First(&existing, "chi = ?", record.CHI).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	dto := fromIndividualRecord(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return false, err
	}

	return true, nil
}

// IndividualExists reports whether a CHI is registered.
func (r *GormRegistrationRepository) IndividualExists(ctx context.Context, chi string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&IndividualDTO{}).
		Where("chi = ?", chi).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// AddBusiness stores a registration, reporting false when a business of that
// kind and name was already registered.
func (r *GormRegistrationRepository) AddBusiness(
	ctx context.Context, record ports.BusinessRecord,
) (bool, error) {
	var existing BusinessDTO
	err := r.db.WithContext(ctx).
		First(&existing, "kind = ? AND name = ?", string(record.Kind), record.Name).
		Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	dto := fromBusinessRecord(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return false, err
	}

	return true, nil
}

// Caterers lists all registered catering companies in registration order.
func (r *GormRegistrationRepository) Caterers(ctx context.Context) ([]ports.BusinessRecord, error) {
	var dtos []BusinessDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "kind = ?", string(ports.BusinessKindCatering)).
		Error
	if err != nil {
		return nil, err
	}

	records := make([]ports.BusinessRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, toBusinessRecord(dto))
	}

	return records, nil
}
