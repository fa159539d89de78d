// Package registrationrepo persists individual and business registrations for
// the coordination server.
package registrationrepo

import (
	"shield/internal/core/ports"
)

// IndividualDTO represents the database structure for a shielding individual's
// registration. The CHI is the natural key.
type IndividualDTO struct {
	CHI         string `gorm:"primaryKey;size:10"`
	Postcode    string
	Name        string
	Surname     string
	PhoneNumber string
}

// TableName specifies the database table name for individual registrations.
func (IndividualDTO) TableName() string {
	return "individuals"
}

// BusinessDTO represents the database structure for a catering company or
// supermarket registration. The surrogate ID preserves registration order;
// a kind plus name identifies a business.
type BusinessDTO struct {
	ID       uint   `gorm:"primaryKey"`
	Kind     string `gorm:"uniqueIndex:idx_business_identity"`
	Name     string `gorm:"uniqueIndex:idx_business_identity"`
	Postcode string
}

// TableName specifies the database table name for business registrations.
func (BusinessDTO) TableName() string {
	return "businesses"
}

// fromIndividualRecord converts a registration record to its database representation.
func fromIndividualRecord(record ports.IndividualRecord) IndividualDTO {
	return IndividualDTO{
		CHI:         record.CHI,
		Postcode:    record.Postcode,
		Name:        record.Name,
		Surname:     record.Surname,
		PhoneNumber: record.PhoneNumber,
	}
}

// fromBusinessRecord converts a registration record to its database representation.
func fromBusinessRecord(record ports.BusinessRecord) BusinessDTO {
	return BusinessDTO{
		Kind:     string(record.Kind),
		Name:     record.Name,
		Postcode: record.Postcode,
	}
}

// toBusinessRecord converts a database DTO back to a registration record.
func toBusinessRecord(dto BusinessDTO) ports.BusinessRecord {
	return ports.BusinessRecord{
		Kind:     ports.BusinessKind(dto.Kind),
		Name:     dto.Name,
		Postcode: dto.Postcode,
	}
}
