// Package business provides the domain model for the two business actors of
// the shielding program, catering companies and supermarkets, and for the
// catalog view of catering companies an individual caches locally.
package business

import (
	"shield/internal/pkg/errs"
)

// Company is an individual's cached view of a catering company from the
// coordination service's catalog: just a name and a postcode. It is distinct
// from Business, which is the identity a business-role client holds for
// itself.
//
// The postcode is kept verbatim; it is validated when it is actually used in
// a distance query, not when the catalog is cached, so one malformed catalog
// entry cannot poison the whole fetch.
type Company struct {
	name     string
	postcode string
}

// NewCompany creates a catalog entry. Both fields are required.
func NewCompany(name string, postcode string) (Company, error) {
	if name == "" {
		return Company{}, errs.NewValueIsRequiredError("company name")
	}

	if postcode == "" {
		return Company{}, errs.NewValueIsRequiredError("company postcode")
	}

	return Company{name: name, postcode: postcode}, nil
}

// Name returns the company's business name.
func (c Company) Name() string {
	return c.name
}

// Postcode returns the company's postcode as published in the catalog.
func (c Company) Postcode() string {
	return c.postcode
}

// Business is the identity a catering-company or supermarket client holds for
// the single business actor it represents. At most one per client instance.
//
// Identity fields are only populated from a "registered new" exchange. A
// client that observes "already registered" before ever supplying its own
// identity reports registered with name and postcode left unset; the
// coordination service never echoes them back.
type Business struct {
	name       string
	postcode   string
	registered bool
}

// IsRegistered reports whether the business is registered with the service.
func (b *Business) IsRegistered() bool {
	return b.registered
}

// Name returns the business name, or "" when the identity is unknown.
func (b *Business) Name() string {
	return b.name
}

// Postcode returns the business postcode, or "" when the identity is unknown.
func (b *Business) Postcode() string {
	return b.postcode
}

// RecordRegistration stores the identity confirmed by a "registered new"
// reply. Once registered, later calls leave the identity untouched.
func (b *Business) RecordRegistration(name string, postcode string) {
	if b.registered {
		return
	}

	b.name = name
	b.postcode = postcode
	b.registered = true
}

// RecordExistingRegistration marks the business registered after an
// "already registered" reply without touching the identity fields.
func (b *Business) RecordExistingRegistration() {
	b.registered = true
}
