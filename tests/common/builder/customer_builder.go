//go:build unit || e2e

package builder

import (
	"time"

	"gas-agency/internal/domain/customer"
	"gas-agency/internal/domain/identity"
	"gas-agency/internal/usecase/queries"
	"gas-agency/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	id      uuid.UUID
	name    string
	email   string
	phone   string
	address string
	quota   int
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		id:      uuid.New(),
		name:    "Asha Verma",
		email:   "asha@example.com",
		phone:   "9876543210",
		address: "12 Gandhi Road, Pune",
		quota:   customer.DefaultAnnualQuota,
	}
}

func (b *CustomerBuilder) WithID(id uuid.UUID) *CustomerBuilder {
	b.id = id
	return b
}

func (b *CustomerBuilder) WithName(name string) *CustomerBuilder {
	b.name = name
	return b
}

func (b *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	b.email = email
	return b
}

func (b *CustomerBuilder) WithQuota(quota int) *CustomerBuilder {
	b.quota = quota
	return b
}

func (b *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	name, err := customer.NewName(b.name)
	if err != nil {
		return nil, err
	}
	email, err := identity.NewEmail(b.email)
	if err != nil {
		return nil, err
	}
	phone, err := customer.NewPhone(b.phone)
	if err != nil {
		return nil, err
	}
	address, err := customer.NewAddress(b.address)
	if err != nil {
		return nil, err
	}
	return customer.ReconstructCustomer(
		b.id, name, email, "$2a$10$fakehashfakehashfakehash", phone, address, b.quota, time.Now(),
	), nil
}

func (b *CustomerBuilder) BuildSnapshot() *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:    b.id,
		Name:  b.name,
		Email: b.email,
		Quota: b.quota,
	}
}

func (b *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{
		ID:        b.id,
		Name:      b.name,
		Email:     b.email,
		Phone:     b.phone,
		Address:   b.address,
		Quota:     b.quota,
		CreatedAt: time.Now(),
	}
}
