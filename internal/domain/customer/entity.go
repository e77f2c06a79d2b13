package customer

import (
	"time"

	"gas-agency/internal/domain/identity"

	"github.com/google/uuid"
)

// DefaultAnnualQuota is the number of cylinders a freshly registered customer
// may book in the current cycle. Replenishment happens out of band.
const DefaultAnnualQuota = 12

// Customer aggregates the profile and the quota ledger entry. The quota field
// is only ever decremented inside the booking unit of work; nothing else may
// write it.
type Customer struct {
	id           uuid.UUID
	name         Name
	email        identity.Email
	passwordHash string
	phone        Phone
	address      Address
	quota        int
	createdAt    time.Time
}

func NewCustomer(name Name, email identity.Email, passwordHash string, phone Phone, address Address) *Customer {
	return &Customer{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		address:      address,
		quota:        DefaultAnnualQuota,
	}
}

func ReconstructCustomer(
	id uuid.UUID,
	name Name,
	email identity.Email,
	passwordHash string,
	phone Phone,
	address Address,
	quota int,
	createdAt time.Time,
) *Customer {
	return &Customer{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		address:      address,
		quota:        quota,
		createdAt:    createdAt,
	}
}

func (c *Customer) HasRemainingQuota() bool {
	return c.quota > 0
}

func (c *Customer) ID() uuid.UUID         { return c.id }
func (c *Customer) Name() Name            { return c.name }
func (c *Customer) Email() identity.Email { return c.email }
func (c *Customer) PasswordHash() string  { return c.passwordHash }
func (c *Customer) Phone() Phone          { return c.phone }
func (c *Customer) Address() Address      { return c.address }
func (c *Customer) Quota() int            { return c.quota }
func (c *Customer) CreatedAt() time.Time  { return c.createdAt }
