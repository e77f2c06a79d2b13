//go:build unit

package customer_test

import (
	"testing"

	"gas-agency/internal/domain/customer"
	"gas-agency/internal/domain/identity"
	"gas-agency/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustValueObjects(t *testing.T) (customer.Name, identity.Email, customer.Phone, customer.Address) {
	t.Helper()
	name, err := customer.NewName("Asha Verma")
	require.NoError(t, err)
	email, err := identity.NewEmail("asha@example.com")
	require.NoError(t, err)
	phone, err := customer.NewPhone("9876543210")
	require.NoError(t, err)
	address, err := customer.NewAddress("12 Gandhi Road, Pune")
	require.NoError(t, err)
	return name, email, phone, address
}

func TestNewCustomer(t *testing.T) {
	name, email, phone, address := mustValueObjects(t)

	c := customer.NewCustomer(name, email, "hash", phone, address)

	assert.NotEqual(t, uuid.Nil, c.ID())
	assert.Equal(t, customer.DefaultAnnualQuota, c.Quota())
	assert.True(t, c.HasRemainingQuota())
}

func TestHasRemainingQuota(t *testing.T) {
	cases := []struct {
		name  string
		quota int
		want  bool
	}{
		{name: "full quota", quota: customer.DefaultAnnualQuota, want: true},
		{name: "one left", quota: 1, want: true},
		{name: "exhausted", quota: 0, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := builder.NewCustomerBuilder().WithQuota(tc.quota).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.HasRemainingQuota())
		})
	}
}

func TestNameValidation(t *testing.T) {
	longName := make([]byte, 101)
	for i := range longName {
		longName[i] = 'a'
	}

	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid name", input: "Asha Verma"},
		{name: "empty name", input: "", errIs: customer.ErrEmptyName},
		{name: "whitespace only", input: "   ", errIs: customer.ErrEmptyName},
		{name: "too long", input: string(longName), errIs: customer.ErrNameTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := customer.NewName(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
