package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleCustomer, NormalizeRole("customer"))
	assert.Equal(t, RoleCustomer, NormalizeRole("CUSTOMER"))
	assert.Equal(t, RoleProvider, NormalizeRole("  Provider "))
	assert.Equal(t, RoleAdmin, NormalizeRole("admin"))
	assert.Equal(t, Role("SUPERUSER"), NormalizeRole("superuser"))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleProvider.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("SUPERUSER").IsValid())
	assert.False(t, Role("").IsValid())
	// Normalization happens before validation; the raw lowercase tag alone
	// is not a valid role.
	assert.False(t, Role("customer").IsValid())
}

func TestUser_HasProfile(t *testing.T) {
	userID := uuid.New()

	customer := &User{ID: userID, Role: RoleCustomer}
	assert.False(t, customer.HasProfile())
	customer.CustomerProfile = &CustomerProfile{UserID: userID}
	assert.True(t, customer.HasProfile())

	// The attached profile must match the role tag.
	mismatched := &User{ID: userID, Role: RoleProvider, CustomerProfile: &CustomerProfile{UserID: userID}}
	assert.False(t, mismatched.HasProfile())

	provider := &User{ID: userID, Role: RoleProvider, ProviderProfile: &ProviderProfile{UserID: userID}}
	assert.True(t, provider.HasProfile())

	unknown := &User{ID: userID, Role: Role("SUPERUSER")}
	assert.False(t, unknown.HasProfile())
}
