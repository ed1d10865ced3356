// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"venuebook/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// UserType selects the profile variant; the role-specific fields below are
// required only for their own role.
type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	UserType    string `json:"user_type" validate:"required"`

	// CUSTOMER fields.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// PROVIDER fields. Only CompanyName is required for providers.
	CompanyName                string `json:"company_name"`
	BusinessRegistrationNumber string `json:"business_registration_number"`
	TaxID                      string `json:"tax_id"`
	BusinessAddress            string `json:"business_address"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued identity token after a successful login.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	// Register validates the input, creates the user row and exactly one
	// role-matching profile row as a single atomic unit.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues an identity token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
