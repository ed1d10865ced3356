// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"venuebook/internal/delivery/http/middleware"
	"venuebook/internal/delivery/http/response"
	"venuebook/internal/domain/entity"
	"venuebook/internal/usecase"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	userUC    usecase.UserUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, profileUC usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUC:    userUC,
		profileUC: profileUC,
		logger:    logger,
	}
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Only the public identity fields go back; never the password hash.
	return response.Success(c, http.StatusCreated, map[string]any{
		"user": map[string]any{
			"id":        output.User.ID,
			"email":     output.User.Email,
			"user_type": output.User.Role,
		},
	}, "User registered successfully")
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// GetProfile returns the caller's account with the role-shaped profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileView(user), "Profile retrieved successfully")
}

// profileView is the role-shaped wire form of an account.
type profileView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	UserType    string    `json:"user_type"`
	IsActive    bool      `json:"is_active"`
	Profile     any       `json:"profile"`
}

func toProfileView(user *entity.User) profileView {
	view := profileView{
		ID:          user.ID,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		UserType:    user.Role.String(),
		IsActive:    user.IsActive,
	}

	switch user.Role {
	case entity.RoleCustomer:
		if p := user.CustomerProfile; p != nil {
			view.Profile = map[string]any{
				"first_name":          p.FirstName,
				"last_name":           p.LastName,
				"profile_picture_url": p.ProfilePictureURL,
			}
		}
	case entity.RoleProvider:
		if p := user.ProviderProfile; p != nil {
			view.Profile = map[string]any{
				"company_name":                 p.CompanyName,
				"business_registration_number": p.BusinessRegistrationNumber,
				"tax_id":                       p.TaxID,
				"business_address":             p.BusinessAddress,
				"is_verified":                  p.IsVerified,
			}
		}
	case entity.RoleAdmin:
		if p := user.AdminProfile; p != nil {
			view.Profile = map[string]any{
				"full_name":        p.FullName,
				"permission_level": p.PermissionLevel,
			}
		}
	}

	return view
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
