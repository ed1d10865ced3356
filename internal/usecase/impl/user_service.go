// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"venuebook/internal/domain/entity"
	domainerrors "venuebook/internal/domain/errors"
	"venuebook/internal/domain/repository"
	"venuebook/internal/domain/service"
	"venuebook/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all
// dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register orchestrates the complete registration process: input validation,
// uniqueness check, password hashing, and the atomic user-plus-profile write.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	role := entity.NormalizeRole(input.UserType)
	srv.logger.Info("Starting registration", slog.String("email", input.Email), slog.Any("role", role))

	if err := validateRegisterInput(input, role); err != nil {
		srv.logger.Warn("Registration input rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Pre-check for a friendlier conflict response. The unique constraint on
	// users.email remains the arbiter under concurrent registrations.
	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailTaken.WrapMessage("email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		PhoneNumber:  input.PhoneNumber,
		Role:         role,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return srv.createRoleProfile(ctx, profileRepo, newUser, input)
	})

	if err != nil {
		srv.logger.Warn("Registration transaction failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", newUser.ID), slog.Any("role", newUser.Role))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// createRoleProfile writes the profile row matching the freshly created
// user's role. Any role outside {CUSTOMER, PROVIDER} fails the transaction,
// rolling the user row back with it.
func (srv *userService) createRoleProfile(
	ctx context.Context,
	profileRepo repository.ProfileRepository,
	user *entity.User,
	input *usecase.RegisterInput,
) error {
	switch user.Role {
	case entity.RoleCustomer:
		profile := &entity.CustomerProfile{
			UserID:    user.ID,
			FirstName: input.FirstName,
			LastName:  input.LastName,
		}
		if err := profileRepo.CreateCustomerProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create customer profile")
		}
		user.CustomerProfile = profile

		return nil
	case entity.RoleProvider:
		profile := &entity.ProviderProfile{
			UserID:                     user.ID,
			CompanyName:                input.CompanyName,
			BusinessRegistrationNumber: input.BusinessRegistrationNumber,
			TaxID:                      input.TaxID,
			BusinessAddress:            input.BusinessAddress,
		}
		if err := profileRepo.CreateProviderProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create provider profile")
		}
		user.ProviderProfile = profile

		return nil
	default:
		return domainerrors.ErrValidation.WrapMessage("invalid role for profile creation")
	}
}

// validateRegisterInput enforces the presence rules before any row is
// written. Role-specific fields are only required for their own role.
func validateRegisterInput(input *usecase.RegisterInput, role entity.Role) error {
	if input.Email == "" || input.Password == "" || input.PhoneNumber == "" || input.UserType == "" {
		return domainerrors.ErrValidation.WrapMessage("email, password, phone_number and user_type are required")
	}
	if role == entity.RoleCustomer && (input.FirstName == "" || input.LastName == "") {
		return domainerrors.ErrValidation.WrapMessage("customer registration requires first_name and last_name")
	}
	if role == entity.RoleProvider && input.CompanyName == "" {
		return domainerrors.ErrValidation.WrapMessage("provider registration requires company_name")
	}

	return nil
}

// Login verifies credentials and issues an identity token. Unknown email and
// wrong password produce the same error so callers cannot probe for account
// existence.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", slog.String("email", input.Email))

	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidation.WrapMessage("email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt comparison is CPU-bound; it runs outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.Issue(user.ID, user.Role.String())
	if err != nil {
		srv.logger.Error("Failed to issue token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue identity token")
	}

	// A failed stamp must not invalidate an otherwise successful login.
	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		srv.logger.Warn("Failed to update last login", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	srv.logger.Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{AccessToken: accessToken}, nil
}
