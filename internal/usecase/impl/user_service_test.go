package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"venuebook/internal/domain/entity"
	domainerrors "venuebook/internal/domain/errors"
	"venuebook/internal/domain/repository"
	"venuebook/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *fakeTransactionManager
	userRepo     *mockUserRepository
	profileRepo  *mockProfileRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	profileRepo := &mockProfileRepository{}
	hasher := &mockPasswordHasher{}
	tokenService := &mockTokenService{}
	txManager := &fakeTransactionManager{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(txManager, userRepo, hasher, tokenService, logger)

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validCustomerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:       "customer@example.com",
		Password:    "Password123!",
		PhoneNumber: "555-0100",
		UserType:    "customer",
		FirstName:   "Ada",
		LastName:    "Lovelace",
	}
}

func validProviderInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:       "provider@example.com",
		Password:    "Password123!",
		PhoneNumber: "555-0101",
		UserType:    "PROVIDER",
		CompanyName: "Grand Events Ltd",
	}
}

func TestUserService_Register_CustomerSuccess(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := validCustomerInput()
	generatedID := uuid.New()

	f.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	f.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	f.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = generatedID
		}).
		Return(nil)
	f.profileRepo.On("CreateCustomerProfile", ctx, mock.AnythingOfType("*entity.CustomerProfile")).Return(nil)

	output, err := f.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, generatedID, output.User.ID)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	require.NotNil(t, output.User.CustomerProfile)
	assert.Equal(t, generatedID, output.User.CustomerProfile.UserID)
	assert.Equal(t, "Ada", output.User.CustomerProfile.FirstName)
	assert.Nil(t, output.User.ProviderProfile)
	f.userRepo.AssertExpectations(t)
	f.profileRepo.AssertExpectations(t)
}

func TestUserService_Register_ProviderSuccess(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := validProviderInput()

	f.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	f.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	f.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = uuid.New()
		}).
		Return(nil)
	f.profileRepo.On("CreateProviderProfile", ctx, mock.AnythingOfType("*entity.ProviderProfile")).Return(nil)

	output, err := f.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleProvider, output.User.Role)
	require.NotNil(t, output.User.ProviderProfile)
	assert.Equal(t, "Grand Events Ltd", output.User.ProviderProfile.CompanyName)
	assert.False(t, output.User.ProviderProfile.IsVerified)
	f.profileRepo.AssertExpectations(t)
}

func TestUserService_Register_RoleIsCaseInsensitive(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := validCustomerInput()
	input.UserType = "  Customer "

	f.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	f.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	f.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	f.profileRepo.On("CreateCustomerProfile", ctx, mock.AnythingOfType("*entity.CustomerProfile")).Return(nil)

	output, err := f.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*usecase.RegisterInput)
	}{
		{"missing email", func(in *usecase.RegisterInput) { in.Email = "" }},
		{"missing password", func(in *usecase.RegisterInput) { in.Password = "" }},
		{"missing phone number", func(in *usecase.RegisterInput) { in.PhoneNumber = "" }},
		{"missing user type", func(in *usecase.RegisterInput) { in.UserType = "" }},
		{"customer without first name", func(in *usecase.RegisterInput) { in.FirstName = "" }},
		{"customer without last name", func(in *usecase.RegisterInput) { in.LastName = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := createTestUserService(t)
			input := validCustomerInput()
			tc.mutate(input)

			output, err := f.service.Register(context.Background(), input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrValidation))
			// Nothing may reach storage on invalid input.
			assert.False(t, f.txManager.executed)
			f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_Register_ProviderRequiresCompanyName(t *testing.T) {
	f := createTestUserService(t)
	input := validProviderInput()
	input.CompanyName = ""

	_, err := f.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
	assert.False(t, f.txManager.executed)
}

func TestUserService_Register_UnknownRoleRollsBack(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := validCustomerInput()
	input.UserType = "superuser"

	f.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	f.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	f.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := f.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// The user row was written inside the transaction, then the unknown role
	// failed the callback, which rolls the whole transaction back.
	assert.True(t, f.txManager.executed)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
	f.profileRepo.AssertNotCalled(t, "CreateCustomerProfile", mock.Anything, mock.Anything)
	f.profileRepo.AssertNotCalled(t, "CreateProviderProfile", mock.Anything, mock.Anything)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := validCustomerInput()

	existing := &entity.User{ID: uuid.New(), Email: input.Email}
	f.userRepo.On("FindByEmail", ctx, input.Email).Return(existing, nil)

	output, err := f.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	assert.False(t, f.txManager.executed)
}

func TestUserService_Register_ProfileWriteFailureRollsBack(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := validCustomerInput()

	f.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	f.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	f.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	f.profileRepo.On("CreateCustomerProfile", ctx, mock.AnythingOfType("*entity.CustomerProfile")).
		Return(domainerrors.NewStorageError(errors.New("insert failed"), "failed to create customer profile"))

	output, err := f.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestUserService_Login_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:           userID,
		Email:        "customer@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	f.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	f.hasher.On("Check", "Password123!", "hashed_password").Return(true)
	f.tokenService.On("Issue", userID, "CUSTOMER").Return("signed.token", nil)
	f.userRepo.On("UpdateLastLogin", ctx, userID, mock.AnythingOfType("time.Time")).Return(nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "signed.token", output.AccessToken)
	f.userRepo.AssertExpectations(t)
	f.tokenService.AssertExpectations(t)
}

func TestUserService_Login_UniformFailure(t *testing.T) {
	// Unknown email and wrong password must be indistinguishable.
	t.Run("unknown email", func(t *testing.T) {
		f := createTestUserService(t)
		ctx := context.Background()

		f.userRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		output, err := f.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		f := createTestUserService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Email: "customer@example.com", PasswordHash: "hashed_password"}

		f.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
		f.hasher.On("Check", "wrong", "hashed_password").Return(false)

		output, err := f.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		f.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})
}

func TestUserService_Login_MissingFields(t *testing.T) {
	f := createTestUserService(t)

	_, err := f.service.Login(context.Background(), &usecase.LoginInput{Email: "", Password: ""})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
	f.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestUserService_Login_LastLoginStampFailureIsNonFatal(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "customer@example.com", PasswordHash: "hashed_password", Role: entity.RoleCustomer}

	f.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	f.hasher.On("Check", "Password123!", "hashed_password").Return(true)
	f.tokenService.On("Issue", user.ID, "CUSTOMER").Return("signed.token", nil)
	f.userRepo.On("UpdateLastLogin", ctx, user.ID, mock.AnythingOfType("time.Time")).
		Return(domainerrors.NewStorageError(errors.New("update failed"), "failed to update last login"))

	output, err := f.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "signed.token", output.AccessToken)
}

func TestUserService_Login_StampsLastLoginWithCurrentTime(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "customer@example.com", PasswordHash: "hashed_password", Role: entity.RoleCustomer}

	before := time.Now()
	f.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	f.hasher.On("Check", "Password123!", "hashed_password").Return(true)
	f.tokenService.On("Issue", user.ID, "CUSTOMER").Return("signed.token", nil)
	f.userRepo.On("UpdateLastLogin", ctx, user.ID, mock.MatchedBy(func(at time.Time) bool {
		return !at.Before(before) && !at.After(time.Now())
	})).Return(nil)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	f.userRepo.AssertExpectations(t)
}
