package impl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"venuebook/internal/domain/entity"
	"venuebook/internal/domain/repository"
	"venuebook/internal/domain/service"
)

// Hand-written testify doubles for the repository and service interfaces.

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)

	return args.Error(0)
}

type mockProfileRepository struct {
	mock.Mock
}

func (m *mockProfileRepository) CreateCustomerProfile(ctx context.Context, profile *entity.CustomerProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *mockProfileRepository) CreateProviderProfile(ctx context.Context, profile *entity.ProviderProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

type mockVenueRepository struct {
	mock.Mock
}

func (m *mockVenueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	args := m.Called(ctx, venue)

	return args.Error(0)
}

func (m *mockVenueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	args := m.Called(ctx, id)
	if venue := args.Get(0); venue != nil {
		return venue.(*entity.Venue), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockLookupRepository struct {
	mock.Mock
}

func (m *mockLookupRepository) ListCategories(ctx context.Context) ([]entity.VenueCategory, error) {
	args := m.Called(ctx)
	if categories := args.Get(0); categories != nil {
		return categories.([]entity.VenueCategory), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockLookupRepository) ListAmenities(ctx context.Context) ([]entity.Amenity, error) {
	args := m.Called(ctx)
	if amenities := args.Get(0); amenities != nil {
		return amenities.([]entity.Amenity), args.Error(1)
	}

	return nil, args.Error(1)
}

// fakeTransactionManager executes the callback synchronously against the
// given repositories, mirroring commit/rollback by propagating the
// callback's error.
type fakeTransactionManager struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	venueRepo   repository.VenueRepository

	executed bool
}

func (f *fakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	f.executed = true

	return fn(f)
}

func (f *fakeTransactionManager) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *fakeTransactionManager) ProfileRepo() repository.ProfileRepository {
	return f.profileRepo
}

func (f *fakeTransactionManager) VenueRepo() repository.VenueRepository {
	return f.venueRepo
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID uuid.UUID, role string) (string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Resolve(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims := args.Get(0); claims != nil {
		return claims.(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}
