package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB is an in-memory DBClient for unit tests.
type fakeDB struct {
	users map[uuid.UUID]*db.User
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeDB) CreateUser(_ context.Context, name, email, phone string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (f *fakeDB) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDB) CheckEmailExists(_ context.Context, email string) (bool, error) {
	user, _ := f.GetUserByEmail(context.Background(), email)
	return user != nil, nil
}

func (f *fakeDB) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	user, ok := f.users[userID]
	if !ok {
		return &ErrUserNotFound{UserID: userID}
	}
	user.PasswordHash = passwordHash
	user.PasswordSet = true
	return nil
}

func testPasswordConfig() *config.PasswordConfig {
	return &config.PasswordConfig{BcryptCost: 10} // Lower cost for faster tests
}

func TestUserService_Register(t *testing.T) {
	svc := NewUserService(newFakeDB(), testPasswordConfig())

	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, "john@example.com", user.Email)
	assert.True(t, user.PasswordSet)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeDB(), testPasswordConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "First", Email: "dup@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &types.CreateUserRequest{
		Name: "Second", Email: "dup@example.com", Password: "password456",
	})
	require.Error(t, err)

	var exists *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &exists)
}

func TestUserService_Login(t *testing.T) {
	svc := NewUserService(newFakeDB(), testPasswordConfig())
	ctx := context.Background()

	registered, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "John Doe", Email: "john@example.com", Password: "password123",
	})
	require.NoError(t, err)

	user, err := svc.Login(ctx, &types.LoginRequest{
		Email: "john@example.com", Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc := NewUserService(newFakeDB(), testPasswordConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "John Doe", Email: "john@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &types.LoginRequest{
		Email: "john@example.com", Password: "wrong-password",
	})
	require.Error(t, err)

	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc := NewUserService(newFakeDB(), testPasswordConfig())

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email: "nobody@example.com", Password: "password123",
	})
	require.Error(t, err)

	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_UpdatePassword(t *testing.T) {
	svc := NewUserService(newFakeDB(), testPasswordConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "John Doe", Email: "john@example.com", Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePassword(ctx, user.ID, "password123", "newpassword456"))

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "john@example.com", Password: "newpassword456"})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "john@example.com", Password: "password123"})
	assert.Error(t, err)
}

func TestUserService_UpdatePassword_WrongCurrent(t *testing.T) {
	svc := NewUserService(newFakeDB(), testPasswordConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "John Doe", Email: "john@example.com", Password: "password123",
	})
	require.NoError(t, err)

	err = svc.UpdatePassword(ctx, user.ID, "wrong-current", "newpassword456")
	require.Error(t, err)

	var mismatch *ErrPasswordMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc := NewUserService(newFakeDB(), testPasswordConfig())

	_, err := svc.GetProfile(context.Background(), uuid.New())
	require.Error(t, err)

	var notFound *ErrUserNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestConvertDBUserToTypesUser_Nil(t *testing.T) {
	assert.Nil(t, convertDBUserToTypesUser(nil))
}
