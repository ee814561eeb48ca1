package usecase

import (
	"context"
	"fmt"
	"testing"

	config "github.com/meetingmind/backend/config/sso"
	"github.com/meetingmind/backend/pkg/jwt"
	"github.com/meetingmind/backend/services/sso/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeStorage struct {
	users    map[string]*entity.User
	profiles map[string]*entity.Profile

	getProfileErr    error
	createProfileErr error
	created          int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		users:    make(map[string]*entity.User),
		profiles: make(map[string]*entity.Profile),
	}
}

func (f *fakeStorage) CreateUser(ctx context.Context, req *entity.RegisterRequest) (*entity.User, error) {
	user := &entity.User{
		ID:       fmt.Sprintf("user-%d", len(f.users)+1),
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeStorage) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (f *fakeStorage) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

func (f *fakeStorage) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	if f.getProfileErr != nil {
		return nil, f.getProfileErr
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile not found")
	}
	return p, nil
}

func (f *fakeStorage) CreateProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	if f.createProfileErr != nil {
		return nil, f.createProfileErr
	}
	f.created++
	p := &entity.Profile{UserID: userID, IsPro: false}
	f.profiles[userID] = p
	return p, nil
}

func (f *fakeStorage) SetProfilePro(ctx context.Context, userID string, isPro bool) (*entity.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile not found")
	}
	p.IsPro = isPro
	return p, nil
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	stg := newFakeStorage()
	usc := New(testConfig(), stg)

	resp, err := usc.Register(ctx, &entity.RegisterRequest{
		Name:            "Alice",
		Email:           "alice@example.com",
		Password:        "secret",
		PasswordConfirm: "secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, err := jwt.ParseUserID(ctx, resp.Token, "test-secret")
	require.NoError(t, err)

	loginResp, err := usc.Login(ctx, &entity.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	loginUserID, err := jwt.ParseUserID(ctx, loginResp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, userID, loginUserID)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	usc := New(testConfig(), newFakeStorage())

	_, err := usc.Register(context.Background(), &entity.RegisterRequest{
		Name:            "Alice",
		Email:           "alice@example.com",
		Password:        "secret",
		PasswordConfirm: "other",
	})
	assert.Error(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	stg := newFakeStorage()
	usc := New(testConfig(), stg)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	stg.users["user-1"] = &entity.User{
		ID:       "user-1",
		Email:    "bob@example.com",
		Password: string(hash),
	}

	_, err = usc.Login(ctx, &entity.LoginRequest{
		Email:    "bob@example.com",
		Password: "wrong",
	})
	assert.Error(t, err)
}

func TestGetProfile_Existing(t *testing.T) {
	ctx := context.Background()
	stg := newFakeStorage()
	stg.profiles["user-1"] = &entity.Profile{UserID: "user-1", IsPro: true}
	usc := New(testConfig(), stg)

	profile, err := usc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, profile.IsPro)
	assert.Zero(t, stg.created)
}

func TestGetProfile_MissingRowIsCreated(t *testing.T) {
	ctx := context.Background()
	stg := newFakeStorage()
	usc := New(testConfig(), stg)

	profile, err := usc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.UserID)
	assert.False(t, profile.IsPro)
	assert.Equal(t, 1, stg.created)
}

func TestGetProfile_SynthesizedWhenCreateFails(t *testing.T) {
	ctx := context.Background()
	stg := newFakeStorage()
	stg.createProfileErr = fmt.Errorf("db down")
	usc := New(testConfig(), stg)

	profile, err := usc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.UserID)
	assert.False(t, profile.IsPro)
}

func TestUpgradeProfile(t *testing.T) {
	ctx := context.Background()
	stg := newFakeStorage()
	usc := New(testConfig(), stg)

	profile, err := usc.UpgradeProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, profile.IsPro)

	// The read after the upgrade must keep the flag.
	profile, err = usc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, profile.IsPro)
}
