package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gpushare/market-go/internal/api/middleware"
	"github.com/gpushare/market-go/internal/config"
	"github.com/gpushare/market-go/internal/domain/profile"
	"github.com/gpushare/market-go/internal/repository"
	"github.com/gpushare/market-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
func setupProfileServiceMocks(t *testing.T) (*ProfileService, *mock.MockProfileRepo, *mock.MockActivityRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	config.DemoLoginCode = "123456"

	mockProfile := mock.NewMockProfileRepo(ctrl)
	mockActivity := mock.NewMockActivityRepo(ctrl)
	repos := &repository.Repos{
		Profile:  mockProfile,
		Activity: mockActivity,
	}
	svc := NewProfileService(repos, NewActivityService(repos))
	return svc, mockProfile, mockActivity
}

func stubToken(t *testing.T, token string, isAdmin bool) {
	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(p profile.Profile, exp time.Duration) (string, bool, error) {
		return token, isAdmin, nil
	}
	t.Cleanup(func() { middleware.GenerateToken = oldGen })
}

// --------------------- Login ---------------------
func TestLogin_CreatesProfileOnFirstLogin(t *testing.T) {
	svc, mockProfile, mockActivity := setupProfileServiceMocks(t)
	stubToken(t, "token123", false)

	mockProfile.EXPECT().GetByPhone("13912345678").Return(profile.Profile{}, repository.ErrNotFound)
	mockProfile.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *profile.Profile) error {
		p.ID = "pid-1"
		p.UserID = "uid-1"
		return nil
	})
	mockActivity.EXPECT().Create(gomock.Any()).Return(nil)

	p, token, isAdmin, err := svc.Login(profile.LoginInput{Phone: "13912345678", Code: "123456"}, "127.0.0.1", "go-test")
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.False(t, isAdmin)
	assert.Equal(t, "user_5678", p.Username)
	assert.Equal(t, profile.RoleUser, p.Role)
	assert.Equal(t, profile.UserTypeDemander, p.UserType)
}

func TestLogin_ExistingProfileIsReused(t *testing.T) {
	svc, mockProfile, mockActivity := setupProfileServiceMocks(t)
	stubToken(t, "token456", true)

	existing := profile.Profile{ID: "pid-9", UserID: "uid-9", Phone: "13800000001", Username: "admin", Role: profile.RoleAdmin}
	mockProfile.EXPECT().GetByPhone("13800000001").Return(existing, nil)
	mockActivity.EXPECT().Create(gomock.Any()).Return(nil)

	p, token, isAdmin, err := svc.Login(profile.LoginInput{Phone: "13800000001", Code: "123456"}, "", "")
	assert.NoError(t, err)
	assert.True(t, isAdmin)
	assert.Equal(t, "token456", token)
	assert.Equal(t, "admin", p.Username)
}

func TestLogin_RejectsWrongCode(t *testing.T) {
	svc, _, _ := setupProfileServiceMocks(t)

	_, _, _, err := svc.Login(profile.LoginInput{Phone: "13800000001", Code: "000000"}, "", "")
	assert.Equal(t, ErrInvalidCode, err)
}

func TestLogin_SucceedsWhenActivityWriteFails(t *testing.T) {
	svc, mockProfile, mockActivity := setupProfileServiceMocks(t)
	stubToken(t, "token789", false)

	existing := profile.Profile{ID: "pid-2", UserID: "uid-2", Phone: "13800000002", Username: "bob"}
	mockProfile.EXPECT().GetByPhone("13800000002").Return(existing, nil)
	mockActivity.EXPECT().Create(gomock.Any()).Return(errors.New("disk full"))

	_, token, _, err := svc.Login(profile.LoginInput{Phone: "13800000002", Code: "123456"}, "", "")
	assert.NoError(t, err)
	assert.Equal(t, "token789", token)
}

// --------------------- CurrentProfile ---------------------
func TestCurrentProfile_NilWhenMissing(t *testing.T) {
	svc, mockProfile, _ := setupProfileServiceMocks(t)

	mockProfile.EXPECT().GetByID("ghost").Return(profile.Profile{}, repository.ErrNotFound)

	p, err := svc.CurrentProfile("ghost")
	assert.NoError(t, err)
	assert.Nil(t, p)
}

// --------------------- UpdateProfile ---------------------
func TestUpdateProfile_AppliesPartialFields(t *testing.T) {
	svc, mockProfile, _ := setupProfileServiceMocks(t)

	existing := profile.Profile{ID: "pid-1", Username: "old", Role: profile.RoleUser, UserType: profile.UserTypeDemander}
	mockProfile.EXPECT().GetByID("pid-1").Return(existing, nil)
	mockProfile.EXPECT().Save(gomock.Any()).Return(nil)

	newType := "supplier"
	p, err := svc.UpdateProfile("pid-1", profile.UpdateProfileInput{UserType: &newType})
	assert.NoError(t, err)
	assert.Equal(t, "old", p.Username)
	assert.Equal(t, profile.UserTypeSupplier, p.UserType)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	svc, mockProfile, _ := setupProfileServiceMocks(t)

	mockProfile.EXPECT().GetByID("missing").Return(profile.Profile{}, repository.ErrNotFound)

	_, err := svc.UpdateProfile("missing", profile.UpdateProfileInput{})
	assert.Equal(t, ErrProfileNotFound, err)
}
