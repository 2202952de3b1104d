package application

import (
	"errors"
	"time"

	"github.com/gpushare/market-go/internal/api/middleware"
	"github.com/gpushare/market-go/internal/config"
	"github.com/gpushare/market-go/internal/domain/activity"
	"github.com/gpushare/market-go/internal/domain/profile"
	"github.com/gpushare/market-go/internal/repository"
	log "github.com/sirupsen/logrus"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidCode     = errors.New("invalid verification code")
)

type ProfileService struct {
	Repos    *repository.Repos
	Activity *ActivityService
}

func NewProfileService(repos *repository.Repos, activitySvc *ActivityService) *ProfileService {
	return &ProfileService{
		Repos:    repos,
		Activity: activitySvc,
	}
}

var _ ProfileAPI = (*ProfileService)(nil)

// Login verifies the code, creating the profile on first login. A failed
// activity write never fails the login itself.
func (s *ProfileService) Login(input profile.LoginInput, ipAddress, userAgent string) (profile.Profile, string, bool, error) {
	if input.Code != config.DemoLoginCode {
		return profile.Profile{}, "", false, ErrInvalidCode
	}

	p, err := s.Repos.Profile.GetByPhone(input.Phone)
	if errors.Is(err, repository.ErrNotFound) {
		p = profile.Profile{
			Phone:    input.Phone,
			Username: defaultUsername(input.Phone),
			Role:     profile.RoleUser,
			UserType: profile.UserTypeDemander,
		}
		if err := s.Repos.Profile.Create(&p); err != nil {
			return profile.Profile{}, "", false, err
		}
	} else if err != nil {
		return profile.Profile{}, "", false, err
	}

	token, isAdmin, err := middleware.GenerateToken(p, 24*time.Hour)
	if err != nil {
		return profile.Profile{}, "", false, err
	}

	if err := s.Activity.RecordLogin(p.UserID, activity.LoginInfo{
		Username:    p.Username,
		Phone:       p.Phone,
		Role:        string(p.Role),
		LoginMethod: "phone_code",
		IPAddress:   ipAddress,
		UserAgent:   userAgent,
	}); err != nil {
		log.WithError(err).Warn("failed to record login activity")
	}

	return p, token, isAdmin, nil
}

func (s *ProfileService) CurrentProfile(profileID string) (*profile.Profile, error) {
	p, err := s.Repos.Profile.GetByID(profileID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProfileService) UpdateProfile(id string, input profile.UpdateProfileInput) (profile.Profile, error) {
	p, err := s.Repos.Profile.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, err
	}

	if input.Username != nil {
		p.Username = *input.Username
	}
	if input.Role != nil {
		p.Role = profile.Role(*input.Role)
	}
	if input.UserType != nil {
		p.UserType = profile.UserType(*input.UserType)
	}

	if err := s.Repos.Profile.Save(&p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func (s *ProfileService) AllProfiles() ([]profile.Profile, error) {
	return s.Repos.Profile.ListAll()
}

func defaultUsername(phone string) string {
	if len(phone) <= 4 {
		return "user_" + phone
	}
	return "user_" + phone[len(phone)-4:]
}
