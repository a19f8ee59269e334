package service

import (
	"errors"

	"craftconnect_backend/internal/config"
	"craftconnect_backend/internal/model"
	"craftconnect_backend/internal/repository"
	"craftconnect_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Artisans *repository.ArtisanRepository
	Clients  *repository.ClientRepository
	Cfg      *config.Config
}

func NewAuthService(artisans *repository.ArtisanRepository, clients *repository.ClientRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		Artisans: artisans,
		Clients:  clients,
		Cfg:      cfg,
	}
}

// LoginResult bundles the token with the resolved account. User holds
// either *model.Artisan or *model.Client depending on UserType.
type LoginResult struct {
	Token    string         `json:"token"`
	UserType model.UserType `json:"userType"`
	User     interface{}    `json:"user"`
}

func (s *AuthService) RegisterArtisan(artisan *model.Artisan) error {
	if err := s.checkEmailFree(artisan.Email); err != nil {
		return err
	}
	if _, err := s.Artisans.FindByPhone(artisan.PhoneNumber); err == nil {
		return util.ErrPhoneRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(artisan.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	artisan.Password = string(hashed)
	return s.Artisans.Create(artisan)
}

func (s *AuthService) RegisterClient(client *model.Client) error {
	if err := s.checkEmailFree(client.Email); err != nil {
		return err
	}
	if _, err := s.Clients.FindByPhone(client.PhoneNumber); err == nil {
		return util.ErrPhoneRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(client.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	client.Password = string(hashed)
	return s.Clients.Create(client)
}

// Login resolves the account across both tables, artisans first, the
// way the shared login endpoint is documented to behave.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	if artisan, err := s.Artisans.FindByEmail(email); err == nil {
		if bcrypt.CompareHashAndPassword([]byte(artisan.Password), []byte(password)) != nil {
			return nil, util.ErrInvalidCredentials
		}
		token, err := util.GenerateJWT(artisan.ID, model.ArtisanUser, artisan.Email, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
		if err != nil {
			return nil, err
		}
		return &LoginResult{Token: token, UserType: model.ArtisanUser, User: artisan}, nil
	}

	client, err := s.Clients.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(client.Password), []byte(password)) != nil {
		return nil, util.ErrInvalidCredentials
	}
	token, err := util.GenerateJWT(client.ID, model.ClientUser, client.Email, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, UserType: model.ClientUser, User: client}, nil
}

func (s *AuthService) checkEmailFree(email string) error {
	if _, err := s.Artisans.FindByEmail(email); err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if _, err := s.Clients.FindByEmail(email); err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
