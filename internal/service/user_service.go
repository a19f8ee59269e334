package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"craftconnect_backend/internal/model"
	"craftconnect_backend/internal/repository"
	"craftconnect_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	tradeCategoriesCacheKey = "trade_categories:all"
	tradeCategoriesCacheTTL = 10 * time.Minute
)

type UserService struct {
	Artisans   *repository.ArtisanRepository
	Clients    *repository.ClientRepository
	Categories *repository.TradeCategoryRepository
	Storage    *StorageService
	Redis      *redis.Client
}

func NewUserService(
	artisans *repository.ArtisanRepository,
	clients *repository.ClientRepository,
	categories *repository.TradeCategoryRepository,
	storage *StorageService,
	rdb *redis.Client,
) *UserService {
	return &UserService{
		Artisans:   artisans,
		Clients:    clients,
		Categories: categories,
		Storage:    storage,
		Redis:      rdb,
	}
}

// GetProfile resolves either account type by id.
func (s *UserService) GetProfile(userType model.UserType, id uint) (interface{}, error) {
	switch userType {
	case model.ArtisanUser:
		artisan, err := s.Artisans.FindByID(id)
		if err != nil {
			return nil, util.ErrUserNotFound
		}
		return artisan, nil
	case model.ClientUser:
		client, err := s.Clients.FindByID(id)
		if err != nil {
			return nil, util.ErrUserNotFound
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: unknown user_type %q", util.ErrInvalidInput, userType)
	}
}

// ProfileUpdate carries the mutable profile fields; nil means unchanged.
type ProfileUpdate struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	PhoneNumber     *string `json:"phoneNumber"`
	Location        *string `json:"location"`
	Language        *string `json:"language"`
	Bio             *string `json:"bio"`
	BusinessName    *string `json:"businessName"`
	TradeCategoryID *uint   `json:"tradeCategoryId"`
}

func (s *UserService) UpdateProfile(userType model.UserType, id uint, update ProfileUpdate) (interface{}, error) {
	switch userType {
	case model.ArtisanUser:
		artisan, err := s.Artisans.FindByID(id)
		if err != nil {
			return nil, util.ErrUserNotFound
		}
		applyUpdate(&artisan.FirstName, update.FirstName)
		applyUpdate(&artisan.LastName, update.LastName)
		applyUpdate(&artisan.PhoneNumber, update.PhoneNumber)
		applyUpdate(&artisan.Location, update.Location)
		applyUpdate(&artisan.Language, update.Language)
		applyUpdate(&artisan.Bio, update.Bio)
		applyUpdate(&artisan.BusinessName, update.BusinessName)
		if update.TradeCategoryID != nil {
			if _, err := s.Categories.FindByID(*update.TradeCategoryID); err != nil {
				return nil, util.ErrCategoryNotFound
			}
			artisan.TradeCategoryID = update.TradeCategoryID
		}
		if err := s.Artisans.Update(artisan); err != nil {
			return nil, err
		}
		return artisan, nil
	case model.ClientUser:
		client, err := s.Clients.FindByID(id)
		if err != nil {
			return nil, util.ErrUserNotFound
		}
		applyUpdate(&client.FirstName, update.FirstName)
		applyUpdate(&client.LastName, update.LastName)
		applyUpdate(&client.PhoneNumber, update.PhoneNumber)
		applyUpdate(&client.Location, update.Location)
		applyUpdate(&client.Language, update.Language)
		applyUpdate(&client.Bio, update.Bio)
		applyUpdate(&client.BusinessName, update.BusinessName)
		if err := s.Clients.Update(client); err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: unknown user_type %q", util.ErrInvalidInput, userType)
	}
}

func applyUpdate(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// UploadProfilePicture stores the image via the configured storage
// provider and saves the resulting URL on the account.
func (s *UserService) UploadProfilePicture(ctx context.Context, userType model.UserType, id uint, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := fmt.Sprintf("profile_pics/%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")

	url, err := s.Storage.Provider.Upload(ctx, filename, src, file.Size, contentType)
	if err != nil {
		return "", err
	}

	switch userType {
	case model.ArtisanUser:
		artisan, err := s.Artisans.FindByID(id)
		if err != nil {
			return "", util.ErrUserNotFound
		}
		artisan.ProfilePicture = url
		if err := s.Artisans.Update(artisan); err != nil {
			return "", err
		}
	case model.ClientUser:
		client, err := s.Clients.FindByID(id)
		if err != nil {
			return "", util.ErrUserNotFound
		}
		client.ProfilePicture = url
		if err := s.Clients.Update(client); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: unknown user_type %q", util.ErrInvalidInput, userType)
	}

	return url, nil
}

// ListTradeCategories serves the category list from Redis when warm;
// the list changes rarely and backs every registration form.
func (s *UserService) ListTradeCategories(ctx context.Context) ([]model.TradeCategory, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, tradeCategoriesCacheKey).Result(); err == nil {
			var cached []model.TradeCategory
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	categories, err := s.Categories.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(categories); err == nil {
			s.Redis.Set(ctx, tradeCategoriesCacheKey, data, tradeCategoriesCacheTTL)
		}
	}

	return categories, nil
}

func (s *UserService) AddTradeCategory(ctx context.Context, name string) (*model.TradeCategory, error) {
	if _, err := s.Categories.FindByName(name); err == nil {
		return nil, util.ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &model.TradeCategory{Name: name}
	if err := s.Categories.Create(category); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		s.Redis.Del(ctx, tradeCategoriesCacheKey)
	}

	return category, nil
}
