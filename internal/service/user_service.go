package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/tams-cso/tams-club-cal-sub000/internal/domain"
	"github.com/tams-cso/tams-club-cal-sub000/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/app"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/cache"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type UserService interface {
	// Login upserts the user record and issues a bearer token. Identity
	// assertion happens upstream; this endpoint trusts its input.
	Login(ctx context.Context, params *dto.LoginRequest) (*dto.LoginDTO, error)

	// GetByUID resolves a user, served from a TTL cache with singleflight
	// collapsing concurrent misses.
	GetByUID(ctx context.Context, uid int64) (*dto.UserDTO, error)

	// SweepCache drops expired cache entries and returns how many.
	SweepCache() int
}

type userService struct {
	userRepo domain.UserRepository
	tokens   app.TokenManager
	cache    *cache.Cache[int64, *domain.User]
	sf       singleflight.Group
}

func NewUserService(userRepo domain.UserRepository, tokens app.TokenManager) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		cache:    cache.New[int64, *domain.User](10 * time.Minute),
	}
}

func (s *userService) Login(ctx context.Context, params *dto.LoginRequest) (*dto.LoginDTO, error) {
	user, err := s.userRepo.GetByEmail(ctx, params.Email)
	switch {
	case err == nil:
		if user.Name != params.Name {
			user.Name = params.Name
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, code.ErrorDBQuery.WithDetails(err.Error())
			}
			s.cache.Delete(user.UID)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = s.userRepo.Create(ctx, &domain.User{Email: params.Email, Name: params.Name})
		if err != nil {
			return nil, code.ErrorDBQuery.WithDetails(err.Error())
		}
	default:
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	token, err := s.tokens.Generate(user.UID, user.Name, user.Email)
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	return &dto.LoginDTO{
		UID:   user.UID,
		Email: user.Email,
		Name:  user.Name,
		Token: token,
	}, nil
}

func (s *userService) GetByUID(ctx context.Context, uid int64) (*dto.UserDTO, error) {
	if u, ok := s.cache.Get(uid); ok {
		return &dto.UserDTO{UID: u.UID, Email: u.Email, Name: u.Name}, nil
	}

	v, err, _ := s.sf.Do(strconv.FormatInt(uid, 10), func() (any, error) {
		u, err := s.userRepo.GetByUID(ctx, uid)
		if err != nil {
			return nil, err
		}
		s.cache.Set(uid, u)
		return u, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorUserNotExist
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	u := v.(*domain.User)
	return &dto.UserDTO{UID: u.UID, Email: u.Email, Name: u.Name}, nil
}

func (s *userService) SweepCache() int {
	return s.cache.Sweep()
}
