package service

import (
	"context"
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/model"
	"stackunderflow/internal/pkg/redis"
	"stackunderflow/internal/pkg/security"
	"stackunderflow/internal/repository"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	GetReputationLogs(ctx context.Context, id uint64, limit int) ([]*dto.ReputationLogDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	logRepo  repository.ReputationLogRepo
}

func NewUserService(userRepo repository.UserRepo, logRepo repository.ReputationLogRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		logRepo:  logRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	existing, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserUsernameExist
	}

	hashed, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:   regDTO.Username,
		Email:      regDTO.Email,
		Password:   hashed,
		Profession: regDTO.Profession,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if isDuplicateError(err) {
			return ErrUserExist
		}
		return err
	}
	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, loginDTO.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if err := security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, []string{user.Role})
	if err != nil {
		return "", err
	}
	return token, nil
}

// Logout 将 token 签名写入黑名单，剩余有效期内拒绝该 token
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, time.Hour*24)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.CreatedAt = user.CreatedAt.Format("2006-01-02 15:04:05")
	return userDTO, nil
}

func (s *UserServiceImpl) GetReputationLogs(ctx context.Context, id uint64, limit int) ([]*dto.ReputationLogDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	logs, err := s.logRepo.ListByUserId(ctx, id, limit)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ReputationLogDTO, 0, len(logs))
	for _, entry := range logs {
		item := &dto.ReputationLogDTO{}
		_ = copier.Copy(item, entry)
		item.CreatedAt = entry.CreatedAt.Format("2006-01-02 15:04:05")
		res = append(res, item)
	}
	return res, nil
}
