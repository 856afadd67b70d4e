package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rewear/exchange/internal/auth"
	"github.com/rewear/exchange/internal/constants"
	"github.com/rewear/exchange/internal/model"
	"github.com/rewear/exchange/internal/repository"
)

var ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")

type UserService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	Get(id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, cmd UpdateProfileCommand) (*model.User, error)
	Transactions(userID int64) ([]model.Transaction, error)
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type user struct {
	txManager       repository.TxManager
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	ledger          LedgerService
	authCfg         AuthConfig
	logger          *zap.Logger
}

func NewUserService(txManager repository.TxManager, userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository, ledger LedgerService,
	authCfg AuthConfig, logger *zap.Logger) UserService {
	return &user{txManager: txManager, userRepo: userRepo, transactionRepo: transactionRepo,
		ledger: ledger, authCfg: authCfg, logger: logger}
}

// Register creates the account and grants the welcome bonus through the
// ledger, so the very first balance already has its audit row.
func (s *user) Register(ctx context.Context, cmd RegisterCommand) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	newUser := &model.User{
		Username:  cmd.Username,
		Email:     cmd.Email,
		Password:  string(hash),
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrUserDuplicate) {
				return NewServiceError(constants.ErrCodeUserExisted, err)
			}
			s.logger.Error("error creating user", zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		return s.ledger.Apply(ctx, LedgerEntry{
			UserID:      newUser.ID,
			Type:        model.TxTypeBonus,
			Points:      constants.WelcomeBonusPoints,
			Description: "Welcome bonus",
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.Int64("user_id", newUser.ID),
		zap.String("username", newUser.Username),
	)

	newUser.PointsBalance = constants.WelcomeBonusPoints
	return newUser, nil
}

func (s *user) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	found, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", NewServiceError(constants.ErrCodeInvalidCredentials, ErrInvalidCredentials)
		}
		return nil, "", NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(password)); err != nil {
		return nil, "", NewServiceError(constants.ErrCodeInvalidCredentials, ErrInvalidCredentials)
	}

	token, err := auth.GenerateToken(found.ID, found.IsAdmin, s.authCfg.JWTSecret, s.authCfg.TokenTTL)
	if err != nil {
		s.logger.Error("error signing token", zap.Error(err))
		return nil, "", NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return found, token, nil
}

func (s *user) Get(id int64) (*model.User, error) {
	found, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return found, nil
}

func (s *user) UpdateProfile(ctx context.Context, cmd UpdateProfileCommand) (*model.User, error) {
	found, err := s.userRepo.GetByID(cmd.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if cmd.FirstName != nil {
		found.FirstName = *cmd.FirstName
	}
	if cmd.LastName != nil {
		found.LastName = *cmd.LastName
	}
	if cmd.Bio != nil {
		found.Bio = cmd.Bio
	}
	if cmd.ProfileImage != nil {
		found.ProfileImage = cmd.ProfileImage
	}

	if err := s.userRepo.UpdateProfile(ctx, found); err != nil {
		s.logger.Error("error updating profile", zap.Int64("user_id", cmd.UserID), zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return found, nil
}

func (s *user) Transactions(userID int64) ([]model.Transaction, error) {
	transactions, err := s.transactionRepo.ListByUser(userID)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return transactions, nil
}
