package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/GitMovi52027/movi5/config"
	"github.com/GitMovi52027/movi5/infras/jwt"
	"github.com/GitMovi52027/movi5/infras/otel"
	"github.com/GitMovi52027/movi5/internal/domains/auth/model/dto"
	userModel "github.com/GitMovi52027/movi5/internal/domains/user/model"
	userRepo "github.com/GitMovi52027/movi5/internal/domains/user/repository"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	"github.com/GitMovi52027/movi5/shared/failure"
	"github.com/GitMovi52027/movi5/shared/password"
	"github.com/GitMovi52027/movi5/shared/timezone"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	GetAccount(ctx context.Context) (dto.AccountResponse, error)
	UpdateAccount(ctx context.Context, req dto.UpdateAccountRequest) (dto.AccountResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func filterByEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}
}

func filterByID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    userModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, filterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized("invalid email or password")
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid email or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) GetAccount(ctx context.Context) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAccount")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return res, failure.Unauthorized("no active session")
	}

	user, err := s.userRepo.Get(ctx, filterByID(userID))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound(userModel.EntityName)
	}

	res.FromModel(user)

	return res, nil
}

// UpdateAccount applies email and password changes in one write so a call
// changing both never lands half-applied.
func (s *serviceImpl) UpdateAccount(ctx context.Context, req dto.UpdateAccountRequest) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateAccount")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return res, failure.Unauthorized("no active session")
	}

	user, err := s.userRepo.Get(ctx, filterByID(userID))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound(userModel.EntityName)
	}

	fields := map[string]any{}

	if req.NewPassword != nil || req.CurrentPassword != nil {
		if req.CurrentPassword == nil {
			return res, failure.BadRequestFromString("Debe proporcionar la contraseña actual")
		}

		if err := password.Verify(*req.CurrentPassword, user.Password); err != nil {
			return res, failure.BadRequestFromString("La contraseña actual es incorrecta")
		}

		if req.NewPassword != nil {
			hashed, err := password.Hash(*req.NewPassword)
			if err != nil {
				log.Error().Err(err).Msg("failed to hash new password")

				return res, fmt.Errorf("failed to hash new password: %w", err)
			}

			fields[userModel.FieldPassword] = hashed
		}
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.emailTakenByOther(ctx, *req.Email, userID)
		if err != nil {
			return res, err
		}

		if taken {
			return res, failure.Conflict("El email ya está en uso por otro usuario")
		}

		fields[userModel.FieldEmail] = *req.Email
		user.Email = *req.Email
	}

	if req.Name != nil {
		fields[userModel.FieldName] = *req.Name
		user.Name = req.Name
	}

	if len(fields) == 0 {
		res.FromModel(user)

		return res, nil
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user.Email

	if err = s.userRepo.Update(ctx, fields, filterByID(userID)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("El email ya está en uso por otro usuario")
		}

		log.Error().Err(err).Str("user_id", userID).Msg("failed to update account")

		return res, fmt.Errorf("failed to update account: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) emailTakenByOther(ctx context.Context, email, userID string) (bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
			gDto.Filter{
				Field:    userModel.FieldID,
				Operator: gDto.FilterOperatorNotEq,
				Value:    userID,
				Table:    userModel.TableName,
			},
		},
	}

	taken, err := s.userRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check email availability")

		return false, fmt.Errorf("failed to check email availability: %w", err)
	}

	return taken, nil
}
