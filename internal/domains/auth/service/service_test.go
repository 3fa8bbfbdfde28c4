package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GitMovi52027/movi5/config"
	"github.com/GitMovi52027/movi5/infras/jwt"
	otelMocks "github.com/GitMovi52027/movi5/infras/otel/mocks"
	"github.com/GitMovi52027/movi5/internal/domains/auth/model/dto"
	"github.com/GitMovi52027/movi5/internal/domains/auth/service"
	userMocks "github.com/GitMovi52027/movi5/internal/domains/user/mocks"
	userModel "github.com/GitMovi52027/movi5/internal/domains/user/model"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	"github.com/GitMovi52027/movi5/shared/failure"
	"github.com/GitMovi52027/movi5/shared/password"
)

func strPtr(s string) *string { return &s }

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 1440

	return cfg
}

func adminUser(t *testing.T) userModel.User {
	hashed, err := password.Hash("abcd1234")
	assert.NoError(t, err)

	return userModel.User{
		ID:       "user-1",
		Email:    "admin@test.com",
		Name:     strPtr("Admin"),
		Password: hashed,
		Role:     constant.RoleAdmin,
	}
}

func sessionCtx(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	cfg := testJWTConfig()
	svc := service.New(mockRepo, cfg, otelMocks.NewOtel(), jwt.New(cfg))

	user := adminUser(t)

	t.Run("valid credentials", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "admin@test.com",
			Password: "abcd1234",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
		assert.Equal(t, "admin@test.com", res.User.Email)
		assert.Equal(t, constant.RoleAdmin, res.User.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "admin@test.com",
			Password: "wrong-password",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@test.com",
			Password: "abcd1234",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	cfg := testJWTConfig()
	jwtService := jwt.New(cfg)
	svc := service.New(mockRepo, cfg, otelMocks.NewOtel(), jwtService)

	t.Run("valid refresh token", func(t *testing.T) {
		pair, err := jwtService.GenerateTokenPair("user-1", "admin@test.com", constant.RoleAdmin)
		assert.NoError(t, err)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: pair.RefreshToken,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: "not-a-token",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_GetAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	cfg := testJWTConfig()
	svc := service.New(mockRepo, cfg, otelMocks.NewOtel(), jwt.New(cfg))

	t.Run("authenticated user", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(adminUser(t), nil)

		res, err := svc.GetAccount(sessionCtx("user-1"))

		assert.NoError(t, err)
		assert.Equal(t, "user-1", res.ID)
		assert.Equal(t, "admin@test.com", res.Email)
	})

	t.Run("no session", func(t *testing.T) {
		_, err := svc.GetAccount(context.Background())

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("user deleted after token issued", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.GetAccount(sessionCtx("ghost"))

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestAuthService_UpdateAccount(t *testing.T) {
	newFixture := func(t *testing.T) (*userMocks.MockUser, service.Auth) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockRepo := userMocks.NewMockUser(ctrl)
		cfg := testJWTConfig()

		return mockRepo, service.New(mockRepo, cfg, otelMocks.NewOtel(), jwt.New(cfg))
	}

	t.Run("email and password change in one write", func(t *testing.T) {
		mockRepo, svc := newFixture(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(adminUser(t), nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "new@test.com", fields[userModel.FieldEmail])
				assert.Contains(t, fields, userModel.FieldPassword)
				assert.NoError(t, password.Verify("newpass1234", fields[userModel.FieldPassword].(string)))
				return nil
			})

		res, err := svc.UpdateAccount(sessionCtx("user-1"), dto.UpdateAccountRequest{
			Email:           strPtr("new@test.com"),
			CurrentPassword: strPtr("abcd1234"),
			NewPassword:     strPtr("newpass1234"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "new@test.com", res.Email)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockRepo, svc := newFixture(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(adminUser(t), nil)

		_, err := svc.UpdateAccount(sessionCtx("user-1"), dto.UpdateAccountRequest{
			CurrentPassword: strPtr("wrong"),
			NewPassword:     strPtr("newpass1234"),
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("new password without current password", func(t *testing.T) {
		mockRepo, svc := newFixture(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(adminUser(t), nil)

		_, err := svc.UpdateAccount(sessionCtx("user-1"), dto.UpdateAccountRequest{
			NewPassword: strPtr("newpass1234"),
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("email owned by another user", func(t *testing.T) {
		mockRepo, svc := newFixture(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(adminUser(t), nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.UpdateAccount(sessionCtx("user-1"), dto.UpdateAccountRequest{
			Email: strPtr("taken@test.com"),
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("same email skips uniqueness check", func(t *testing.T) {
		mockRepo, svc := newFixture(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(adminUser(t), nil)

		res, err := svc.UpdateAccount(sessionCtx("user-1"), dto.UpdateAccountRequest{
			Email: strPtr("admin@test.com"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "admin@test.com", res.Email)
	})

	t.Run("no session", func(t *testing.T) {
		_, svc := newFixture(t)

		_, err := svc.UpdateAccount(context.Background(), dto.UpdateAccountRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
