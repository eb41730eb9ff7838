package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/services"
	"github.com/adilzhm/weather_store_app/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceTestSuite struct {
	suite.Suite
	cfg     *config.Config
	service *services.AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.cfg = &config.Config{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "weather-store-app",
	}
	suite.service = services.NewAuthService(suite.cfg)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	token, expiresAt, err := suite.service.Login(context.Background(), "admin", "correct-horse")

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(suite.cfg.JWTSecret), nil
	})
	suite.Require().NoError(err)
	suite.True(parsed.Valid)
	suite.Equal("admin", claims.Subject)
	suite.Equal("weather-store-app", claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	token, _, err := suite.service.Login(context.Background(), "admin", "wrong")

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongUsername() {
	token, _, err := suite.service.Login(context.Background(), "root", "correct-horse")

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_DisabledWhenNoHashConfigured() {
	suite.cfg.AdminPasswordHash = ""

	token, _, err := suite.service.Login(context.Background(), "admin", "correct-horse")

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
