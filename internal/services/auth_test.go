package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
	"github.com/sbilibin2017/gw-movie-ledger/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(ctrl *gomock.Controller) (
	*services.AuthService,
	*services.MockUserReader,
	*services.MockUserWriter,
	*services.MockJWTGenerator,
	*services.MockTokenRevoker,
) {
	reader := services.NewMockUserReader(ctrl)
	writer := services.NewMockUserWriter(ctrl)
	jwtGen := services.NewMockJWTGenerator(ctrl)
	revoker := services.NewMockTokenRevoker(ctrl)
	svc := services.NewAuthService(reader, writer, jwtGen, revoker, services.WithBcryptCost(bcrypt.MinCost))
	return svc, reader, writer, jwtGen, revoker
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		writerErr error
		want      bool
	}{
		{name: "successful registration", want: true},
		{name: "email already taken", writerErr: errors.New("email already registered"), want: false},
		{name: "storage failure", writerErr: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, writer, _, _ := newAuthService(ctrl)

			writer.EXPECT().
				Save(gomock.Any(), "ana@example.com", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, hash string) (uuid.UUID, error) {
					assert.NotEqual(t, "segredo", hash)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("segredo")))
					return uuid.New(), tt.writerErr
				})

			got := svc.Register(context.Background(), "ana@example.com", "segredo")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	userID := uuid.New()
	stored := &models.UserDB{
		UserID:       userID,
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "segredo"),
	}

	tests := []struct {
		name      string
		email     string
		password  string
		user      *models.UserDB
		readerErr error
		want      *uuid.UUID
	}{
		{name: "valid credentials", email: "ana@example.com", password: "segredo", user: stored, want: &userID},
		{name: "wrong password", email: "ana@example.com", password: "errada", user: stored},
		{name: "unknown email", email: "ghost@example.com", password: "segredo"},
		{name: "storage failure", email: "ana@example.com", password: "segredo", readerErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, reader, _, _, _ := newAuthService(ctrl)
			reader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.user, tt.readerErr)

			got := svc.Authenticate(context.Background(), tt.email, tt.password)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, jwtGen, _ := newAuthService(ctrl)
	userID := uuid.New()
	stored := &models.UserDB{UserID: userID, Email: "ana@example.com", PasswordHash: hashPassword(t, "segredo")}

	t.Run("issues token", func(t *testing.T) {
		reader.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)
		jwtGen.EXPECT().Generate(gomock.Any(), userID).Return("token123", nil)

		token, err := svc.Login(context.Background(), "ana@example.com", "segredo")
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		reader.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)

		token, err := svc.Login(context.Background(), "ana@example.com", "errada")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("token generation fails", func(t *testing.T) {
		reader.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)
		jwtGen.EXPECT().Generate(gomock.Any(), userID).Return("", errors.New("sign error"))

		token, err := svc.Login(context.Background(), "ana@example.com", "segredo")
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, revoker := newAuthService(ctrl)

	revoker.EXPECT().Revoke(gomock.Any(), "jti-1", time.Minute).Return(nil)
	assert.NoError(t, svc.Logout(context.Background(), "jti-1", time.Minute))

	revoker.EXPECT().Revoke(gomock.Any(), "jti-2", time.Minute).Return(errors.New("redis down"))
	assert.Error(t, svc.Logout(context.Background(), "jti-2", time.Minute))
}
