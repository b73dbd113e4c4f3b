package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/qa-forum/internal/jwt"
	"github.com/sbilibin2017/qa-forum/internal/models"
	"github.com/sbilibin2017/qa-forum/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenProvider(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockSessions)

	tests := []struct {
		name       string
		username   string
		password   string
		saveID     int64
		saveErr    error
		expectSave bool
		wantErr    error
	}{
		{
			name:       "successful registration",
			username:   "alice",
			password:   "pass123",
			saveID:     1,
			expectSave: true,
		},
		{
			name:       "username already taken",
			username:   "bob",
			password:   "pass123",
			saveErr:    sql.ErrNoRows,
			expectSave: true,
			wantErr:    services.ErrUsernameExists,
		},
		{
			name:       "writer error",
			username:   "carol",
			password:   "pass123",
			saveErr:    errors.New("db error"),
			expectSave: true,
			wantErr:    errors.New("db error"),
		},
		{
			name:     "empty username",
			username: "   ",
			password: "pass123",
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:     "empty password",
			username: "dave",
			password: "",
			wantErr:  services.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expectSave {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any()).
					Return(tt.saveID, tt.saveErr)
			}

			err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_RegisterTrimsUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenProvider(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockSessions)

	mockWriter.EXPECT().
		Save(gomock.Any(), "alice", gomock.Any()).
		Return(int64(1), nil)

	err := svc.Register(context.Background(), "  alice  ", "pass123")
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenProvider(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockSessions)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name       string
		username   string
		password   string
		user       *models.UserDB
		readerErr  error
		genErr     error
		sessionErr error
		wantToken  string
		wantErr    error
	}{
		{
			name:      "successful login",
			username:  "alice",
			password:  password,
			user:      &models.UserDB{ID: 1, Username: "alice", PasswordHash: string(hashed)},
			wantToken: "token123",
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: password,
			user:     nil,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			user:     &models.UserDB{ID: 1, Username: "alice", PasswordHash: string(hashed)},
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			password:  password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "token generation error",
			username: "alice",
			password: password,
			user:     &models.UserDB{ID: 1, Username: "alice", PasswordHash: string(hashed)},
			genErr:   errors.New("sign error"),
			wantErr:  errors.New("sign error"),
		},
		{
			name:       "session store error",
			username:   "alice",
			password:   password,
			user:       &models.UserDB{ID: 1, Username: "alice", PasswordHash: string(hashed)},
			sessionErr: errors.New("redis error"),
			wantErr:    errors.New("redis error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.password == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.ID).
					Return("token123", "session-id", tt.genErr)

				if tt.genErr == nil {
					mockSessions.EXPECT().
						Save(gomock.Any(), "session-id", tt.user.ID).
						Return(tt.sessionErr)
				}
			}

			token, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenProvider(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockSessions)

	t.Run("empty token is a no-op", func(t *testing.T) {
		err := svc.Logout(context.Background(), "")
		assert.NoError(t, err)
	})

	t.Run("invalid token is a no-op", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "bad-token").
			Return(nil, errors.New("invalid token"))

		err := svc.Logout(context.Background(), "bad-token")
		assert.NoError(t, err)
	})

	t.Run("valid token deletes the session", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "good-token").
			Return(&jwt.Claims{UserID: 1, SessionID: "session-id"}, nil)
		mockSessions.EXPECT().
			Delete(gomock.Any(), "session-id").
			Return(nil)

		err := svc.Logout(context.Background(), "good-token")
		assert.NoError(t, err)
	})

	t.Run("session store error is returned", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "good-token").
			Return(&jwt.Claims{UserID: 1, SessionID: "session-id"}, nil)
		mockSessions.EXPECT().
			Delete(gomock.Any(), "session-id").
			Return(errors.New("redis error"))

		err := svc.Logout(context.Background(), "good-token")
		assert.EqualError(t, err, "redis error")
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenProvider(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockSessions)

	t.Run("empty token", func(t *testing.T) {
		user, err := svc.CurrentUser(context.Background(), "")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("invalid token", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "bad-token").
			Return(nil, errors.New("invalid token"))

		user, err := svc.CurrentUser(context.Background(), "bad-token")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("revoked session", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "token").
			Return(&jwt.Claims{UserID: 1, SessionID: "session-id"}, nil)
		mockSessions.EXPECT().
			Get(gomock.Any(), "session-id").
			Return(int64(0), nil)

		user, err := svc.CurrentUser(context.Background(), "token")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("session bound to a different user", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "token").
			Return(&jwt.Claims{UserID: 1, SessionID: "session-id"}, nil)
		mockSessions.EXPECT().
			Get(gomock.Any(), "session-id").
			Return(int64(2), nil)

		user, err := svc.CurrentUser(context.Background(), "token")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("session store error", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "token").
			Return(&jwt.Claims{UserID: 1, SessionID: "session-id"}, nil)
		mockSessions.EXPECT().
			Get(gomock.Any(), "session-id").
			Return(int64(0), errors.New("redis error"))

		user, err := svc.CurrentUser(context.Background(), "token")
		assert.EqualError(t, err, "redis error")
		assert.Nil(t, user)
	})

	t.Run("valid session resolves the user", func(t *testing.T) {
		mockJWT.EXPECT().
			GetClaims(gomock.Any(), "token").
			Return(&jwt.Claims{UserID: 1, SessionID: "session-id"}, nil)
		mockSessions.EXPECT().
			Get(gomock.Any(), "session-id").
			Return(int64(1), nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(&models.UserDB{ID: 1, Username: "alice"}, nil)

		user, err := svc.CurrentUser(context.Background(), "token")
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})
}
