package service

import (
	"context"
	"testing"

	"github.com/Aravind-ihub855/Mom-Automation/internal/middleware"
	"github.com/Aravind-ihub855/Mom-Automation/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-session-secret")

func TestBootstrapSeedsOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)
	ctx := context.Background()

	require.NoError(t, svc.Bootstrap(ctx, "admin@example.com", "s3cret"))

	var admin model.Admin
	require.NoError(t, db.First(&admin).Error)
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.NotEqual(t, "s3cret", admin.Password, "password must be stored hashed")

	// second bootstrap with a different credential is a no-op
	require.NoError(t, svc.Bootstrap(ctx, "other@example.com", "other"))
	var count int64
	require.NoError(t, db.Model(&model.Admin{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestBootstrapWithoutCredential(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	require.NoError(t, svc.Bootstrap(context.Background(), "", ""))

	var count int64
	require.NoError(t, db.Model(&model.Admin{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)
	ctx := context.Background()
	require.NoError(t, svc.Bootstrap(ctx, "admin@example.com", "s3cret"))

	token, err := svc.Login(ctx, "admin@example.com", "s3cret")
	require.NoError(t, err)

	email, err := middleware.ParseSession(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)

	_, err = svc.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdminExists(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)
	ctx := context.Background()
	require.NoError(t, svc.Bootstrap(ctx, "admin@example.com", "s3cret"))

	assert.NoError(t, svc.AdminExists(ctx, "admin@example.com"))
	assert.ErrorIs(t, svc.AdminExists(ctx, "nobody@example.com"), ErrUnauthorized)
}
