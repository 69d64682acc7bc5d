// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/zotero-sync/internal/adapter"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/mock"
	"github.com/MKhiriev/zotero-sync/models"
)

const testKeyringService = "zsync-test"

func newAuthFixture(t *testing.T) (*mock.MockLibraryRepository, *mock.MockServerAdapter, ClientAuthService) {
	t.Helper()
	keyring.MockInit()

	ctrl := gomock.NewController(t)
	libs := mock.NewMockLibraryRepository(ctrl)
	srv := mock.NewMockServerAdapter(ctrl)
	return libs, srv, NewClientAuthService(libs, srv, testKeyringService, logger.Nop())
}

func TestClientAuthService_Login_Success(t *testing.T) {
	libs, srv, auth := newAuthFixture(t)
	ctx := context.Background()
	creds := models.Credentials{Username: "alice", Password: "pw"}

	gomock.InOrder(
		srv.EXPECT().Login(gomock.Any(), creds).
			Return(models.LoginResponse{UserID: 42, Name: "alice", Key: "apikey"}, nil),
		libs.EXPECT().GetOrCreateUser(gomock.Any(), int64(42), "alice").
			Return(true, models.User{ID: 42, Name: "alice"}, nil),
		libs.EXPECT().GetOrCreateLibrary(gomock.Any(), models.PersonalLibrary(42), int64(42), "My Library").
			Return(true, models.LibraryInfo{Library: models.PersonalLibrary(42)}, nil),
		srv.EXPECT().SetAPIKey("apikey"),
	)

	sess, err := auth.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, models.Session{UserID: 42, Name: "alice", APIKey: "apikey"}, sess)

	raw, err := keyring.Get(testKeyringService, keyringAccount)
	require.NoError(t, err)
	assert.NotContains(t, raw, "pw")
	assert.Contains(t, raw, "apikey")
}

func TestClientAuthService_Login_Rejected(t *testing.T) {
	_, srv, auth := newAuthFixture(t)

	srv.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResponse{}, fmt.Errorf("%w: bad credentials", adapter.ErrUnauthorized))

	_, err := auth.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrAuthenticationFailure)

	_, err = keyring.Get(testKeyringService, keyringAccount)
	assert.ErrorIs(t, err, keyring.ErrNotFound)
}

func TestClientAuthService_Login_StoreFailure(t *testing.T) {
	libs, srv, auth := newAuthFixture(t)

	srv.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResponse{UserID: 42, Name: "alice", Key: "apikey"}, nil)
	libs.EXPECT().GetOrCreateUser(gomock.Any(), int64(42), "alice").
		Return(false, models.User{}, errors.New("disk full"))

	_, err := auth.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, ErrLocalStore)
}

func TestClientAuthService_RestoreSession(t *testing.T) {
	libs, srv, auth := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	srv.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResponse{UserID: 42, Name: "alice", Key: "apikey"}, nil)
	libs.EXPECT().GetOrCreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, models.User{}, nil)
	libs.EXPECT().GetOrCreateLibrary(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, models.LibraryInfo{}, nil)
	srv.EXPECT().SetAPIKey("apikey").Times(2)

	_, err = auth.Login(ctx, models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	sess, err := auth.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), sess.UserID)
	assert.Equal(t, "apikey", sess.APIKey)
}

func TestClientAuthService_RestoreSession_Unreadable(t *testing.T) {
	_, _, auth := newAuthFixture(t)
	require.NoError(t, keyring.Set(testKeyringService, keyringAccount, "not json"))

	_, err := auth.RestoreSession(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientAuthService_Logout(t *testing.T) {
	_, srv, auth := newAuthFixture(t)
	require.NoError(t, keyring.Set(testKeyringService, keyringAccount, `{"user_id":42,"api_key":"k"}`))

	srv.EXPECT().SetAPIKey("").Times(2)

	require.NoError(t, auth.Logout(context.Background()))
	_, err := keyring.Get(testKeyringService, keyringAccount)
	assert.ErrorIs(t, err, keyring.ErrNotFound)

	// logging out twice is fine
	assert.NoError(t, auth.Logout(context.Background()))
}
