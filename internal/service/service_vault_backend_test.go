// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-adder/internal/app"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/mock"
	"github.com/MKhiriev/go-vault-adder/internal/store"
	"github.com/MKhiriev/go-vault-adder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var backendNow = time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

func newTestBackendSvc(t *testing.T, ctrl *gomock.Controller) (*vaultBackendService, *mock.MockVaultSourceRepository, *mock.MockVaultFiles) {
	t.Helper()
	repo := mock.NewMockVaultSourceRepository(ctrl)
	files := mock.NewMockVaultFiles(ctrl)
	files.EXPECT().Resolve(gomock.Any()).DoAndReturn(func(name string) string { return name }).AnyTimes()

	svc := NewVaultBackendService(repo, files, logger.Nop()).(*vaultBackendService)
	svc.idGenerator = fixedIDGenerator("src-1")
	svc.now = func() time.Time { return backendNow }

	return svc, repo, files
}

func filePayload(path string, createNew bool) models.AddVaultPayload {
	return models.AddVaultPayload{
		RequestID:        testRequestID,
		CreateNew:        createNew,
		DatasourceConfig: models.NewFileDatasource(path),
		MasterPassword:   strongPass,
	}
}

// ── AddVault ─────────────────────────────────────────────────────────────────

func TestVaultBackendService_AddVault_CreateNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, files := newTestBackendSvc(t, ctrl)
	path := "/vaults/new.bcup"

	gomock.InOrder(
		files.EXPECT().Exists(gomock.Any(), path).Return(false, nil),
		files.EXPECT().Create(gomock.Any(), path).Return(nil),
		repo.EXPECT().Create(gomock.Any(), models.VaultSource{
			SourceID:  "src-1",
			Type:      models.DatasourceFile,
			Filename:  path,
			CreateNew: true,
			CreatedAt: backendNow,
		}).Return(nil),
	)

	reply := svc.AddVault(context.Background(), filePayload(path, true))

	assert.Equal(t, models.ReplyEnvelope{RequestID: testRequestID, OK: true, SourceID: "src-1"}, reply)
}

func TestVaultBackendService_AddVault_Existing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, files := newTestBackendSvc(t, ctrl)
	path := "/vaults/old.bcup"

	files.EXPECT().Exists(gomock.Any(), path).Return(true, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, src models.VaultSource) error {
		assert.False(t, src.CreateNew)
		assert.Equal(t, path, src.Filename)
		return nil
	})

	reply := svc.AddVault(context.Background(), filePayload(path, false))

	assert.True(t, reply.OK)
	assert.Equal(t, testRequestID, reply.RequestID)
	assert.Equal(t, models.VaultSourceID("src-1"), reply.SourceID)
}

func TestVaultBackendService_AddVault_FileNameOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, files := newTestBackendSvc(t, ctrl)
	override := " /vaults/override.bcup "

	payload := filePayload("/vaults/ignored.bcup", false)
	payload.FileNameOverride = &override

	files.EXPECT().Exists(gomock.Any(), "/vaults/override.bcup").Return(true, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	reply := svc.AddVault(context.Background(), payload)
	assert.True(t, reply.OK)
}

func TestVaultBackendService_AddVault_RegistersResolvedFilename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockVaultSourceRepository(ctrl)
	files := mock.NewMockVaultFiles(ctrl)
	svc := NewVaultBackendService(repo, files, logger.Nop()).(*vaultBackendService)
	svc.idGenerator = fixedIDGenerator("src-1")
	svc.now = func() time.Time { return backendNow }

	const resolved = "/srv/vaults/rel.bcup"
	gomock.InOrder(
		files.EXPECT().Resolve("rel.bcup").Return(resolved),
		files.EXPECT().Exists(gomock.Any(), resolved).Return(false, nil),
		files.EXPECT().Create(gomock.Any(), resolved).Return(nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, src models.VaultSource) error {
			assert.Equal(t, resolved, src.Filename)
			return nil
		}),
	)

	reply := svc.AddVault(context.Background(), filePayload("rel.bcup", true))
	assert.True(t, reply.OK)
}

func TestVaultBackendService_AddVault_Rejections(t *testing.T) {
	const path = "/vaults/a.bcup"

	tests := []struct {
		name      string
		createNew bool
		setup     func(repo *mock.MockVaultSourceRepository, files *mock.MockVaultFiles)
		wantMsg   string
	}{
		{
			name:      "new over existing file",
			createNew: true,
			setup: func(_ *mock.MockVaultSourceRepository, files *mock.MockVaultFiles) {
				files.EXPECT().Exists(gomock.Any(), path).Return(true, nil)
			},
			wantMsg: app.MsgVaultFileExists,
		},
		{
			name:      "existing file is missing",
			createNew: false,
			setup: func(_ *mock.MockVaultSourceRepository, files *mock.MockVaultFiles) {
				files.EXPECT().Exists(gomock.Any(), path).Return(false, nil)
			},
			wantMsg: app.MsgVaultFileNotFound,
		},
		{
			name:      "stat error",
			createNew: false,
			setup: func(_ *mock.MockVaultSourceRepository, files *mock.MockVaultFiles) {
				files.EXPECT().Exists(gomock.Any(), path).Return(false, errors.New("permission denied"))
			},
			wantMsg: app.MsgInternalServerError,
		},
		{
			name:      "file created concurrently",
			createNew: true,
			setup: func(_ *mock.MockVaultSourceRepository, files *mock.MockVaultFiles) {
				files.EXPECT().Exists(gomock.Any(), path).Return(false, nil)
				files.EXPECT().Create(gomock.Any(), path).Return(store.ErrVaultFileExists)
			},
			wantMsg: app.MsgVaultFileExists,
		},
		{
			name:      "existing source already registered",
			createNew: false,
			setup: func(repo *mock.MockVaultSourceRepository, files *mock.MockVaultFiles) {
				files.EXPECT().Exists(gomock.Any(), path).Return(true, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(store.ErrVaultSourceExists)
			},
			wantMsg: app.MsgVaultSourceExists,
		},
		{
			name:      "registry failure removes created file",
			createNew: true,
			setup: func(repo *mock.MockVaultSourceRepository, files *mock.MockVaultFiles) {
				gomock.InOrder(
					files.EXPECT().Exists(gomock.Any(), path).Return(false, nil),
					files.EXPECT().Create(gomock.Any(), path).Return(nil),
					repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down")),
					files.EXPECT().Remove(gomock.Any(), path).Return(nil),
				)
			},
			wantMsg: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, files := newTestBackendSvc(t, ctrl)
			tt.setup(repo, files)

			reply := svc.AddVault(context.Background(), filePayload(path, tt.createNew))

			assert.False(t, reply.OK)
			assert.Equal(t, testRequestID, reply.RequestID)
			assert.Equal(t, tt.wantMsg, reply.Error)
			assert.Empty(t, reply.SourceID)
		})
	}
}

func TestVaultBackendService_AddVault_UnsupportedDatasource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestBackendSvc(t, ctrl)
	payload := filePayload("", false)
	payload.DatasourceConfig = models.DatasourceConfig{Type: "webdav", Properties: map[string]string{"endpoint": "https://dav"}}

	reply := svc.AddVault(context.Background(), payload)

	assert.False(t, reply.OK)
	assert.Equal(t, app.MsgUnsupportedDatasource, reply.Error)
}

// ── filename requests ────────────────────────────────────────────────────────

func TestVaultBackendService_Filenames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, files := newTestBackendSvc(t, ctrl)
	files.EXPECT().NewVaultFilename(gomock.Any()).Return("/vaults/vault-1.bcup", nil)
	files.EXPECT().ExistingVaultFilename(gomock.Any()).Return("", nil)

	newName, err := svc.NewVaultFilename(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/vaults/vault-1.bcup", newName)

	existing, err := svc.ExistingVaultFilename(context.Background())
	require.NoError(t, err)
	assert.Empty(t, existing)
}

func TestVaultBackendService_ListVaultSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestBackendSvc(t, ctrl)
	sources := []models.VaultSource{{SourceID: "a"}, {SourceID: "b"}}
	repo.EXPECT().List(gomock.Any()).Return(sources, nil)

	got, err := svc.ListVaultSources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sources, got)
}

func TestVaultBackendService_ShowError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestBackendSvc(t, ctrl)

	// только логирование, зависимостей не трогает
	assert.NotPanics(t, func() {
		svc.ShowError(context.Background(), app.MsgPasswordIsWeak)
		svc.ShowError(context.Background(), "   ")
	})
}
