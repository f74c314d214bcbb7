package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/repository/memory"
	"github.com/nirmaan-labs/nirmaan/internal/schema"
	"github.com/nirmaan-labs/nirmaan/internal/service"
	"github.com/nirmaan-labs/nirmaan/internal/storage"
)

// testEnv wires real services over the in-memory store so handler
// tests exercise the same path as production requests.
type testEnv struct {
	store      *memory.Store
	logger     *slog.Logger
	validator  *schema.Validator
	userSvc    service.UserService
	contactSvc service.ContactService
	projectSvc service.ProjectService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	validator, err := schema.NewValidator()
	require.NoError(t, err)

	files, err := storage.NewLocalStorage(storage.LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "/files",
	}, logger)
	require.NoError(t, err)

	return &testEnv{
		store:      store,
		logger:     logger,
		validator:  validator,
		userSvc:    service.NewUserService(store, store, logger),
		contactSvc: service.NewContactService(store, logger),
		projectSvc: service.NewProjectService(store, files, service.NewImagingProcessor(), logger),
	}
}

// seedAdmin creates an admin account directly in the store.
func (e *testEnv) seedAdmin(t *testing.T, username, password string) *domain.AdminUser {
	t.Helper()

	hash, err := service.HashPassword(password)
	require.NoError(t, err)
	user, err := e.store.CreateUser(context.Background(), domain.AdminUserParams{
		Username:     username,
		PasswordHash: hash,
		Name:         "Site Admin",
		Role:         "admin",
	})
	require.NoError(t, err)
	return user
}
