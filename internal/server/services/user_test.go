package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskify/internal/common"
	"github.com/dmitrijs2005/taskify/internal/dbx"
	"github.com/dmitrijs2005/taskify/internal/server/auth"
	"github.com/dmitrijs2005/taskify/internal/server/models"
	tasksrepo "github.com/dmitrijs2005/taskify/internal/server/repositories/tasks"
	usersrepo "github.com/dmitrijs2005/taskify/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newTokens(t *testing.T) *auth.Service {
	t.Helper()
	return auth.NewService([]byte("test-secret"), time.Hour)
}

// fakeUsersRepo is an in-memory users.Repository keyed by email and id.
type fakeUsersRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User

	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{
		byEmail: map[string]*models.User{},
		byID:    map[string]*models.User{},
	}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.CreatedAt = time.Now()
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *memTasksRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository      { return m.t }

// newUserService wires the service to fake repositories over a sqlmock DB.
// Repository calls never reach the DB, but Register's transaction does, so
// tests prime Begin/Commit/Rollback expectations on the returned mock.
func newUserService(t *testing.T) (*UserService, *fakeUsersRepo, *auth.Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	repo := newFakeUsersRepo()
	tokens := newTokens(t)
	return NewUserService(db, &fakeRepoManager{u: repo}, tokens), repo, tokens, mock
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	s, repo, tokens, mock := newUserService(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	user, token, err := s.Register(context.Background(), "Ann", "A@X.com", "pw1234")
	require.NoError(t, err)

	require.NotEmpty(t, user.ID)
	require.Equal(t, "Ann", user.Name)
	require.Equal(t, "a@x.com", user.Email, "email must be normalized")

	// raw password is never kept, only a bcrypt hash that matches it
	require.NoError(t, bcrypt.CompareHashAndPassword(user.PasswordHash, []byte("pw1234")))
	require.NotContains(t, string(user.PasswordHash), "pw1234")

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, subject)

	_, ok := repo.byEmail["a@x.com"]
	require.True(t, ok)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s, _, _, mock := newUserService(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, _, err := s.Register(context.Background(), "Ann", "a@x.com", "pw1234")
	require.NoError(t, err)

	_, _, err = s.Register(context.Background(), "Another Ann", "a@x.com", "different")
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestRegister_Validation(t *testing.T) {
	// validation fails before any transaction starts
	s, _, _, _ := newUserService(t)

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "a@x.com", "pw1234"},
		{"empty email", "Ann", "", "pw1234"},
		{"email without at sign", "Ann", "not-an-email", "pw1234"},
		{"short password", "Ann", "a@x.com", "pw1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := s.Register(context.Background(), tc.userName, tc.email, tc.password)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestRegister_CreateError(t *testing.T) {
	s, repo, _, mock := newUserService(t)
	mock.ExpectBegin()
	mock.ExpectRollback()
	repo.createErr = errors.New("boom")

	_, _, err := s.Register(context.Background(), "Ann", "a@x.com", "pw1234")
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrValidation)
}

func TestLogin_Success(t *testing.T) {
	s, _, tokens, mock := newUserService(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	registered, _, err := s.Register(context.Background(), "Ann", "a@x.com", "pw1234")
	require.NoError(t, err)

	user, token, err := s.Login(context.Background(), "a@x.com", "pw1234")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, subject)
}

func TestLogin_UniformErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	s, _, _, mock := newUserService(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	_, _, err := s.Register(context.Background(), "Ann", "a@x.com", "pw1234")
	require.NoError(t, err)

	_, _, errUnknown := s.Login(context.Background(), "nobody@x.com", "pw1234")
	_, _, errWrongPw := s.Login(context.Background(), "a@x.com", "wrong")

	require.ErrorIs(t, errUnknown, common.ErrorUnauthorized)
	require.ErrorIs(t, errWrongPw, common.ErrorUnauthorized)
	require.Equal(t, errUnknown.Error(), errWrongPw.Error(),
		"must not leak which part of the credentials was wrong")
}

func TestLogin_RepoError(t *testing.T) {
	s, repo, _, _ := newUserService(t)
	repo.getErr = errors.New("db down")

	_, _, err := s.Login(context.Background(), "a@x.com", "pw1234")
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestGetByID(t *testing.T) {
	s, _, _, mock := newUserService(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	registered, _, err := s.Register(context.Background(), "Ann", "a@x.com", "pw1234")
	require.NoError(t, err)

	got, err := s.GetByID(context.Background(), registered.ID)
	require.NoError(t, err)
	require.Equal(t, "Ann", got.Name)

	_, err = s.GetByID(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
