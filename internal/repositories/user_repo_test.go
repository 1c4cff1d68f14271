package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"talenthub/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type UserRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    UserRepository
	context context.Context
}

func (suite *UserRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewUserRepository(mock)
	suite.context = context.Background()
}

func (suite *UserRepoTestSuite) TearDownTest() {
	suite.mock.Close()
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func TestUserRepoTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepoTestSuite))
}

func (suite *UserRepoTestSuite) TestCreate_Success() {
	user := &models.User{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: "$2a$10$examplehash",
	}

	now := time.Now()
	suite.mock.ExpectQuery(`INSERT INTO users \(name, email, password_hash\)`).
		WithArgs(user.Name, user.Email, user.PasswordHash).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), now, now))

	err := suite.repo.Create(suite.context, user)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), user.ID)
	assert.Equal(suite.T(), now, user.CreatedAt)
}

func (suite *UserRepoTestSuite) TestCreate_DuplicateEmail() {
	user := &models.User{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: "$2a$10$examplehash",
	}

	suite.mock.ExpectQuery(`INSERT INTO users \(name, email, password_hash\)`).
		WithArgs(user.Name, user.Email, user.PasswordHash).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := suite.repo.Create(suite.context, user)
	assert.ErrorIs(suite.T(), err, ErrDuplicateEmail)
	assert.Zero(suite.T(), user.ID)
}

func (suite *UserRepoTestSuite) TestGetByEmail_Success() {
	now := time.Now()
	suite.mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at, updated_at`).
		WithArgs("jane@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(int64(1), "Jane Doe", "jane@example.com", "$2a$10$examplehash", now, now))

	user, err := suite.repo.GetByEmail(suite.context, "jane@example.com")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), user.ID)
	assert.Equal(suite.T(), "$2a$10$examplehash", user.PasswordHash)
}

func (suite *UserRepoTestSuite) TestGetByEmail_NotFound() {
	suite.mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at, updated_at`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := suite.repo.GetByEmail(suite.context, "nobody@example.com")
	assert.ErrorIs(suite.T(), err, ErrNotFound)
	assert.Nil(suite.T(), user)
}

func (suite *UserRepoTestSuite) TestGetByID_ExcludesPasswordHash() {
	now := time.Now()
	suite.mock.ExpectQuery(`SELECT id, name, email, created_at, updated_at`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}).
			AddRow(int64(1), "Jane Doe", "jane@example.com", now, now))

	user, err := suite.repo.GetByID(suite.context, 1)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jane@example.com", user.Email)
	assert.Empty(suite.T(), user.PasswordHash)
}

func (suite *UserRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`SELECT id, name, email, created_at, updated_at`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	user, err := suite.repo.GetByID(suite.context, 42)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
	assert.Nil(suite.T(), user)
}

func (suite *UserRepoTestSuite) TestGetByEmail_UnexpectedError() {
	suite.mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at, updated_at`).
		WithArgs("jane@example.com").
		WillReturnError(errors.New("connection refused"))

	user, err := suite.repo.GetByEmail(suite.context, "jane@example.com")
	assert.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, ErrNotFound)
	assert.Nil(suite.T(), user)
}
