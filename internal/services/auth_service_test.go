package services

import (
	"context"
	"testing"
	"time"

	"talenthub/internal/models"
	"talenthub/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockUserRepository{}
	suite.service = NewAuthService(suite.mockRepo, "test-secret", time.Hour)

	suite.mockRepo.Test(suite.T())
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()

	suite.mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Run(func(args mock.Arguments) {
		user := args.Get(1).(*models.User)
		// The repository never sees the plaintext
		assert.NotEqual(suite.T(), "secret123", user.PasswordHash)
		assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
		user.ID = 1
	})

	user, token, err := suite.service.Register(ctx, "Jane Doe", "jane@example.com", "secret123")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), user.ID)
	assert.NotEmpty(suite.T(), token)

	// The issued token is immediately accepted and carries the user id
	claims, err := suite.service.ValidateToken(token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), claims.UserID)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()

	suite.mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(repositories.ErrDuplicateEmail)

	user, token, err := suite.service.Register(ctx, "Jane Doe", "jane@example.com", "secret123")
	assert.ErrorIs(suite.T(), err, repositories.ErrDuplicateEmail)
	assert.Nil(suite.T(), user)
	assert.Empty(suite.T(), token)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(suite.T(), err)

	stored := &models.User{ID: 1, Name: "Jane Doe", Email: "jane@example.com", PasswordHash: string(hash)}
	suite.mockRepo.On("GetByEmail", ctx, "jane@example.com").Return(stored, nil)

	user, token, err := suite.service.Login(ctx, "jane@example.com", "secret123")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), user.ID)

	claims, err := suite.service.ValidateToken(token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), claims.UserID)
}

// Wrong password and unknown email must fail with the same error value so the
// handler cannot leak which part was wrong.
func (suite *AuthServiceTestSuite) TestLogin_WrongPasswordAndUnknownEmailIndistinguishable() {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(suite.T(), err)

	stored := &models.User{ID: 1, Email: "jane@example.com", PasswordHash: string(hash)}
	suite.mockRepo.On("GetByEmail", ctx, "jane@example.com").Return(stored, nil)
	suite.mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, repositories.ErrNotFound)

	_, _, wrongPasswordErr := suite.service.Login(ctx, "jane@example.com", "not-the-password")
	_, _, unknownEmailErr := suite.service.Login(ctx, "nobody@example.com", "secret123")

	assert.ErrorIs(suite.T(), wrongPasswordErr, ErrInvalidCredentials)
	assert.ErrorIs(suite.T(), unknownEmailErr, ErrInvalidCredentials)
	assert.Equal(suite.T(), wrongPasswordErr, unknownEmailErr)
}

func (suite *AuthServiceTestSuite) TestValidateToken_Expired() {
	expiredService := NewAuthService(suite.mockRepo, "test-secret", -time.Minute)

	token, err := expiredService.GenerateToken(1)
	assert.NoError(suite.T(), err)

	claims, err := expiredService.ValidateToken(token)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

func (suite *AuthServiceTestSuite) TestValidateToken_WrongSecret() {
	otherService := NewAuthService(suite.mockRepo, "other-secret", time.Hour)

	token, err := otherService.GenerateToken(1)
	assert.NoError(suite.T(), err)

	claims, err := suite.service.ValidateToken(token)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

func (suite *AuthServiceTestSuite) TestValidateToken_Garbage() {
	claims, err := suite.service.ValidateToken("not.a.token")
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}
