package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/blog_service/auth"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/myErrors"
)

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("unit-test-secret", 0)
}

// 注册时邮箱归一化后落库，唯一性检查也用归一化后的值。
func TestRegisterNormalizesEmail(t *testing.T) {
	var checkedEmail string
	var created *entities.User
	userRepo := &fakeUserRepo{
		emailExists: func(_ context.Context, email string) (bool, error) {
			checkedEmail = email
			return false, nil
		},
		createUser: func(_ context.Context, user *entities.User) error {
			created = user
			return nil
		},
	}

	svc := NewAccountService(userRepo, testTokens(), newTestLogger(t))

	authVO, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "  New.Author@Example.COM ",
		Password: "password123",
		Name:     "新作者",
	})
	require.NoError(t, err)

	assert.Equal(t, "new.author@example.com", checkedEmail)
	require.NotNil(t, created)
	assert.Equal(t, "new.author@example.com", created.Email)
	assert.Equal(t, enums.RoleAuthor, created.Role)
	assert.NotEmpty(t, authVO.Token)
}

// 更新资料可以换邮箱和密码：邮箱归一化并查重，密码重新哈希。
func TestUpdateProfileChangesEmailAndPassword(t *testing.T) {
	existing := &entities.User{
		ID:           "user-1",
		Email:        "old@example.com",
		PasswordHash: "$2a$10$old-hash",
		Role:         enums.RoleAuthor,
	}

	var checkedEmail string
	var saved *entities.User
	userRepo := &fakeUserRepo{
		getUserByID: func(_ context.Context, _ string) (*entities.User, error) {
			return existing, nil
		},
		emailExists: func(_ context.Context, email string) (bool, error) {
			checkedEmail = email
			return false, nil
		},
		saveUser: func(_ context.Context, user *entities.User) error {
			saved = user
			return nil
		},
	}

	svc := NewAccountService(userRepo, testTokens(), newTestLogger(t))

	newEmail := "  New@Example.COM "
	newPassword := "brand-new-pass"
	_, err := svc.UpdateProfile(context.Background(), "user-1", &dto.UpdateProfileRequest{
		Email:    &newEmail,
		Password: &newPassword,
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", checkedEmail)
	require.NotNil(t, saved)
	assert.Equal(t, "new@example.com", saved.Email)
	assert.True(t, auth.CheckPassword(saved.PasswordHash, newPassword))
}

// 新邮箱被占用时报 ErrEmailTaken，不落库。
func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	userRepo := &fakeUserRepo{
		getUserByID: func(_ context.Context, _ string) (*entities.User, error) {
			return &entities.User{ID: "user-1", Email: "old@example.com"}, nil
		},
		emailExists: func(_ context.Context, _ string) (bool, error) {
			return true, nil
		},
		saveUser: func(_ context.Context, _ *entities.User) error {
			t.Fatal("邮箱冲突时不应保存用户")
			return nil
		},
	}

	svc := NewAccountService(userRepo, testTokens(), newTestLogger(t))

	newEmail := "taken@example.com"
	_, err := svc.UpdateProfile(context.Background(), "user-1", &dto.UpdateProfileRequest{Email: &newEmail})
	assert.ErrorIs(t, err, myErrors.ErrEmailTaken)
}

// 提交与当前相同的邮箱（仅大小写不同）不触发查重，直接视为未变更。
func TestUpdateProfileSameEmailSkipsUniquenessCheck(t *testing.T) {
	userRepo := &fakeUserRepo{
		getUserByID: func(_ context.Context, _ string) (*entities.User, error) {
			return &entities.User{ID: "user-1", Email: "me@example.com"}, nil
		},
		emailExists: func(_ context.Context, _ string) (bool, error) {
			t.Fatal("邮箱未变化时不应查重")
			return false, nil
		},
	}

	svc := NewAccountService(userRepo, testTokens(), newTestLogger(t))

	sameEmail := "Me@Example.com"
	_, err := svc.UpdateProfile(context.Background(), "user-1", &dto.UpdateProfileRequest{Email: &sameEmail})
	require.NoError(t, err)
}
