package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/blog_service/models/enums"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("user-123", enums.RoleAuthor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, enums.RoleAuthor, claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Issue("user-123", enums.RoleReader)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue("user-123", enums.RoleReader)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	_, err := m.Parse("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", "s3cret!"))
}

func TestCanMutate(t *testing.T) {
	// 超级管理员可以修改任何人的资源
	assert.True(t, CanMutate("admin-1", enums.RoleSuperadmin, "other-user"))

	// 其他角色只能修改自己的资源
	assert.True(t, CanMutate("user-1", enums.RoleAuthor, "user-1"))
	assert.False(t, CanMutate("user-1", enums.RoleAuthor, "user-2"))
	assert.False(t, CanMutate("user-1", enums.RoleAdmin, "user-2"))

	// 匿名调用者不具备任何修改权限
	assert.False(t, CanMutate("", enums.RoleReader, ""))
}
