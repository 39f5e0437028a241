package mysql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Slug 唯一索引覆盖软删除行，占用检查必须不带 deleted_at 过滤，
// 否则重建同名文章会先通过检查、再在插入时撞唯一约束。
// 这里用锚定正则锁住整条 SQL：WHERE 里只允许出现 slug 条件。
func TestSlugExistsCountsSoftDeletedRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db, newTestLogger(t))

	mock.ExpectQuery(`^SELECT count\(\*\) FROM .posts. WHERE slug = \?$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	taken, err := repo.SlugExists(context.Background(), "hello-world", 0)
	require.NoError(t, err)
	assert.True(t, taken)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 更新场景排除自身 ID，同样不带软删除过滤。
func TestSlugExistsExcludesSelf(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db, newTestLogger(t))

	mock.ExpectQuery(`^SELECT count\(\*\) FROM .posts. WHERE slug = \? AND id <> \?$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	taken, err := repo.SlugExists(context.Background(), "hello-world", 42)
	require.NoError(t, err)
	assert.False(t, taken)
	require.NoError(t, mock.ExpectationsWereMet())
}
