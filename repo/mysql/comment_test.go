package mysql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 公开评论列表要求最新的在前，这里锁住仓库层拼出的排序方向。
func TestListApprovedByPostOrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db, newTestLogger(t))

	mock.ExpectQuery(`SELECT .* FROM .comments. WHERE post_id = \? AND status = \?.*ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	comments, err := repo.ListApprovedByPost(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, comments)
	require.NoError(t, mock.ExpectationsWereMet())
}
