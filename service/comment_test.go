package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/query"
)

func commentStatusPtr(s enums.CommentStatus) *enums.CommentStatus { return &s }

func publishedPost(id uint64, authorID string) *entities.Post {
	post := &entities.Post{
		Status:   enums.PostPublished,
		AuthorID: authorID,
	}
	post.ID = id
	return post
}

// 新评论一律以待审核落库，请求体没有任何字段能绕过这条规则；
// 评论者邮箱统一归一化后存储。
func TestCreateCommentAlwaysPending(t *testing.T) {
	var created *entities.Comment
	commentRepo := &fakeCommentRepo{
		createComment: func(_ context.Context, _ *gorm.DB, comment *entities.Comment) error {
			created = comment
			return nil
		},
	}
	postRepo := &fakePostRepo{
		getPostByID: func(_ context.Context, id uint64) (*entities.Post, error) {
			return publishedPost(id, "author-1"), nil
		},
	}

	svc := NewCommentService(nil, commentRepo, postRepo, nil, newTestLogger(t))

	commentVO, err := svc.CreateComment(context.Background(), 7, &dto.CreateCommentRequest{
		AuthorName:  "游客",
		AuthorEmail: "  Visitor@Example.COM ",
		Content:     "不错的文章",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, enums.CommentPending, created.Status)
	assert.Equal(t, "visitor@example.com", created.AuthorEmail)
	assert.Equal(t, enums.CommentPending, commentVO.Status)
}

// 审核队列不传状态时返回全部状态的评论，状态条件不进谓词树。
func TestListForModerationWithoutStatusReturnsAll(t *testing.T) {
	var captured query.Predicate
	commentRepo := &fakeCommentRepo{
		findByQuery: func(_ context.Context, pred query.Predicate, _ query.Window) ([]*entities.Comment, int64, error) {
			captured = pred
			return nil, 0, nil
		},
	}

	svc := NewCommentService(nil, commentRepo, &fakePostRepo{}, nil, newTestLogger(t))

	caller := Caller{ID: "admin-1", Role: enums.RoleSuperadmin}
	_, err := svc.ListForModeration(context.Background(), caller, &dto.ListCommentsRequest{})
	require.NoError(t, err)

	sql, args := captured.Compile()
	assert.Empty(t, sql)
	assert.Empty(t, args)
}

// 显式传状态时按状态过滤，作者的范围圈定条件仍在。
func TestListForModerationStatusFilterCombinesWithOwnership(t *testing.T) {
	var captured query.Predicate
	commentRepo := &fakeCommentRepo{
		findByQuery: func(_ context.Context, pred query.Predicate, _ query.Window) ([]*entities.Comment, int64, error) {
			captured = pred
			return nil, 0, nil
		},
	}
	postRepo := &fakePostRepo{
		distinctIDsByAuthor: func(_ context.Context, _ string) ([]uint64, error) {
			return []uint64{3, 5}, nil
		},
	}

	svc := NewCommentService(nil, commentRepo, postRepo, nil, newTestLogger(t))

	caller := Caller{ID: "author-1", Role: enums.RoleAuthor}
	_, err := svc.ListForModeration(context.Background(), caller, &dto.ListCommentsRequest{
		Status: commentStatusPtr(enums.CommentApproved),
	})
	require.NoError(t, err)

	sql, args := captured.Compile()
	assert.Equal(t, "post_id IN (?,?) AND status = ?", sql)
	require.Len(t, args, 3)
	assert.Equal(t, enums.CommentApproved, args[2])
}
