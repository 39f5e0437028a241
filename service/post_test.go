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
	"github.com/Xushengqwer/blog_service/myErrors"
)

func statusPtr(s enums.PostStatus) *enums.PostStatus { return &s }

// 不指定状态时直接发布，PublishedAt 随创建写入。
func TestCreatePostDefaultsToPublished(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	var created *entities.Post
	repo := &fakePostRepo{
		createPost: func(_ context.Context, _ *gorm.DB, post *entities.Post) error {
			created = post
			return nil
		},
	}

	svc := NewPostService(db, repo, &fakeCommentRepo{}, &fakeUserRepo{}, nil, nil, newTestLogger(t))

	caller := Caller{ID: "author-1", Role: enums.RoleAuthor}
	detail, err := svc.CreatePost(context.Background(), caller, &dto.CreatePostRequest{
		Title: "Hello World",
		Body:  "<p>hi</p>",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, enums.PostPublished, created.Status)
	assert.NotNil(t, created.PublishedAt)
	assert.Equal(t, enums.PostPublished, detail.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 显式传 status=0 仍可保存草稿，草稿没有发布时间。
func TestCreatePostExplicitDraft(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	var created *entities.Post
	repo := &fakePostRepo{
		createPost: func(_ context.Context, _ *gorm.DB, post *entities.Post) error {
			created = post
			return nil
		},
	}

	svc := NewPostService(db, repo, &fakeCommentRepo{}, &fakeUserRepo{}, nil, nil, newTestLogger(t))

	caller := Caller{ID: "author-1", Role: enums.RoleAuthor}
	_, err := svc.CreatePost(context.Background(), caller, &dto.CreatePostRequest{
		Title:  "Work in Progress",
		Body:   "<p>draft</p>",
		Status: statusPtr(enums.PostDraft),
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, enums.PostDraft, created.Status)
	assert.Nil(t, created.PublishedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 读者角色没有发文权限，在任何数据库交互之前就被拒绝。
func TestCreatePostRejectsReaderRole(t *testing.T) {
	repo := &fakePostRepo{
		slugExists: func(_ context.Context, _ string, _ uint64) (bool, error) {
			t.Fatal("读者请求不应触达 Slug 检查")
			return false, nil
		},
	}

	svc := NewPostService(nil, repo, &fakeCommentRepo{}, &fakeUserRepo{}, nil, nil, newTestLogger(t))

	caller := Caller{ID: "reader-1", Role: enums.RoleReader}
	detail, err := svc.CreatePost(context.Background(), caller, &dto.CreatePostRequest{
		Title: "Nope",
		Body:  "<p>nope</p>",
	})
	assert.ErrorIs(t, err, myErrors.ErrForbidden)
	assert.Nil(t, detail)
}
