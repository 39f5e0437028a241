package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/query"
)

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(config.ZapConfig{Level: "error", Encoding: "console"})
	require.NoError(t, err)
	return logger
}

// newMockDB 构造一个由 sqlmock 驱动的 gorm.DB，服务层事务用 ExpectBegin/ExpectCommit 搭配。
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	return db, mock
}

// fakePostRepo 按需注入单个方法的实现，未注入的方法返回零值。
type fakePostRepo struct {
	createPost          func(ctx context.Context, db *gorm.DB, post *entities.Post) error
	savePost            func(ctx context.Context, db *gorm.DB, post *entities.Post) error
	findByQuery         func(ctx context.Context, pred query.Predicate, orders []query.Order, window query.Window) ([]*entities.Post, int64, error)
	getPostByID         func(ctx context.Context, id uint64) (*entities.Post, error)
	getPostBySlug       func(ctx context.Context, slug string) (*entities.Post, error)
	getPostsByIDs       func(ctx context.Context, ids []uint64) ([]*entities.Post, error)
	slugExists          func(ctx context.Context, slug string, excludeID uint64) (bool, error)
	distinctIDsByAuthor func(ctx context.Context, authorID string) ([]uint64, error)
	countByQuery        func(ctx context.Context, pred query.Predicate) (int64, error)
	sumViewCounts       func(ctx context.Context, pred query.Predicate) (int64, error)
	deletePost          func(ctx context.Context, db *gorm.DB, id uint64) error
}

func (f *fakePostRepo) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	if f.createPost != nil {
		return f.createPost(ctx, db, post)
	}
	return nil
}

func (f *fakePostRepo) SavePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	if f.savePost != nil {
		return f.savePost(ctx, db, post)
	}
	return nil
}

func (f *fakePostRepo) FindByQuery(ctx context.Context, pred query.Predicate, orders []query.Order, window query.Window) ([]*entities.Post, int64, error) {
	if f.findByQuery != nil {
		return f.findByQuery(ctx, pred, orders, window)
	}
	return nil, 0, nil
}

func (f *fakePostRepo) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	if f.getPostByID != nil {
		return f.getPostByID(ctx, id)
	}
	return nil, nil
}

func (f *fakePostRepo) GetPostBySlug(ctx context.Context, slug string) (*entities.Post, error) {
	if f.getPostBySlug != nil {
		return f.getPostBySlug(ctx, slug)
	}
	return nil, nil
}

func (f *fakePostRepo) GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error) {
	if f.getPostsByIDs != nil {
		return f.getPostsByIDs(ctx, ids)
	}
	return nil, nil
}

func (f *fakePostRepo) SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	if f.slugExists != nil {
		return f.slugExists(ctx, slug, excludeID)
	}
	return false, nil
}

func (f *fakePostRepo) DistinctIDsByAuthor(ctx context.Context, authorID string) ([]uint64, error) {
	if f.distinctIDsByAuthor != nil {
		return f.distinctIDsByAuthor(ctx, authorID)
	}
	return nil, nil
}

func (f *fakePostRepo) CountByQuery(ctx context.Context, pred query.Predicate) (int64, error) {
	if f.countByQuery != nil {
		return f.countByQuery(ctx, pred)
	}
	return 0, nil
}

func (f *fakePostRepo) SumViewCounts(ctx context.Context, pred query.Predicate) (int64, error) {
	if f.sumViewCounts != nil {
		return f.sumViewCounts(ctx, pred)
	}
	return 0, nil
}

func (f *fakePostRepo) DeletePost(ctx context.Context, db *gorm.DB, id uint64) error {
	if f.deletePost != nil {
		return f.deletePost(ctx, db, id)
	}
	return nil
}

type fakeCommentRepo struct {
	createComment      func(ctx context.Context, db *gorm.DB, comment *entities.Comment) error
	getCommentByID     func(ctx context.Context, id uint64) (*entities.Comment, error)
	findByQuery        func(ctx context.Context, pred query.Predicate, window query.Window) ([]*entities.Comment, int64, error)
	listApprovedByPost func(ctx context.Context, postID uint64) ([]*entities.Comment, error)
	updateStatus       func(ctx context.Context, id uint64, status enums.CommentStatus) error
	countByQuery       func(ctx context.Context, pred query.Predicate) (int64, error)
	deleteComment      func(ctx context.Context, db *gorm.DB, id uint64) error
	deleteByPostID     func(ctx context.Context, db *gorm.DB, postID uint64) error
}

func (f *fakeCommentRepo) CreateComment(ctx context.Context, db *gorm.DB, comment *entities.Comment) error {
	if f.createComment != nil {
		return f.createComment(ctx, db, comment)
	}
	return nil
}

func (f *fakeCommentRepo) GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error) {
	if f.getCommentByID != nil {
		return f.getCommentByID(ctx, id)
	}
	return nil, nil
}

func (f *fakeCommentRepo) FindByQuery(ctx context.Context, pred query.Predicate, window query.Window) ([]*entities.Comment, int64, error) {
	if f.findByQuery != nil {
		return f.findByQuery(ctx, pred, window)
	}
	return nil, 0, nil
}

func (f *fakeCommentRepo) ListApprovedByPost(ctx context.Context, postID uint64) ([]*entities.Comment, error) {
	if f.listApprovedByPost != nil {
		return f.listApprovedByPost(ctx, postID)
	}
	return nil, nil
}

func (f *fakeCommentRepo) UpdateStatus(ctx context.Context, id uint64, status enums.CommentStatus) error {
	if f.updateStatus != nil {
		return f.updateStatus(ctx, id, status)
	}
	return nil
}

func (f *fakeCommentRepo) CountByQuery(ctx context.Context, pred query.Predicate) (int64, error) {
	if f.countByQuery != nil {
		return f.countByQuery(ctx, pred)
	}
	return 0, nil
}

func (f *fakeCommentRepo) DeleteComment(ctx context.Context, db *gorm.DB, id uint64) error {
	if f.deleteComment != nil {
		return f.deleteComment(ctx, db, id)
	}
	return nil
}

func (f *fakeCommentRepo) DeleteByPostID(ctx context.Context, db *gorm.DB, postID uint64) error {
	if f.deleteByPostID != nil {
		return f.deleteByPostID(ctx, db, postID)
	}
	return nil
}

type fakeUserRepo struct {
	createUser     func(ctx context.Context, user *entities.User) error
	getUserByID    func(ctx context.Context, id string) (*entities.User, error)
	getUserByEmail func(ctx context.Context, email string) (*entities.User, error)
	emailExists    func(ctx context.Context, email string) (bool, error)
	saveUser       func(ctx context.Context, user *entities.User) error
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entities.User) error {
	if f.createUser != nil {
		return f.createUser(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if f.getUserByID != nil {
		return f.getUserByID(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	if f.getUserByEmail != nil {
		return f.getUserByEmail(ctx, email)
	}
	return nil, nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	if f.emailExists != nil {
		return f.emailExists(ctx, email)
	}
	return false, nil
}

func (f *fakeUserRepo) SaveUser(ctx context.Context, user *entities.User) error {
	if f.saveUser != nil {
		return f.saveUser(ctx, user)
	}
	return nil
}

type fakeSubscriptionRepo struct {
	createSubscription func(ctx context.Context, sub *entities.Subscription) error
	getByEmail         func(ctx context.Context, email string) (*entities.Subscription, error)
	saveSubscription   func(ctx context.Context, sub *entities.Subscription) error
	listActiveEmails   func(ctx context.Context) ([]string, error)
	listSubscriptions  func(ctx context.Context, activeOnly bool, offset, limit int) ([]*entities.Subscription, int64, error)
	countActive        func(ctx context.Context) (int64, error)
}

func (f *fakeSubscriptionRepo) CreateSubscription(ctx context.Context, sub *entities.Subscription) error {
	if f.createSubscription != nil {
		return f.createSubscription(ctx, sub)
	}
	return nil
}

func (f *fakeSubscriptionRepo) GetByEmail(ctx context.Context, email string) (*entities.Subscription, error) {
	if f.getByEmail != nil {
		return f.getByEmail(ctx, email)
	}
	return nil, nil
}

func (f *fakeSubscriptionRepo) SaveSubscription(ctx context.Context, sub *entities.Subscription) error {
	if f.saveSubscription != nil {
		return f.saveSubscription(ctx, sub)
	}
	return nil
}

func (f *fakeSubscriptionRepo) ListActiveEmails(ctx context.Context) ([]string, error) {
	if f.listActiveEmails != nil {
		return f.listActiveEmails(ctx)
	}
	return nil, nil
}

func (f *fakeSubscriptionRepo) ListSubscriptions(ctx context.Context, activeOnly bool, offset, limit int) ([]*entities.Subscription, int64, error) {
	if f.listSubscriptions != nil {
		return f.listSubscriptions(ctx, activeOnly, offset, limit)
	}
	return nil, 0, nil
}

func (f *fakeSubscriptionRepo) CountActive(ctx context.Context) (int64, error) {
	if f.countActive != nil {
		return f.countActive(ctx)
	}
	return 0, nil
}
