package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/query"
)

// CommentRepository 定义了评论数据在 MySQL 中的持久化操作接口。
type CommentRepository interface {
	// CreateComment 持久化一条新评论，状态由服务层统一置为待审核。
	CreateComment(ctx context.Context, db *gorm.DB, comment *entities.Comment) error

	// GetCommentByID 根据 ID 检索评论，未找到返回 commonerrors.ErrRepoNotFound。
	GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error)

	// FindByQuery 按谓词树执行条件分页查询，排序固定为创建时间倒序。
	// - 审核队列的范围圈定（作者只看自己文章下的评论）由服务层编进谓词树。
	FindByQuery(ctx context.Context, pred query.Predicate, window query.Window) ([]*entities.Comment, int64, error)

	// ListApprovedByPost 公开接口按文章取已通过的评论，时间倒序（最新的在前）。
	ListApprovedByPost(ctx context.Context, postID uint64) ([]*entities.Comment, error)

	// UpdateStatus 更新评论的审核状态。
	UpdateStatus(ctx context.Context, id uint64, status enums.CommentStatus) error

	// CountByQuery 按谓词树统计评论数，pred 为 nil 时统计全部。
	CountByQuery(ctx context.Context, pred query.Predicate) (int64, error)

	// DeleteComment 软删除单条评论。
	DeleteComment(ctx context.Context, db *gorm.DB, id uint64) error

	// DeleteByPostID 删除文章名下全部评论，文章删除时在同一事务内级联执行。
	DeleteByPostID(ctx context.Context, db *gorm.DB, postID uint64) error
}

type commentRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCommentRepository 是 commentRepository 的构造函数。
func NewCommentRepository(db *gorm.DB, logger *core.ZapLogger) CommentRepository {
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *commentRepository) CreateComment(ctx context.Context, db *gorm.DB, comment *entities.Comment) error {
	if err := db.WithContext(ctx).Create(comment).Error; err != nil {
		r.logger.Error("创建评论失败", zap.Error(err), zap.Uint64("postID", comment.PostID))
		return err
	}
	return nil
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.db.WithContext(ctx).First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取评论未找到", zap.Uint64("commentID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取评论数据库查询失败", zap.Uint64("commentID", id), zap.Error(err))
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) FindByQuery(ctx context.Context, pred query.Predicate, window query.Window) ([]*entities.Comment, int64, error) {
	var comments []*entities.Comment
	var totalCount int64

	window = window.Normalize()

	baseQuery := r.db.WithContext(ctx).Model(&entities.Comment{})
	countQuery := r.db.WithContext(ctx).Model(&entities.Comment{})
	if pred != nil {
		if sql, args := pred.Compile(); sql != "" {
			baseQuery = baseQuery.Where(sql, args...)
			countQuery = countQuery.Where(sql, args...)
		}
	}

	if err := countQuery.Count(&totalCount).Error; err != nil {
		r.logger.Error("评论条件查询：计数失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数评论失败: %w", err)
	}
	if totalCount == 0 {
		return comments, 0, nil
	}

	err := baseQuery.
		Order("created_at DESC").
		Offset(window.Offset()).
		Limit(window.Limit).
		Find(&comments).Error
	if err != nil {
		r.logger.Error("评论条件查询：列表查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("查询评论列表失败: %w", err)
	}

	return comments, totalCount, nil
}

func (r *commentRepository) ListApprovedByPost(ctx context.Context, postID uint64) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Where("status = ?", enums.CommentApproved).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		r.logger.Error("获取文章评论失败", zap.Error(err), zap.Uint64("postID", postID))
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) UpdateStatus(ctx context.Context, id uint64, status enums.CommentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		r.logger.Error("更新评论状态失败", zap.Error(result.Error), zap.Uint64("commentID", id))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *commentRepository) CountByQuery(ctx context.Context, pred query.Predicate) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&entities.Comment{})
	if pred != nil {
		if sql, args := pred.Compile(); sql != "" {
			q = q.Where(sql, args...)
		}
	}
	if err := q.Count(&count).Error; err != nil {
		r.logger.Error("统计评论数失败", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *commentRepository) DeleteByPostID(ctx context.Context, db *gorm.DB, postID uint64) error {
	// 级联删除不要求存在评论，RowsAffected 为 0 也算成功
	return db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&entities.Comment{}).Error
}
