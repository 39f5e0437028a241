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
	"github.com/Xushengqwer/blog_service/models/query"
)

// PostRepository 定义了文章数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type PostRepository interface {
	// CreatePost 持久化一篇新文章。
	// - db 参数允许传入事务对象，与评论级联等操作共用一个事务。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// SavePost 全量保存文章实体。
	// - 服务层先取出实体、合并增量字段后整体落库；GORM 的 Save 会自动刷新 updated_at。
	SavePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// FindByQuery 按谓词树执行条件分页查询。
	// - pred 由服务层的查询组装器生成，仓库层不关心具体的可见性规则；
	//   先在同一条件上计数，再带排序和窗口取当前页，保证 total 与列表一致。
	FindByQuery(ctx context.Context, pred query.Predicate, orders []query.Order, window query.Window) ([]*entities.Post, int64, error)

	// GetPostByID 根据单个 ID 检索文章。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetPostByID(ctx context.Context, id uint64) (*entities.Post, error)

	// GetPostBySlug 根据 Slug 检索文章，公开详情页的主入口。
	GetPostBySlug(ctx context.Context, slug string) (*entities.Post, error)

	// GetPostsByIDs 批量按 ID 取文章，保持入参顺序（热门榜场景）。
	GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error)

	// SlugExists 判断 Slug 是否已被其他文章占用。
	// - excludeID 用于更新场景排除自身，创建场景传 0。
	// - 唯一索引不区分 deleted_at，软删除的文章仍占用 Slug，检查必须连同已删除记录一起查。
	SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error)

	// DistinctIDsByAuthor 返回指定作者名下全部文章的 ID 列表。
	// - 评论审核队列按这批 ID 圈定作者可见的评论范围。
	DistinctIDsByAuthor(ctx context.Context, authorID string) ([]uint64, error)

	// CountByQuery 按谓词树统计文章数，pred 为 nil 时统计全部。
	CountByQuery(ctx context.Context, pred query.Predicate) (int64, error)

	// SumViewCounts 按谓词树汇总浏览量（文章表快照列），pred 为 nil 时为全站。
	SumViewCounts(ctx context.Context, pred query.Predicate) (int64, error)

	// DeletePost 对指定文章执行软删除。
	// - 软删除通过 GORM 的 deleted_at 约定实现，数据保留可追溯。
	DeletePost(ctx context.Context, db *gorm.DB, id uint64) error
}

// postRepository 是 PostRepository 接口针对 MySQL 的具体实现。
type postRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *core.ZapLogger) PostRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost 实现文章的数据库插入操作。
func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	// GORM 会自动填充 BaseModel 中的 CreatedAt 和 UpdatedAt 字段。
	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		return err
	}
	// 创建成功后，post 对象会包含 GORM 自动生成的 ID 和时间戳。
	return nil
}

// SavePost 实现文章的全量保存。
func (r *postRepository) SavePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	if err := db.WithContext(ctx).Save(post).Error; err != nil {
		r.logger.Error("保存文章失败", zap.Error(err), zap.Uint64("postID", post.ID))
		return err
	}
	return nil
}

// FindByQuery 按谓词树执行条件分页查询。
func (r *postRepository) FindByQuery(ctx context.Context, pred query.Predicate, orders []query.Order, window query.Window) ([]*entities.Post, int64, error) {
	var posts []*entities.Post
	var totalCount int64

	window = window.Normalize()

	// 把谓词树一次性编译为 SQL 片段；空片段表示不过滤
	baseQuery := r.db.WithContext(ctx).Model(&entities.Post{})
	countQuery := r.db.WithContext(ctx).Model(&entities.Post{})
	if pred != nil {
		if sql, args := pred.Compile(); sql != "" {
			baseQuery = baseQuery.Where(sql, args...)
			countQuery = countQuery.Where(sql, args...)
		}
	}

	// 先在相同条件上计数，再取当前页，保证 total 与列表来自同一条件
	if err := countQuery.Count(&totalCount).Error; err != nil {
		r.logger.Error("文章条件查询：计数失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数文章失败: %w", err)
	}
	if totalCount == 0 {
		return posts, 0, nil
	}

	for _, order := range orders {
		baseQuery = baseQuery.Order(order.Clause())
	}
	baseQuery = baseQuery.Offset(window.Offset()).Limit(window.Limit)

	if err := baseQuery.Find(&posts).Error; err != nil {
		r.logger.Error("文章条件查询：列表查询失败",
			zap.Error(err),
			zap.Int("page", window.Page),
			zap.Int("limit", window.Limit),
		)
		return nil, 0, fmt.Errorf("查询文章列表失败: %w", err)
	}

	return posts, totalCount, nil
}

// GetPostByID 实现根据单个 ID 获取文章。
func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	var post entities.Post

	// First 在找到记录时填充 post，未找到则返回 gorm.ErrRecordNotFound。
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取文章未找到", zap.Uint64("postID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取文章数据库查询失败", zap.Uint64("postID", id), zap.Error(err))
		return nil, err
	}

	return &post, nil
}

// GetPostBySlug 实现根据 Slug 获取文章。
func (r *postRepository) GetPostBySlug(ctx context.Context, slug string) (*entities.Post, error) {
	var post entities.Post

	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 Slug 获取文章未找到", zap.String("slug", slug))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 Slug 获取文章数据库查询失败", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	return &post, nil
}

// GetPostsByIDs 实现批量按 ID 获取文章，返回结果按入参顺序排列。
func (r *postRepository) GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error) {
	if len(ids) == 0 {
		return []*entities.Post{}, nil
	}

	var posts []*entities.Post
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error; err != nil {
		r.logger.Error("批量获取文章失败", zap.Error(err), zap.Int("count", len(ids)))
		return nil, err
	}

	// 数据库不保证 IN 查询的返回顺序，这里按入参顺序重排
	byID := make(map[uint64]*entities.Post, len(posts))
	for _, post := range posts {
		byID[post.ID] = post
	}
	ordered := make([]*entities.Post, 0, len(posts))
	for _, id := range ids {
		if post, ok := byID[id]; ok {
			ordered = append(ordered, post)
		}
	}
	return ordered, nil
}

// SlugExists 实现 Slug 占用检查。
// Unscoped 跳过软删除过滤：slug 列的唯一索引对已删除行同样生效，
// 只查存活行会在插入时撞上唯一约束。
func (r *postRepository) SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Unscoped().Model(&entities.Post{}).Where("slug = ?", slug)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		r.logger.Error("Slug 占用检查失败", zap.Error(err), zap.String("slug", slug))
		return false, err
	}
	return count > 0, nil
}

// DistinctIDsByAuthor 实现按作者取全部文章 ID。
func (r *postRepository) DistinctIDsByAuthor(ctx context.Context, authorID string) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("author_id = ?", authorID).
		Pluck("id", &ids).Error
	if err != nil {
		r.logger.Error("按作者获取文章 ID 列表失败", zap.Error(err), zap.String("authorID", authorID))
		return nil, err
	}
	return ids, nil
}

// CountByQuery 实现按谓词树统计文章数。
func (r *postRepository) CountByQuery(ctx context.Context, pred query.Predicate) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&entities.Post{})
	if pred != nil {
		if sql, args := pred.Compile(); sql != "" {
			q = q.Where(sql, args...)
		}
	}
	if err := q.Count(&count).Error; err != nil {
		r.logger.Error("统计文章数失败", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// SumViewCounts 实现浏览量汇总。
func (r *postRepository) SumViewCounts(ctx context.Context, pred query.Predicate) (int64, error) {
	var total *int64
	q := r.db.WithContext(ctx).Model(&entities.Post{}).Select("SUM(view_count)")
	if pred != nil {
		if sql, args := pred.Compile(); sql != "" {
			q = q.Where(sql, args...)
		}
	}
	err := q.Scan(&total).Error
	if err != nil {
		r.logger.Error("汇总浏览量失败", zap.Error(err))
		return 0, err
	}
	// 空表时 SUM 返回 NULL
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// DeletePost 实现文章的软删除。
// db 参数是执行此操作的数据库句柄 (可以是普通连接，也可以是事务 tx)
func (r *postRepository) DeletePost(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
