package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/auth"
	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/events"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/mq/producer"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/repo/redis"
)

// PostService 定义了处理文章核心业务逻辑的接口。
type PostService interface {
	// CreatePost 处理作者创建新文章的业务流程。
	// - 需要作者及以上角色，读者返回 myErrors.ErrForbidden。
	// - Slug 为空时根据标题生成；显式传入的 Slug 冲突时返回 myErrors.ErrSlugTaken。
	// - 缺省状态为已发布：写入 PublishedAt 并触发发布事件；传 status=0 保存草稿。
	CreatePost(ctx context.Context, caller Caller, req *dto.CreatePostRequest) (*vo.PostResponse, error)

	// UpdatePost 合并增量字段并保存文章。
	// - 仅文章作者或超级管理员可操作，否则返回 myErrors.ErrForbidden。
	// - 草稿→已发布的迁移首次写入 PublishedAt；已发布→草稿不清空，重新发布不改变排序。
	UpdatePost(ctx context.Context, caller Caller, postID uint64, req *dto.UpdatePostRequest) (*vo.PostResponse, error)

	// DeletePost 软删除文章并在同一事务内级联删除其评论。
	// - 成功后异步发送删除事件。
	DeletePost(ctx context.Context, caller Caller, postID uint64) error

	// ListPosts 按调用者身份和筛选条件分页查询文章。
	// - 可见性规则由 ResolvePostQuery 统一组装，服务层不再散落权限判断。
	ListPosts(ctx context.Context, caller Caller, req *dto.ListPostsRequest) (*vo.PostPageVO, error)

	// GetPostBySlug 公开详情页入口。
	// - 草稿只对其作者和超级管理员可见，其他调用者得到 ErrRepoNotFound（不暴露存在性）。
	// - 已发布文章的访问会异步计入浏览量，visitorID 用于防刷窗口。
	GetPostBySlug(ctx context.Context, caller Caller, slug string, visitorID string) (*vo.PostResponse, error)

	// GetPostByID 按 ID 取完整文章，既服务公开详情页也服务后台编辑回填。
	// - 可见性规则与 GetPostBySlug 一致，已发布文章的访问同样计入浏览量。
	GetPostByID(ctx context.Context, caller Caller, postID uint64, visitorID string) (*vo.PostResponse, error)

	// GetPopularPosts 从 Redis 热度榜取浏览量最高的已发布文章。
	GetPopularPosts(ctx context.Context, limit int64) ([]*vo.PostResponse, error)
}

// postService 是 PostService 接口的具体实现。
type postService struct {
	postRepo     mysql.PostRepository      // 负责文章的 MySQL 操作
	commentRepo  mysql.CommentRepository   // 级联删除评论时使用
	userRepo     mysql.UserRepository      // 详情页作者署名回源
	postViewRepo redis.PostViewRepository  // 负责文章浏览量相关的 Redis 操作
	db           *gorm.DB                  // GORM 数据库实例，主要用于事务管理
	kafkaSvc     *producer.KafkaProducer   // Kafka 生产者，用于发送异步消息
	logger       *core.ZapLogger           // 日志记录器
}

// NewPostService 是 postService 的构造函数，通过依赖注入初始化服务实例。
// - 这种方式便于单元测试和组件替换。
func NewPostService(db *gorm.DB, postRepo mysql.PostRepository, commentRepo mysql.CommentRepository, userRepo mysql.UserRepository, postViewRepo redis.PostViewRepository, kafkaSvc *producer.KafkaProducer, logger *core.ZapLogger) PostService {
	return &postService{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		postViewRepo: postViewRepo,
		db:           db,
		kafkaSvc:     kafkaSvc,
		logger:       logger,
	}
}

var slugStripPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 把标题转换为 URL 友好的 Slug。
// - 非字母数字字符折叠为单个连字符，首尾连字符去除；
//   全部字符被剥离（例如纯中文标题）时退化为一个短 UUID 片段。
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStripPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = uuid.NewString()[:8]
	}
	return slug
}

// resolveSlug 决定新文章 / 改名文章最终使用的 Slug。
// - 显式指定的 Slug 冲突时直接报错；自动生成的 Slug 冲突时追加短随机后缀重试。
func (s *postService) resolveSlug(ctx context.Context, requested string, title string, excludeID uint64) (string, error) {
	explicit := requested != ""
	slug := requested
	if !explicit {
		slug = Slugify(title)
	}

	taken, err := s.postRepo.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return "", fmt.Errorf("检查 Slug 占用失败: %w", err)
	}
	if !taken {
		return slug, nil
	}
	if explicit {
		return "", myErrors.ErrSlugTaken
	}
	return fmt.Sprintf("%s-%s", slug, uuid.NewString()[:8]), nil
}

// encodeStringList 把字符串切片编码为 json 列的值，nil 视为空数组。
func encodeStringList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

// CreatePost 处理作者创建新文章的请求。
// - 读者角色无发文权限，返回 myErrors.ErrForbidden。
// - 不指定状态时直接发布，保存草稿需显式传 status=0。
func (s *postService) CreatePost(ctx context.Context, caller Caller, req *dto.CreatePostRequest) (*vo.PostResponse, error) {
	if !caller.Role.CanWritePosts() {
		s.logger.Warn("拒绝无发文权限的创建请求",
			zap.String("callerID", caller.ID),
			zap.String("role", caller.Role.String()))
		return nil, myErrors.ErrForbidden
	}

	slug, err := s.resolveSlug(ctx, req.Slug, req.Title, 0)
	if err != nil {
		return nil, err
	}

	status := enums.PostPublished
	if req.Status != nil {
		status = *req.Status
	}

	post := &entities.Post{
		Title:           req.Title,
		Slug:            slug,
		Excerpt:         req.Excerpt,
		Body:            req.Body,
		AuthorID:        caller.ID,
		Categories:      encodeStringList(req.Categories),
		Tags:            encodeStringList(req.Tags),
		FeatureImageURL: req.FeatureImageURL,
		Status:          status,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		CanonicalURL:    req.CanonicalURL,
	}
	if status == enums.PostPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.postRepo.CreatePost(ctx, tx, post); repoErr != nil {
			return fmt.Errorf("创建文章失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("创建文章事务失败", zap.Error(err), zap.String("authorID", caller.ID))
		return nil, err
	}

	if post.Status == enums.PostPublished {
		s.notifyPublished(post)
	}

	s.logger.Info("文章创建成功",
		zap.Uint64("postID", post.ID),
		zap.String("slug", post.Slug),
		zap.String("status", post.Status.String()))
	return vo.MapPostToResponseVO(post, true), nil
}

// UpdatePost 实现文章的增量更新。
func (s *postService) UpdatePost(ctx context.Context, caller Caller, postID uint64, req *dto.UpdatePostRequest) (*vo.PostResponse, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !auth.CanMutate(caller.ID, caller.Role, post.AuthorID) {
		s.logger.Warn("拒绝无权限的文章更新请求",
			zap.Uint64("postID", postID),
			zap.String("callerID", caller.ID))
		return nil, myErrors.ErrForbidden
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil && *req.Slug != post.Slug {
		slug, slugErr := s.resolveSlug(ctx, *req.Slug, post.Title, post.ID)
		if slugErr != nil {
			return nil, slugErr
		}
		post.Slug = slug
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.Categories != nil {
		post.Categories = encodeStringList(*req.Categories)
	}
	if req.Tags != nil {
		post.Tags = encodeStringList(*req.Tags)
	}
	if req.FeatureImageURL != nil {
		post.FeatureImageURL = *req.FeatureImageURL
	}
	if req.MetaTitle != nil {
		post.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		post.MetaDescription = *req.MetaDescription
	}
	if req.CanonicalURL != nil {
		post.CanonicalURL = *req.CanonicalURL
	}

	becamePublished := false
	if req.Status != nil && *req.Status != post.Status {
		post.Status = *req.Status
		if post.Status == enums.PostPublished {
			// PublishedAt 只在首次发布时写入，反复上下线不重置
			if post.PublishedAt == nil {
				now := time.Now()
				post.PublishedAt = &now
			}
			becamePublished = true
		}
	}

	if err := s.postRepo.SavePost(ctx, s.db, post); err != nil {
		return nil, err
	}

	if becamePublished {
		s.notifyPublished(post)
	}

	s.logger.Info("文章更新成功", zap.Uint64("postID", post.ID))
	return vo.MapPostToResponseVO(post, true), nil
}

// DeletePost 实现文章及其评论的级联软删除。
func (s *postService) DeletePost(ctx context.Context, caller Caller, postID uint64) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}

	if !auth.CanMutate(caller.ID, caller.Role, post.AuthorID) {
		s.logger.Warn("拒绝无权限的文章删除请求",
			zap.Uint64("postID", postID),
			zap.String("callerID", caller.ID))
		return myErrors.ErrForbidden
	}

	// 使用 GORM Transaction 确保文章与其评论的删除是原子的。
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.commentRepo.DeleteByPostID(ctx, tx, postID); repoErr != nil {
			s.logger.Error("删除文章：级联删除评论失败", zap.Error(repoErr), zap.Uint64("postID", postID))
			return fmt.Errorf("级联删除评论失败: %w", repoErr)
		}
		if repoErr := s.postRepo.DeletePost(ctx, tx, postID); repoErr != nil {
			s.logger.Error("删除文章：软删除主记录失败", zap.Error(repoErr), zap.Uint64("postID", postID))
			return fmt.Errorf("软删除文章失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// 异步发送 Kafka 删除事件。
	go func(postIDToNotify uint64) {
		bgCtx := context.Background()
		if kafkaErr := s.kafkaSvc.SendPostDeleteEvent(bgCtx, postIDToNotify); kafkaErr != nil {
			s.logger.Error("发送 Kafka 删除事件失败", zap.Error(kafkaErr), zap.Uint64("post_id", postIDToNotify))
		}
	}(postID)

	s.logger.Info("文章及其评论（软）删除处理完成", zap.Uint64("post_id", postID))
	return nil
}

// ListPosts 实现条件分页查询。
func (s *postService) ListPosts(ctx context.Context, caller Caller, req *dto.ListPostsRequest) (*vo.PostPageVO, error) {
	pred, orders, window := ResolvePostQuery(caller, req)

	posts, total, err := s.postRepo.FindByQuery(ctx, pred, orders, window)
	if err != nil {
		return nil, err
	}

	return &vo.PostPageVO{
		Posts: vo.MapPostsToResponsesVO(posts),
		Pagination: vo.Pagination{
			Total: total,
			Page:  window.Page,
			Limit: window.Limit,
			Pages: window.Pages(total),
		},
	}, nil
}

// GetPostBySlug 实现公开详情页的读取与浏览量计数。
func (s *postService) GetPostBySlug(ctx context.Context, caller Caller, slug string, visitorID string) (*vo.PostResponse, error) {
	post, err := s.postRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// 草稿只对作者和超级管理员可见；对外表现为未找到，不暴露草稿的存在
	if post.Status != enums.PostPublished && !auth.CanMutate(caller.ID, caller.Role, post.AuthorID) {
		return nil, commonerrors.ErrRepoNotFound
	}

	if post.Status == enums.PostPublished && visitorID != "" {
		// 异步增加浏览量，不阻塞详情页响应；生命周期独立于原始请求
		go func(pID uint64, vID string) {
			if redisErr := s.postViewRepo.IncrementViewCount(context.Background(), pID, vID); redisErr != nil {
				s.logger.Error("异步增加浏览量失败",
					zap.Error(redisErr),
					zap.Uint64("post_id", pID))
			}
		}(post.ID, visitorID)
	}

	return s.withAuthor(ctx, post), nil
}

// GetPostByID 实现按 ID 读取。
func (s *postService) GetPostByID(ctx context.Context, caller Caller, postID uint64, visitorID string) (*vo.PostResponse, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.Status != enums.PostPublished && !auth.CanMutate(caller.ID, caller.Role, post.AuthorID) {
		return nil, commonerrors.ErrRepoNotFound
	}

	if post.Status == enums.PostPublished && visitorID != "" {
		go func(pID uint64, vID string) {
			if redisErr := s.postViewRepo.IncrementViewCount(context.Background(), pID, vID); redisErr != nil {
				s.logger.Error("异步增加浏览量失败",
					zap.Error(redisErr),
					zap.Uint64("post_id", pID))
			}
		}(post.ID, visitorID)
	}

	return s.withAuthor(ctx, post), nil
}

// withAuthor 把详情响应补上作者署名。
// - 作者账户已注销或查询失败时署名缺省，不影响详情本身的返回。
func (s *postService) withAuthor(ctx context.Context, post *entities.Post) *vo.PostResponse {
	resp := vo.MapPostToResponseVO(post, true)
	user, err := s.userRepo.GetUserByID(ctx, post.AuthorID)
	if err != nil {
		s.logger.Warn("详情页回源作者信息失败",
			zap.Error(err),
			zap.String("authorID", post.AuthorID))
		return resp
	}
	resp.Author = &vo.AuthorSummaryVO{
		Name:       user.Name,
		ProfileImg: user.ProfileImg,
	}
	return resp
}

// GetPopularPosts 实现热门文章读取：Redis 榜单给出 ID 顺序，MySQL 回源实体。
func (s *postService) GetPopularPosts(ctx context.Context, limit int64) ([]*vo.PostResponse, error) {
	if limit <= 0 {
		limit = constant.PopularPostsLimit
	}

	ids, err := s.postViewRepo.GetTopPostIDs(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*vo.PostResponse{}, nil
	}

	posts, err := s.postRepo.GetPostsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// 榜单里可能残留已删除或被退回草稿的文章，出口处再过滤一次
	published := make([]*entities.Post, 0, len(posts))
	for _, post := range posts {
		if post.Status == enums.PostPublished {
			published = append(published, post)
		}
	}
	return vo.MapPostsToResponsesVO(published), nil
}

// notifyPublished 异步发送发布事件，失败只记日志不影响主流程。
func (s *postService) notifyPublished(post *entities.Post) {
	publishedAt := time.Now()
	if post.PublishedAt != nil {
		publishedAt = *post.PublishedAt
	}
	postData := events.PostData{
		PostID:      post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Excerpt:     post.Excerpt,
		AuthorID:    post.AuthorID,
		PublishedAt: publishedAt,
	}

	go func(pd events.PostData) {
		bgCtx := context.Background()
		if kafkaErr := s.kafkaSvc.SendPostPublishedEvent(bgCtx, pd); kafkaErr != nil {
			s.logger.Error("发送 Kafka 文章发布事件失败", zap.Error(kafkaErr), zap.Uint64("post_id", pd.PostID))
		} else {
			s.logger.Info("成功发送 Kafka 文章发布事件", zap.Uint64("post_id", pd.PostID))
		}
	}(postData)
}
