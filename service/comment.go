package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/auth"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/events"
	"github.com/Xushengqwer/blog_service/models/query"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/mq/producer"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// CommentService 定义了评论生命周期的业务逻辑接口。
type CommentService interface {
	// CreateComment 访客对已发布文章留言。
	// - 无论调用者是谁，新评论一律以待审核状态落库；
	// - 对草稿文章留言视为文章不存在。
	CreateComment(ctx context.Context, postID uint64, req *dto.CreateCommentRequest) (*vo.CommentResponse, error)

	// ListApprovedByPost 公开接口，按文章取已通过的评论（不暴露邮箱）。
	ListApprovedByPost(ctx context.Context, postID uint64) ([]*vo.CommentResponse, error)

	// ListForModeration 后台审核队列。
	// - 超级管理员看到全部评论；其他调用者只能看到自己文章名下的评论，
	//   范围圈定编译进查询谓词，而不是取回后再过滤。
	// - 状态过滤可选，不传时返回全部状态。
	ListForModeration(ctx context.Context, caller Caller, req *dto.ListCommentsRequest) (*vo.CommentPageVO, error)

	// ModerateComment 审核单条评论（通过 / 拒绝）。
	// - 仅评论所属文章的作者或超级管理员可操作。
	ModerateComment(ctx context.Context, caller Caller, commentID uint64, status enums.CommentStatus) (*vo.CommentResponse, error)

	// DeleteComment 删除单条评论，权限规则与审核一致。
	DeleteComment(ctx context.Context, caller Caller, commentID uint64) error
}

type commentService struct {
	commentRepo mysql.CommentRepository
	postRepo    mysql.PostRepository
	db          *gorm.DB
	kafkaSvc    *producer.KafkaProducer
	logger      *core.ZapLogger
}

// NewCommentService 是 commentService 的构造函数。
func NewCommentService(db *gorm.DB, commentRepo mysql.CommentRepository, postRepo mysql.PostRepository, kafkaSvc *producer.KafkaProducer, logger *core.ZapLogger) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		db:          db,
		kafkaSvc:    kafkaSvc,
		logger:      logger,
	}
}

// CreateComment 实现访客留言。
func (s *commentService) CreateComment(ctx context.Context, postID uint64, req *dto.CreateCommentRequest) (*vo.CommentResponse, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Status != enums.PostPublished {
		// 草稿不接受评论，也不暴露其存在
		return nil, commonerrors.ErrRepoNotFound
	}

	comment := &entities.Comment{
		PostID:      postID,
		AuthorName:  req.AuthorName,
		AuthorEmail: NormalizeEmail(req.AuthorEmail),
		Content:     req.Content,
		Status:      enums.CommentPending, // 一律待审核，入口处没有任何绕过路径
	}

	if err := s.commentRepo.CreateComment(ctx, s.db, comment); err != nil {
		return nil, fmt.Errorf("创建评论失败: %w", err)
	}

	// 异步通知作者有新评论待审核
	go func(c entities.Comment) {
		bgCtx := context.Background()
		event := events.CommentPendingEvent{
			CommentID:  c.ID,
			PostID:     c.PostID,
			AuthorName: c.AuthorName,
			Content:    c.Content,
		}
		if kafkaErr := s.kafkaSvc.SendCommentPendingEvent(bgCtx, event); kafkaErr != nil {
			s.logger.Error("发送 Kafka 评论待审核事件失败", zap.Error(kafkaErr), zap.Uint64("comment_id", c.ID))
		}
	}(*comment)

	s.logger.Info("评论创建成功，进入审核队列",
		zap.Uint64("commentID", comment.ID),
		zap.Uint64("postID", postID))

	responses := vo.MapCommentsToResponsesVO([]*entities.Comment{comment}, false)
	return responses[0], nil
}

// ListApprovedByPost 实现公开评论列表。
func (s *commentService) ListApprovedByPost(ctx context.Context, postID uint64) ([]*vo.CommentResponse, error) {
	comments, err := s.commentRepo.ListApprovedByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return vo.MapCommentsToResponsesVO(comments, false), nil
}

// ListForModeration 实现审核队列的范围圈定与分页。
func (s *commentService) ListForModeration(ctx context.Context, caller Caller, req *dto.ListCommentsRequest) (*vo.CommentPageVO, error) {
	var conditions query.And

	// 非超级管理员只能看自己文章下的评论。作者名下没有文章时
	// In 谓词编译为恒假，返回空页而不是放开范围
	if caller.Role != enums.RoleSuperadmin {
		postIDs, err := s.postRepo.DistinctIDsByAuthor(ctx, caller.ID)
		if err != nil {
			return nil, err
		}
		values := make([]interface{}, len(postIDs))
		for i, id := range postIDs {
			values[i] = id
		}
		conditions = append(conditions, query.In{Column: "post_id", Values: values})
	}

	// 状态过滤可选，缺省返回全部状态的评论
	if req.Status != nil {
		conditions = append(conditions, query.Eq{Column: "status", Value: *req.Status})
	}

	if req.PostID != nil {
		conditions = append(conditions, query.Eq{Column: "post_id", Value: *req.PostID})
	}

	window := query.Window{Page: req.Page, Limit: req.Limit}.Normalize()

	comments, total, err := s.commentRepo.FindByQuery(ctx, conditions, window)
	if err != nil {
		return nil, err
	}

	return &vo.CommentPageVO{
		Comments: vo.MapCommentsToResponsesVO(comments, true),
		Pagination: vo.Pagination{
			Total: total,
			Page:  window.Page,
			Limit: window.Limit,
			Pages: window.Pages(total),
		},
	}, nil
}

// canModerate 判断调用者是否有权处置该评论（按所属文章的作者归属）。
func (s *commentService) canModerate(ctx context.Context, caller Caller, comment *entities.Comment) (bool, error) {
	if caller.Role == enums.RoleSuperadmin {
		return true, nil
	}
	post, err := s.postRepo.GetPostByID(ctx, comment.PostID)
	if err != nil {
		return false, err
	}
	return auth.CanMutate(caller.ID, caller.Role, post.AuthorID), nil
}

// ModerateComment 实现评论审核。
func (s *commentService) ModerateComment(ctx context.Context, caller Caller, commentID uint64, status enums.CommentStatus) (*vo.CommentResponse, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canModerate(ctx, caller, comment)
	if err != nil {
		return nil, err
	}
	if !allowed {
		s.logger.Warn("拒绝无权限的评论审核请求",
			zap.Uint64("commentID", commentID),
			zap.String("callerID", caller.ID))
		return nil, myErrors.ErrForbidden
	}

	if err := s.commentRepo.UpdateStatus(ctx, commentID, status); err != nil {
		return nil, err
	}
	comment.Status = status

	s.logger.Info("评论审核完成",
		zap.Uint64("commentID", commentID),
		zap.String("status", status.String()))

	responses := vo.MapCommentsToResponsesVO([]*entities.Comment{comment}, true)
	return responses[0], nil
}

// DeleteComment 实现评论删除。
func (s *commentService) DeleteComment(ctx context.Context, caller Caller, commentID uint64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}

	allowed, err := s.canModerate(ctx, caller, comment)
	if err != nil {
		return err
	}
	if !allowed {
		s.logger.Warn("拒绝无权限的评论删除请求",
			zap.Uint64("commentID", commentID),
			zap.String("callerID", caller.ID))
		return myErrors.ErrForbidden
	}

	if err := s.commentRepo.DeleteComment(ctx, s.db, commentID); err != nil {
		return err
	}

	s.logger.Info("评论删除成功", zap.Uint64("commentID", commentID))
	return nil
}
