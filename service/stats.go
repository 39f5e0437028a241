package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/query"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// recentItemsLimit 仪表盘"最近动态"栏目的条数
const recentItemsLimit = 5

// StatsService 定义了后台仪表盘统计的业务逻辑接口。
type StatsService interface {
	// GetDashboardStats 聚合文章、评论、订阅三类计数和最近动态。
	// - 超级管理员看到全站数据；其他调用者只统计自己的文章和
	//   自己文章名下的评论，范围圈定编译进查询谓词；
	// - 浏览量取文章表的快照列，和 Redis 实时计数之间允许一个同步周期的滞后。
	GetDashboardStats(ctx context.Context, caller Caller) (*vo.DashboardStatsVO, error)
}

type statsService struct {
	postRepo    mysql.PostRepository
	commentRepo mysql.CommentRepository
	subRepo     mysql.SubscriptionRepository
	logger      *core.ZapLogger
}

// NewStatsService 是 statsService 的构造函数。
func NewStatsService(postRepo mysql.PostRepository, commentRepo mysql.CommentRepository, subRepo mysql.SubscriptionRepository, logger *core.ZapLogger) StatsService {
	return &statsService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		subRepo:     subRepo,
		logger:      logger,
	}
}

// GetDashboardStats 实现仪表盘聚合。
func (s *statsService) GetDashboardStats(ctx context.Context, caller Caller) (*vo.DashboardStatsVO, error) {
	stats := &vo.DashboardStatsVO{}

	// 非超级管理员的文章侧统计全部挂上作者归属条件
	var postScope query.Predicate
	if caller.Role != enums.RoleSuperadmin {
		postScope = query.Eq{Column: "author_id", Value: caller.ID}
	}

	total, err := s.postRepo.CountByQuery(ctx, postScope)
	if err != nil {
		return nil, err
	}
	stats.TotalPosts = total

	publishedPred := scopedAnd(postScope, query.Eq{Column: "status", Value: enums.PostPublished})
	if stats.PublishedPosts, err = s.postRepo.CountByQuery(ctx, publishedPred); err != nil {
		return nil, err
	}
	stats.DraftPosts = stats.TotalPosts - stats.PublishedPosts

	if stats.TotalViews, err = s.postRepo.SumViewCounts(ctx, postScope); err != nil {
		return nil, err
	}

	// 评论侧按"自己文章的 ID 集合"圈定。作者名下没有文章时
	// In 谓词编译为恒假，各项计数自然归零
	var commentScope query.Predicate
	if caller.Role != enums.RoleSuperadmin {
		postIDs, err := s.postRepo.DistinctIDsByAuthor(ctx, caller.ID)
		if err != nil {
			return nil, err
		}
		values := make([]interface{}, len(postIDs))
		for i, id := range postIDs {
			values[i] = id
		}
		commentScope = query.In{Column: "post_id", Values: values}
	}

	pendingPred := scopedAnd(commentScope, query.Eq{Column: "status", Value: enums.CommentPending})
	if stats.PendingComments, err = s.commentRepo.CountByQuery(ctx, pendingPred); err != nil {
		return nil, err
	}
	approvedPred := scopedAnd(commentScope, query.Eq{Column: "status", Value: enums.CommentApproved})
	if stats.ApprovedComments, err = s.commentRepo.CountByQuery(ctx, approvedPred); err != nil {
		return nil, err
	}

	if stats.ActiveSubscribers, err = s.subRepo.CountActive(ctx); err != nil {
		return nil, err
	}

	// 最近动态：各取最新 5 条，复用条件查询的分页窗口
	recentWindow := query.Window{Page: 1, Limit: recentItemsLimit}
	recentPosts, _, err := s.postRepo.FindByQuery(ctx, postScope,
		[]query.Order{{Column: "created_at", Desc: true}}, recentWindow)
	if err != nil {
		return nil, err
	}
	stats.RecentPosts = vo.MapPostsToResponsesVO(recentPosts)

	recentComments, _, err := s.commentRepo.FindByQuery(ctx, commentScope, recentWindow)
	if err != nil {
		return nil, err
	}
	stats.RecentComments = vo.MapCommentsToResponsesVO(recentComments, true)

	s.logger.Debug("仪表盘统计聚合完成",
		zap.String("callerID", caller.ID),
		zap.Int64("totalPosts", stats.TotalPosts),
		zap.Int64("pendingComments", stats.PendingComments))
	return stats, nil
}

// scopedAnd 把可选的范围谓词和附加条件合取为一棵树，scope 为 nil 时只剩附加条件。
func scopedAnd(scope query.Predicate, extra ...query.Predicate) query.Predicate {
	var conditions query.And
	if scope != nil {
		conditions = append(conditions, scope)
	}
	conditions = append(conditions, extra...)
	return conditions
}
