package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/service"
)

// seedCategories 填充数据使用的固定分类池，贴近真实站点的栏目划分
var seedCategories = []string{"Engineering", "Tutorials", "Opinion", "News", "Productivity"}

// Seed 通过服务层填充测试数据：先注册作者，再以作者身份发文，
// 最后给已发布文章补充评论和一批订阅邮箱。
// 走服务层而不是直接写库，让 Slug 生成、发布事件这些副作用和线上行为一致。
func Seed(
	ctx context.Context,
	accountSvc service.AccountService,
	postSvc service.PostService,
	commentSvc service.CommentService,
	subscriptionSvc service.SubscriptionService,
	logger *core.ZapLogger,
	numAuthors, numPosts int,
) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("作者", numAuthors), zap.Int("文章", numPosts))

	// --- 1. 注册作者 ---
	authors := make([]service.Caller, 0, numAuthors)
	for i := 0; i < numAuthors; i++ {
		authResp, err := accountSvc.Register(ctx, &dto.RegisterRequest{
			Email:    gofakeit.Email(),
			Password: gofakeit.Password(true, true, true, false, false, 12),
			Name:     gofakeit.Name(),
		})
		if err != nil {
			logger.Error(fmt.Sprintf("注册作者 %d/%d 失败", i+1, numAuthors), zap.Error(err))
			continue
		}
		authors = append(authors, service.Caller{ID: authResp.User.ID, Role: enums.RoleAuthor})
	}
	if len(authors) == 0 {
		logger.Error("没有任何作者注册成功，中止填充")
		return
	}
	logger.Info("作者注册完毕", zap.Int("成功数量", len(authors)))

	// --- 2. 并发创建文章 (约 1/4 保留为草稿) ---
	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	var mu sync.Mutex
	var publishedIDs []uint64

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			author := authors[itemIndex%len(authors)]
			status := enums.PostPublished
			if itemIndex%4 == 0 {
				status = enums.PostDraft
			}

			createReq := &dto.CreatePostRequest{
				Title:      gofakeit.Sentence(gofakeit.Number(5, 12)),
				Excerpt:    gofakeit.Sentence(gofakeit.Number(10, 20)),
				Body:       "<p>" + gofakeit.Paragraph(3, 5, 20, "</p><p>") + "</p>",
				Categories: []string{seedCategories[gofakeit.Number(0, len(seedCategories)-1)]},
				Tags:       []string{gofakeit.HackerNoun(), gofakeit.HackerAdjective()},
				Status:     &status,
			}

			resp, err := postSvc.CreatePost(ctx, author, createReq)
			if err != nil {
				logger.Error(fmt.Sprintf("创建文章 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title))
				return
			}
			logger.Info(fmt.Sprintf("成功创建文章 %d/%d", itemIndex+1, numPosts),
				zap.Uint64("post_id", resp.ID),
				zap.String("slug", resp.Slug))

			if status == enums.PostPublished {
				mu.Lock()
				publishedIDs = append(publishedIDs, resp.ID)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	// --- 3. 给已发布文章补充访客评论 ---
	commentCount := 0
	for _, postID := range publishedIDs {
		for j := 0; j < gofakeit.Number(0, 3); j++ {
			_, err := commentSvc.CreateComment(ctx, postID, &dto.CreateCommentRequest{
				AuthorName:  gofakeit.Name(),
				AuthorEmail: gofakeit.Email(),
				Content:     gofakeit.Sentence(gofakeit.Number(8, 25)),
			})
			if err != nil {
				logger.Error("创建评论失败", zap.Uint64("post_id", postID), zap.Error(err))
				continue
			}
			commentCount++
		}
	}
	logger.Info("评论填充完毕", zap.Int("数量", commentCount))

	// --- 4. 填充订阅邮箱 ---
	subscriberCount := 0
	for i := 0; i < numAuthors*4; i++ {
		if _, err := subscriptionSvc.Subscribe(ctx, gofakeit.Email()); err != nil {
			logger.Warn("创建订阅失败", zap.Error(err))
			continue
		}
		subscriberCount++
	}
	logger.Info("订阅填充完毕", zap.Int("数量", subscriberCount))

	logger.Info("测试数据填充完毕 (通过服务层)。")
}
