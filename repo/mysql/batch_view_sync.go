package mysql

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/models/entities"
)

// PostBatchOperationsRepository 定义了面向后台任务的批量数据库操作接口。
type PostBatchOperationsRepository interface {
	// BatchUpdatePostViewCounts 异步、并发地将 Redis 中的浏览量批量同步到 MySQL。
	// 设计目标是高吞吐量和容错性，允许在单个任务中处理大量更新，并记录但不中断因部分批次失败。
	BatchUpdatePostViewCounts(ctx context.Context, viewCounts map[uint64]int64) error
}

type postBatchOperationsRepository struct {
	db          *gorm.DB
	logger      *core.ZapLogger
	viewSyncCfg config.ViewSyncConfig
}

// NewPostBatchOperationsRepository 是 postBatchOperationsRepository 的构造函数。
func NewPostBatchOperationsRepository(db *gorm.DB, logger *core.ZapLogger, viewSyncCfg config.ViewSyncConfig) PostBatchOperationsRepository {
	return &postBatchOperationsRepository{db: db, logger: logger, viewSyncCfg: viewSyncCfg}
}

// updateItem 是一个内部结构体，用于在并发处理通道中传递 ID 和对应的浏览量。
type updateItem struct {
	ID        uint64
	ViewCount int64
}

// BatchUpdatePostViewCounts 实现了浏览量批量同步的核心逻辑。
//
// 使用场景:
// 由后台定时任务调用，将 Redis 中缓存的文章浏览量 (viewCounts map)
// 定期、批量且并发地同步更新到 MySQL 的 posts 表中。
//
// 核心机制:
// 1. 数据分批: 根据配置 `viewSyncCfg.BatchSize` 将大量更新分割成小批次。
// 2. 并发处理: 根据配置 `viewSyncCfg.ConcurrencyLevel` 启动 worker goroutine 池处理这些批次。
// 3. 数据库更新: 每个 worker 对其批次内的数据，通过 `processBatch` 方法构建单条 CASE WHEN 更新语句。
//
// 允许部分批次失败（记录错误并聚合返回），以实现最终一致性。
func (r *postBatchOperationsRepository) BatchUpdatePostViewCounts(ctx context.Context, viewCounts map[uint64]int64) error {
	totalUpdates := len(viewCounts)
	if totalUpdates == 0 {
		r.logger.Info("BatchUpdatePostViewCounts: 没有需要更新的文章浏览量，任务提前结束。")
		return nil
	}

	// --- 1. 加载并验证配置 ---
	batchSize := r.viewSyncCfg.BatchSize
	if batchSize <= 0 {
		batchSize = 500 // Fallback
		r.logger.Warn("BatchUpdatePostViewCounts: 配置 BatchSize 无效，使用默认值", zap.Int("defaultBatchSize", batchSize), zap.Int("configured", r.viewSyncCfg.BatchSize))
	}

	concurrencyLevel := r.viewSyncCfg.ConcurrencyLevel
	if concurrencyLevel <= 0 {
		concurrencyLevel = 1 // Fallback (顺序执行)
		r.logger.Warn("BatchUpdatePostViewCounts: 配置 ConcurrencyLevel 无效，使用默认值 1", zap.Int("defaultConcurrency", concurrencyLevel), zap.Int("configured", r.viewSyncCfg.ConcurrencyLevel))
	}

	// --- 2. 数据准备与日志记录 ---
	itemsToUpdate := make([]updateItem, 0, totalUpdates)
	for id, count := range viewCounts {
		itemsToUpdate = append(itemsToUpdate, updateItem{ID: id, ViewCount: count})
	}

	totalBatches := (totalUpdates + batchSize - 1) / batchSize
	r.logger.Info("BatchUpdatePostViewCounts: 开始并发批量更新",
		zap.Int("总数", totalUpdates),
		zap.Int("批大小", batchSize),
		zap.Int("并发数", concurrencyLevel),
		zap.Int("批次数", totalBatches),
	)

	// --- 3. 设置并发工作池 ---
	var wg sync.WaitGroup
	jobs := make(chan []updateItem, concurrencyLevel)
	results := make(chan error, totalBatches)
	overallStartTime := time.Now()

	// --- 4. 启动 Worker Goroutines ---
	for i := 0; i < concurrencyLevel; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			r.logger.Debug("Worker 启动", zap.Int("workerID", workerID))
			for batch := range jobs {
				select {
				case <-ctx.Done():
					r.logger.Warn("上下文取消，Worker 停止处理", zap.Int("workerID", workerID), zap.Error(ctx.Err()))
					results <- fmt.Errorf("worker %d: context cancelled: %w", workerID, ctx.Err())
					continue
				default:
				}

				err := r.processBatch(ctx, batch, workerID)
				results <- err
			}
			r.logger.Debug("Worker 正常退出", zap.Int("workerID", workerID))
		}(i)
	}

	// --- 5. 启动分发任务 Goroutine ---
	go func() {
		defer func() {
			close(jobs)
			r.logger.Info("所有批次任务已发送完毕，jobs channel 已关闭。")
		}()

		for i := 0; i < totalUpdates; i += batchSize {
			end := i + batchSize
			if end > totalUpdates {
				end = totalUpdates
			}
			batchCopy := make([]updateItem, len(itemsToUpdate[i:end]))
			copy(batchCopy, itemsToUpdate[i:end])

			select {
			case <-ctx.Done():
				r.logger.Warn("上下文取消，停止分发更多批次任务。", zap.Error(ctx.Err()))
				return
			case jobs <- batchCopy:
			}
		}
	}()

	// --- 6. 启动收集结果 Goroutine ---
	var aggregatedErrors []error
	go func() {
		wg.Wait()
		close(results)
	}()

	// --- 7. 收集并聚合结果 ---
	for err := range results {
		if err != nil {
			aggregatedErrors = append(aggregatedErrors, err)
		}
	}

	// --- 8. 最终日志记录与返回 ---
	totalDuration := time.Since(overallStartTime)
	failedCount := len(aggregatedErrors)
	r.logger.Info("完成所有批次的文章浏览量并发更新处理。",
		zap.Duration("总耗时", totalDuration),
		zap.Int("总批次数", totalBatches),
		zap.Int("失败批次数", failedCount),
	)

	if failedCount > 0 {
		var errorStrings []string
		for _, e := range aggregatedErrors {
			errorStrings = append(errorStrings, e.Error())
		}
		finalError := fmt.Errorf("并发批量更新过程中发生错误 (%d / %d 个批次失败): %s", failedCount, totalBatches, strings.Join(errorStrings, "; "))
		r.logger.Error("并发批量更新最终结果：失败", zap.Error(finalError))
		return finalError
	}

	r.logger.Info("并发批量更新最终结果：成功。")
	return nil
}

// processBatch 负责处理单个批次的数据库更新。
func (r *postBatchOperationsRepository) processBatch(ctx context.Context, batch []updateItem, workerID int) error {
	currentBatchSize := len(batch)

	var (
		ids          []uint64
		sqlCase      strings.Builder
		updateParams []interface{}
	)
	sqlCase.WriteString("CASE id ")
	for _, item := range batch {
		ids = append(ids, item.ID)
		sqlCase.WriteString("WHEN ? THEN ? ")
		updateParams = append(updateParams, item.ID, item.ViewCount)
	}
	sqlCase.WriteString("END")

	dbOperationStart := time.Now()
	err := r.db.WithContext(ctx).Model(&entities.Post{}).
		Where("id IN ?", ids).
		Update("view_count", gorm.Expr(sqlCase.String(), updateParams...)).Error
	dbDuration := time.Since(dbOperationStart)

	if err != nil {
		r.logger.Error("processBatch: 数据库更新批次失败",
			zap.Int("workerID", workerID),
			zap.Int("batchSize", currentBatchSize),
			zap.Duration("db耗时", dbDuration),
			zap.Error(err),
		)
		return fmt.Errorf("worker %d 处理批次 (大小 %d) 失败: %w", workerID, currentBatchSize, err)
	}

	r.logger.Debug("processBatch: 数据库更新批次成功",
		zap.Int("workerID", workerID),
		zap.Int("batchSize", currentBatchSize),
		zap.Duration("db耗时", dbDuration),
	)
	return nil
}
