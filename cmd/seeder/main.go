package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/auth"
	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/mq/producer"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/blog_service/repo/redis"
	blogService "github.com/Xushengqwer/blog_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numAuthors, numPosts int
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numAuthors, "authors", 5, "要生成的作者数量 (默认: 5)")
	flag.IntVar(&numPosts, "n", 50, "要生成的文章数量 (默认: 50)")
	var waitSeconds int
	flag.IntVar(&waitSeconds, "wait", 5, "数据填充后等待的秒数 (确保异步任务完成, 默认: 5秒)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' 生成 %d 位作者和 %d 篇测试文章...\n", absConfigFile, numAuthors, numPosts)

	if numAuthors <= 0 || numPosts <= 0 {
		fmt.Println("错误: 生成的作者和文章数量都必须大于 0")
		os.Exit(1)
	}
	if waitSeconds < 0 {
		fmt.Println("错误: 等待秒数不能为负")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.BlogConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")
	if cfg.MySQLConfig.Write.DSN == "" {
		fmt.Println("警告: MySQL Write DSN 为空，请检查配置文件中 `mysql.write.dsn` 是否有值。")
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL 数据库连接 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化 Kafka 生产者 ---
	kafkaProducer := producer.NewKafkaProducer(cfg.KafkaConfig, logger)
	logger.Info("Kafka 生产者已初始化 (Seeder)")

	// --- 5. 初始化 Redis (可选依赖，失败时仅告警) ---
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Warn("初始化 Redis 失败 (Seeder)，浏览量相关功能将受限", zap.Error(redisErr))
	}
	var postViewRepo redisRepo.PostViewRepository
	if rdb != nil {
		postViewRepo = redisRepo.NewPostViewRepository(rdb, logger, 10000, 3, 0.01, cfg.ViewSyncConfig)
	}

	// --- 6. 初始化 Repositories 和 Services ---
	postRepo := mysql.NewPostRepository(db, logger)
	commentRepo := mysql.NewCommentRepository(db, logger)
	userRepo := mysql.NewUserRepository(db, logger)
	subscriptionRepo := mysql.NewSubscriptionRepository(db, logger)

	tokens := auth.NewTokenManager(cfg.JWTConfig.Secret, time.Duration(cfg.JWTConfig.ExpireHours)*time.Hour)

	accountSvc := blogService.NewAccountService(userRepo, tokens, logger)
	postSvc := blogService.NewPostService(db, postRepo, commentRepo, userRepo, postViewRepo, kafkaProducer, logger)
	commentSvc := blogService.NewCommentService(db, commentRepo, postRepo, kafkaProducer, logger)
	subscriptionSvc := blogService.NewSubscriptionService(subscriptionRepo, logger)
	logger.Info("Services 已初始化 (Seeder)")

	// --- 7. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()
	logger.Info("开始执行数据填充...", zap.Int("作者数量", numAuthors), zap.Int("文章数量", numPosts))

	Seed(ctx, accountSvc, postSvc, commentSvc, subscriptionSvc, logger, numAuthors, numPosts)

	duration := time.Since(startTime)
	logger.Info("数据填充主要逻辑完成！", zap.Duration("耗时", duration))

	// --- 8. 等待一段时间以确保异步 Kafka 任务有时间发送 ---
	if waitSeconds > 0 {
		logger.Info(fmt.Sprintf("Seeder: 数据填充请求已发送，等待 %d 秒以允许异步 Kafka 消息发送...", waitSeconds))
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	fmt.Printf("数据填充完成！总耗时（包括等待）: %v\n", time.Since(startTime))
}
