package constant

const (
	// ServiceName 服务标识，用于日志与链路追踪的 service.name
	ServiceName = "blog_service"

	// ServiceVersion 上报给链路追踪的服务版本号
	ServiceVersion = "1.0.0"

	// ViewSyncCronSpec 浏览量回写任务的 cron 表达式（每 5 分钟一次）
	ViewSyncCronSpec = "*/5 * * * *"

	// FeatureImageKeyPrefix 题图等上传文件在对象存储中的 Key 前缀
	FeatureImageKeyPrefix = "blog/uploads/"

	// PopularPostsLimit 热门文章接口默认返回的条数
	PopularPostsLimit = 5
)
