package constant

// Redis Key 相关常量 (导出)
const (
	// --- Key 前缀 (用于动态生成 Key) ---

	// PostViewBloomPrefix 是文章浏览记录 Bloom Filter 的 Key 前缀。
	// 每篇文章会有一个对应的 Bloom Filter Key。
	// 用于快速判断某个访客是否在一定时间内浏览过某文章，以实现防刷。
	// 示例 Key: "post_view_bloom:123" (其中 123 是 postID)
	// Redis 类型: String (由 RedisBloom 模块管理)
	PostViewBloomPrefix = "post_view_bloom:"

	// PostViewCountPrefix 是文章浏览量计数器的 Key 前缀。
	// 每篇文章会有一个对应的 String 类型的 Key，用于原子性计数。
	// 示例 Key: "post_view_count:123" (其中 123 是 postID)
	// Redis 类型: String
	PostViewCountPrefix = "post_view_count:"

	// --- 固定 Key 名称 (全局使用的 Key) ---

	// PostsRankKey 是全局文章热度榜的 Key 名称。
	// 这是一个 Sorted Set (ZSet)，成员是文章 ID (postID)，分数是浏览量 (viewCount)。
	// 热门文章接口直接从该 ZSet 截取 Top N。
	// Redis 类型: Sorted Set
	PostsRankKey = "post_rank"
)
