package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	PostPublished  string `mapstructure:"postPublished" yaml:"postPublished"`   //  文章发布主题，触发订阅邮件推送
	PostDeleted    string `mapstructure:"postDeleted" yaml:"postDeleted"`       //  文章删除主题
	CommentPending string `mapstructure:"commentPending" yaml:"commentPending"` //  新评论待审核主题，用于通知作者
}
