package config

// JWTConfig 访问令牌配置
type JWTConfig struct {
	// Secret HS256 签名密钥，生产环境必须通过环境变量注入
	Secret string `mapstructure:"secret" json:"secret" yaml:"secret"`
	// ExpireHours 令牌有效期（小时），0 表示使用默认的 168 小时（7 天）
	ExpireHours int `mapstructure:"expireHours" json:"expireHours" yaml:"expireHours"`
}
