package config

// COSConfig 腾讯云对象存储配置，用于题图等媒体文件上传
type COSConfig struct {
	SecretID   string `mapstructure:"secretId" json:"secretId" yaml:"secretId"`
	SecretKey  string `mapstructure:"secretKey" json:"secretKey" yaml:"secretKey"`
	BucketName string `mapstructure:"bucketName" json:"bucketName" yaml:"bucketName"`
	AppID      string `mapstructure:"appId" json:"appId" yaml:"appId"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`
	// BaseURL 对象公开访问的基础地址（CDN 或自定义域名），为空时使用标准存储桶 URL
	BaseURL string `mapstructure:"baseUrl" json:"baseUrl" yaml:"baseUrl"`
}
