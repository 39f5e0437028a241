package config

// GeminiConfig AI 辅助写作所用的 Gemini 接口配置
type GeminiConfig struct {
	APIKey string `mapstructure:"apiKey" json:"apiKey" yaml:"apiKey"`
	// Model 模型名，例如 "gemini-2.5-flash"
	Model string `mapstructure:"model" json:"model" yaml:"model"`
}
