package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/models/vo"
)

// 提示词模板统一约束模型输出为可直接入库的片段，不带 Markdown 和整页骨架。
const (
	titlesPromptTemplate = `You are a writing assistant for a technical blog.
Suggest 3 engaging blog post titles about the topic below.
Return exactly 3 titles, one per line, with no numbering, quotes or extra text.

Topic: %s
Keywords: %s`

	contentPromptTemplate = `You are a writing assistant for a technical blog.
Write the body of a blog post with the title below, in a %s tone.
Return clean HTML fragment only: use <h2>, <p>, <ul>, <pre><code> tags as needed.
Do not include <!DOCTYPE>, <html>, <head> or <body> tags, markdown, or code fences.

Title: %s
Keywords: %s`

	improvePromptTemplate = `You are an editor for a technical blog.
Improve the clarity, grammar and flow of the blog post body below without
changing its meaning or structure. Keep the same HTML tags.
Return the improved HTML fragment only, no markdown, no code fences.

%s`

	categoryPromptTemplate = `You are a classifier for a technical blog.
Pick the single best-fitting category for the blog post body below.
Choose only from this list: %s
Return the category name only, nothing else.

%s`
)

// defaultTone 未指定语气时使用的默认写作语气
const defaultTone = "professional"

// AIService 定义了 AI 辅助写作的业务逻辑接口。
// - 所有输出都经过清洗，保证不携带整页骨架和 Markdown 围栏。
type AIService interface {
	// GenerateTitles 根据主题和关键词给出 3 个候选标题。
	GenerateTitles(ctx context.Context, topic string, keywords []string) (*vo.AITitlesVO, error)

	// GenerateContent 根据标题、关键词和语气生成正文 HTML。
	GenerateContent(ctx context.Context, title string, keywords []string, tone string) (*vo.AIDraftVO, error)

	// ImproveContent 润色既有正文，保持原有含义和标签结构。
	ImproveContent(ctx context.Context, content string) (*vo.AIDraftVO, error)

	// SuggestCategory 从给定分类列表中挑选最匹配正文的一个。
	SuggestCategory(ctx context.Context, content string, available []string) (*vo.AICategoryVO, error)
}

type aiService struct {
	client *genai.Client
	model  string
	logger *core.ZapLogger
}

// NewAIService 创建 Gemini 客户端并返回 AIService 实现。
func NewAIService(ctx context.Context, cfg config.GeminiConfig, logger *core.ZapLogger) (AIService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API Key 未配置")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 Gemini 客户端失败: %w", err)
	}

	return &aiService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// generate 调用模型并返回去除首尾空白的原始文本。
func (s *aiService) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		s.logger.Error("调用 Gemini 生成内容失败", zap.String("model", s.model), zap.Error(err))
		return "", fmt.Errorf("调用模型失败: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		s.logger.Warn("Gemini 返回了空内容", zap.String("model", s.model))
		return "", fmt.Errorf("模型未返回有效内容")
	}
	return text, nil
}

// GenerateTitles 实现候选标题生成。
func (s *aiService) GenerateTitles(ctx context.Context, topic string, keywords []string) (*vo.AITitlesVO, error) {
	s.logger.Info("开始生成 AI 候选标题", zap.String("model", s.model), zap.String("topic", topic))

	raw, err := s.generate(ctx, fmt.Sprintf(titlesPromptTemplate, topic, strings.Join(keywords, ", ")))
	if err != nil {
		return nil, err
	}

	titles := SplitTitleLines(raw)
	if len(titles) == 0 {
		return nil, fmt.Errorf("模型未返回有效标题")
	}
	return &vo.AITitlesVO{Titles: titles}, nil
}

// GenerateContent 实现正文生成。
func (s *aiService) GenerateContent(ctx context.Context, title string, keywords []string, tone string) (*vo.AIDraftVO, error) {
	if tone == "" {
		tone = defaultTone
	}
	s.logger.Info("开始生成 AI 正文", zap.String("model", s.model), zap.String("title", title), zap.String("tone", tone))

	raw, err := s.generate(ctx, fmt.Sprintf(contentPromptTemplate, tone, title, strings.Join(keywords, ", ")))
	if err != nil {
		return nil, err
	}

	content := CleanGeneratedHTML(raw)
	if content == "" {
		return nil, fmt.Errorf("模型未返回有效内容")
	}
	s.logger.Info("AI 正文生成完成", zap.Int("contentLen", len(content)))
	return &vo.AIDraftVO{Content: content}, nil
}

// ImproveContent 实现正文润色。
func (s *aiService) ImproveContent(ctx context.Context, content string) (*vo.AIDraftVO, error) {
	s.logger.Info("开始润色正文", zap.String("model", s.model), zap.Int("contentLen", len(content)))

	raw, err := s.generate(ctx, fmt.Sprintf(improvePromptTemplate, content))
	if err != nil {
		return nil, err
	}

	improved := CleanGeneratedHTML(raw)
	if improved == "" {
		return nil, fmt.Errorf("模型未返回有效内容")
	}
	return &vo.AIDraftVO{Content: improved}, nil
}

// SuggestCategory 实现分类推荐。
// - 模型输出若不在候选列表内，回退为列表第一项，保证返回值总是合法分类。
func (s *aiService) SuggestCategory(ctx context.Context, content string, available []string) (*vo.AICategoryVO, error) {
	if len(available) == 0 {
		return nil, fmt.Errorf("候选分类列表为空")
	}
	s.logger.Info("开始推荐分类", zap.String("model", s.model), zap.Int("candidates", len(available)))

	raw, err := s.generate(ctx, fmt.Sprintf(categoryPromptTemplate, strings.Join(available, ", "), content))
	if err != nil {
		return nil, err
	}

	return &vo.AICategoryVO{Category: PickCategory(raw, available)}, nil
}

var (
	fencePattern   = regexp.MustCompile("(?s)```(?:html)?\\s*(.*?)\\s*```")
	doctypePattern = regexp.MustCompile(`(?i)<!DOCTYPE[^>]*>`)
	shellPattern   = regexp.MustCompile(`(?is)</?(?:html|head|body)[^>]*>`)
	headPattern    = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
)

// CleanGeneratedHTML 清洗模型输出，使其成为可直接嵌入编辑器的 HTML 片段。
// - 模型偶尔无视提示词约束，输出 Markdown 代码围栏或整页 HTML 骨架，
//   这里兜底剥掉：围栏取其内部内容，<head> 整块丢弃，骨架标签去壳保留内容。
func CleanGeneratedHTML(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if m := fencePattern.FindStringSubmatch(cleaned); m != nil {
		cleaned = m[1]
	}

	cleaned = doctypePattern.ReplaceAllString(cleaned, "")
	cleaned = headPattern.ReplaceAllString(cleaned, "")
	cleaned = shellPattern.ReplaceAllString(cleaned, "")

	return strings.TrimSpace(cleaned)
}

// SplitTitleLines 把模型按行返回的标题列表拆开。
// - 兜底清理模型常见的违规输出：行首编号、项目符号和包裹引号。
func SplitTitleLines(raw string) []string {
	var titles []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = titleDecorPattern.ReplaceAllString(line, "")
		line = strings.Trim(line, `"'`)
		if line != "" {
			titles = append(titles, line)
		}
	}
	return titles
}

var titleDecorPattern = regexp.MustCompile(`^(?:\d+[.)]\s*|[-*]\s*)`)

// PickCategory 在候选列表中匹配模型返回的分类（不区分大小写），
// 匹配不到时回退为第一项。
func PickCategory(raw string, available []string) string {
	answer := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), `"'`))
	for _, c := range available {
		if strings.EqualFold(c, answer) {
			return c
		}
	}
	return available[0]
}
