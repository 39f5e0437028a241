package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/models/vo"
)

// UploadService 定义了媒体文件上传的业务逻辑接口。
type UploadService interface {
	// UploadImage 把题图等图片上传到对象存储，返回公开访问 URL。
	UploadImage(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (*vo.UploadResultVO, error)
}

type uploadService struct {
	cosClient dependencies.COSClientInterface
	logger    *core.ZapLogger
}

// NewUploadService 是 uploadService 的构造函数。
func NewUploadService(cosClient dependencies.COSClientInterface, logger *core.ZapLogger) UploadService {
	return &uploadService{
		cosClient: cosClient,
		logger:    logger,
	}
}

// generateObjectKey 创建一个唯一的 COS 对象键。
// - 规则: blog/uploads/YYYYMMDD/userID_uuid.ext；
//   文件名部分不使用用户可控的原始文件名，避免路径注入。
func (s *uploadService) generateObjectKey(originalFilename string, userID string) string {
	datePrefix := time.Now().Format("20060102")
	extension := strings.ToLower(filepath.Ext(originalFilename))
	return fmt.Sprintf("%s%s/%s_%s%s",
		constant.FeatureImageKeyPrefix,
		datePrefix,
		userID,
		uuid.NewString(),
		extension,
	)
}

// UploadImage 实现图片上传。
func (s *uploadService) UploadImage(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (*vo.UploadResultVO, error) {
	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("打开上传文件失败", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return nil, fmt.Errorf("打开文件 %s 失败: %w", fileHeader.Filename, err)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
		s.logger.Warn("未提供上传文件的内容类型，使用默认值",
			zap.String("filename", fileHeader.Filename),
			zap.String("defaultContentType", contentType))
	}

	objectKey := s.generateObjectKey(fileHeader.Filename, userID)

	url, err := s.cosClient.UploadFile(ctx, objectKey, file, fileHeader.Size, contentType)
	if err != nil {
		s.logger.Error("上传文件到 COS 失败",
			zap.String("filename", fileHeader.Filename),
			zap.String("objectKey", objectKey),
			zap.Error(err))
		return nil, fmt.Errorf("上传文件 %s 失败: %w", fileHeader.Filename, err)
	}

	s.logger.Info("文件上传成功",
		zap.String("objectKey", objectKey),
		zap.String("url", url))
	return &vo.UploadResultVO{URL: url}, nil
}
