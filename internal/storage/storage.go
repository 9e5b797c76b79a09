package storage

import (
	"fmt"
	"mime/multipart"

	"socialnet-backend/config"
)

// FileStorage 是文件存储后端的统一接口，返回可存入数据库的文件引用
type FileStorage interface {
	UploadFile(file *multipart.FileHeader, path string) (string, error)
}

// NewFromConfig 根据配置选择存储后端
func NewFromConfig() (FileStorage, error) {
	switch config.AppConfig.StorageDriver {
	case "local":
		return NewLocalStorage(config.AppConfig.LocalStoragePath)
	case "s3":
		return NewS3Client(config.AppConfig.S3Region, config.AppConfig.S3Bucket)
	case "gcs":
		return NewGCSClient(config.AppConfig.GCSProjectID,
			config.AppConfig.GCSBucketName, config.AppConfig.GCSCredentialsFile)
	default:
		return nil, fmt.Errorf("未知的存储驱动: %s", config.AppConfig.StorageDriver)
	}
}
