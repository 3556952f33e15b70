// Package s3 предоставляет функционал для резервного копирования каталога в Amazon S3
package s3

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
}

// uploadAPI часть s3manager.Uploader, которой пользуется Uploader
type uploadAPI interface {
	UploadWithContext(ctx context.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// Uploader обертка для S3 uploader
type Uploader struct {
	s3Uploader uploadAPI
	config     *Config
}

// NewUploader создает новый S3 uploader
func NewUploader(config *Config) (*Uploader, error) {
	if config.BucketName == "" {
		return nil, fmt.Errorf("не задан бакет S3")
	}

	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return &Uploader{
		s3Uploader: s3manager.NewUploader(sess),
		config:     config,
	}, nil
}

// UploadFile загружает данные в S3 и возвращает URL объекта
func (u *Uploader) UploadFile(ctx context.Context, reader io.Reader, key string) (string, error) {
	output, err := u.s3Uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(u.config.BucketName),
		Key:    aws.String(key),
		Body:   reader,
	})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки: %w", err)
	}

	if u.config.Endpoint == "" && output != nil && output.Location != "" {
		return output.Location, nil
	}
	return fmt.Sprintf("%s/%s/%s", u.config.Endpoint, u.config.BucketName, key), nil
}

// ObjectKey формирует ключ резервной копии: <prefix>/<время UTC>/<имя файла>
func ObjectKey(prefix string, at time.Time, filePath string) string {
	return path.Join(prefix, at.UTC().Format("20060102T150405Z"), filepath.Base(filePath))
}
