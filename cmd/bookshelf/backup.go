package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-bookshelf/internal/s3"
)

// createBackupCommand создает команду backup с привязкой к экземпляру приложения
func (app *Application) createBackupCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Upload the data file and the journal to S3",
		Long:  `Upload the catalog data file and, if present, the mutation journal to the configured S3 bucket.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			backupCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			uploader, err := s3.NewUploader(&s3.Config{
				Region:     app.Config.AwsRegion,
				AccessKey:  app.Config.AwsAccessKey,
				SecretKey:  app.Config.AwsSecretKey,
				Endpoint:   app.Config.AwsEndpoint,
				BucketName: app.Config.AwsBucketName,
			})
			if err != nil {
				return fmt.Errorf("ошибка создания S3 uploader: %w", err)
			}
			return app.backup(backupCtx, uploader, time.Now())
		},
	}
}

// fileUploader загружает данные в хранилище
type fileUploader interface {
	UploadFile(ctx context.Context, reader io.Reader, key string) (string, error)
}

func (app *Application) backup(ctx context.Context, uploader fileUploader, at time.Time) error {
	// Сохраняем текущее состояние, чтобы файл данных существовал
	if err := app.SaveData(); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}

	files := []string{app.Config.DataFile}
	if _, err := os.Stat(app.Config.LogFile); err == nil {
		files = append(files, app.Config.LogFile)
	}

	fmt.Printf("📤 Резервное копирование в бакет %s\n", app.Config.AwsBucketName)
	for _, path := range files {
		url, err := uploadFile(ctx, uploader, path, s3.ObjectKey(app.Config.BackupPrefix, at, path))
		if err != nil {
			return err
		}
		fmt.Printf("   %s -> %s\n", path, url)
	}

	fmt.Println("✅ Резервная копия создана")
	return nil
}

func uploadFile(ctx context.Context, uploader fileUploader, path, key string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	url, err := uploader.UploadFile(ctx, file, key)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки %s: %w", path, err)
	}
	return url, nil
}
