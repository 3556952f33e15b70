// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath путь к файлу конфигурации по умолчанию
	DefaultPath = "~/.bookshelf"

	defaultDataFile     = "~/.bookshelf_data.yaml"
	defaultLogFile      = "library_log.txt"
	defaultBackupPrefix = "bookshelf"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	DataFile      string `yaml:"data_file"`
	LogEnabled    bool   `yaml:"log_enabled"`
	LogFile       string `yaml:"log_file"`
	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint"`
	BackupPrefix  string `yaml:"backup_prefix"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		DataFile:     defaultDataFile,
		LogFile:      defaultLogFile,
		BackupPrefix: defaultBackupPrefix,
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, используются значения по умолчанию
func LoadConfig(filePath string) (*Config, error) {
	path, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	config := Default()

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(content, config); err != nil {
			return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
		}
	}

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.DataFile == "" {
		config.DataFile = defaultDataFile
	}
	if config.LogFile == "" {
		config.LogFile = defaultLogFile
	}
	if config.BackupPrefix == "" {
		config.BackupPrefix = defaultBackupPrefix
	}

	if config.DataFile, err = ExpandHome(config.DataFile); err != nil {
		return nil, err
	}
	if config.LogFile, err = ExpandHome(config.LogFile); err != nil {
		return nil, err
	}

	return config, nil
}

// ExpandHome раскрывает тильду в начале пути
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
