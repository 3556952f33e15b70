package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadConfigFromFile(t *testing.T) {
	// Создаем временный файл конфигурации
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	testConfig := Config{
		DataFile:      filepath.Join(tempDir, "data.yaml"),
		LogEnabled:    true,
		LogFile:       filepath.Join(tempDir, "log.txt"),
		AwsBucketName: "test-bucket",
		AwsAccessKey:  "test-access-key",
		AwsSecretKey:  "test-secret-key",
		AwsRegion:     "us-east-1",
		AwsEndpoint:   "https://s3.amazonaws.com",
		BackupPrefix:  "backups",
	}

	data, err := yaml.Marshal(testConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if *loadedConfig != testConfig {
		t.Errorf("Ожидалась конфигурация %+v, получено %+v", testConfig, *loadedConfig)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Минимальная конфигурация без путей
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "minimal_config.yaml")

	minimalConfig := map[string]string{
		"aws_bucket_name": "test-bucket",
	}
	data, err := yaml.Marshal(minimalConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	home, _ := os.UserHomeDir()
	expectedDataFile := filepath.Join(home, ".bookshelf_data.yaml")
	if loadedConfig.DataFile != expectedDataFile {
		t.Errorf("Ожидался DataFile по умолчанию: %s, получено: %s", expectedDataFile, loadedConfig.DataFile)
	}
	if loadedConfig.LogFile != "library_log.txt" {
		t.Errorf("Ожидался LogFile по умолчанию: library_log.txt, получено: %s", loadedConfig.LogFile)
	}
	if loadedConfig.LogEnabled {
		t.Error("Журнал по умолчанию должен быть выключен")
	}
	if loadedConfig.BackupPrefix != "bookshelf" {
		t.Errorf("Ожидался BackupPrefix: bookshelf, получено: %s", loadedConfig.BackupPrefix)
	}
	if loadedConfig.AwsBucketName != "test-bucket" {
		t.Errorf("Ожидался AwsBucketName: test-bucket, получено: %s", loadedConfig.AwsBucketName)
	}
}

func TestLoadConfigNonExistentFile(t *testing.T) {
	loadedConfig, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Отсутствующий файл не должен быть ошибкой: %v", err)
	}

	if loadedConfig.LogFile != "library_log.txt" {
		t.Errorf("Ожидались значения по умолчанию, получено: %+v", loadedConfig)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid_config.yaml")

	invalidYAML := `aws_bucket_name: "test-bucket"
log_enabled: true
invalid_field: [unclosed array
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Ожидалась ошибка при загрузке некорректного YAML")
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("домашняя директория недоступна")
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~", home},
		{"~/books.yaml", filepath.Join(home, "books.yaml")},
		{"library_log.txt", "library_log.txt"},
		{"/tmp/~/x", "/tmp/~/x"},
		{"~user/x", "~user/x"},
	}

	for _, test := range tests {
		result, err := ExpandHome(test.input)
		if err != nil {
			t.Errorf("ExpandHome(%s) вернул ошибку: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("ExpandHome(%s) = %s; expected %s", test.input, result, test.expected)
		}
	}
}
