// Package config 负责加载和管理应用程序的配置。
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// 全局配置变量，存储从配置文件加载的所有设置。
var Conf Config

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	LLM      LLMConfig      `mapstructure:"llm"`
	LeetCode LeetCodeConfig `mapstructure:"leetcode"`
}

// ServerConfig 存储服务器相关的配置。
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// LLMConfig 存储模型后端相关的配置。
// base_url 留空时，由 ResolveBackendURL 按环境变量和内置默认值解析。
type LLMConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// LeetCodeConfig 存储题目数据接口相关的配置。
type LeetCodeConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Init 初始化配置加载，从指定的路径读取 YAML 文件并解析到 Conf 变量中。
// 配置文件不存在时使用内置默认值，保证进程总能带着可用配置启动。
func Init(configPath string) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8000")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("llm.timeout_seconds", 120)
	viper.SetDefault("leetcode.base_url", "https://leetcode-api-pied.vercel.app")
	viper.SetDefault("leetcode.timeout_seconds", 10)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isNotExist(err) {
			panic(fmt.Errorf("读取配置文件失败: %w", err))
		}
	}

	if err := viper.Unmarshal(&Conf); err != nil {
		panic(fmt.Errorf("无法将配置解析到结构体中: %w", err))
	}
}

// isNotExist 判断 ReadInConfig 的错误是否为文件不存在。
// viper 在显式指定文件路径时返回的是 *fs.PathError 而非 ConfigFileNotFoundError。
func isNotExist(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr)
}
