package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// 默认配置值，与不带任何配置运行时的行为一致。
const (
	DefaultRepo     = "."
	DefaultBackend  = "exec"
	DefaultGit      = "git"
	DefaultLogLevel = "warn"
)

// envPrefix 是环境变量前缀，例如 GIT_FREQ_BACKEND。
const envPrefix = "GIT_FREQ"

type Config struct {
	Repo     string // 仓库目录
	Backend  string // 日志查询后端：exec 或 gogit
	Git      string // exec 后端使用的 git 可执行文件
	LogLevel string // debug/info/warn/error
}

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "git-freq"), nil
}

func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load 读取配置文件和环境变量。配置文件不存在时不视为错误；
// 无法确定主目录（例如未设置 $HOME）时跳过配置文件，只使用环境变量和默认值。
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("repo", DefaultRepo)
	v.SetDefault("backend", DefaultBackend)
	v.SetDefault("git", DefaultGit)
	v.SetDefault("log_level", DefaultLogLevel)

	configFile, err := File()
	if err == nil {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			// SetConfigFile 指定路径时，文件缺失返回的是 *fs.PathError
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
			}
		}
	}

	return Config{
		Repo:     strings.TrimSpace(v.GetString("repo")),
		Backend:  strings.ToLower(strings.TrimSpace(v.GetString("backend"))),
		Git:      strings.TrimSpace(v.GetString("git")),
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
	}, nil
}

// Validate 检查配置取值是否合法。
func (c Config) Validate() error {
	switch c.Backend {
	case "exec", "gogit":
	default:
		return fmt.Errorf("unsupported backend %q (supported: exec, gogit)", c.Backend)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log_level %q (supported: debug, info, warn, error)", c.LogLevel)
	}

	if c.Repo == "" {
		return fmt.Errorf("repo must not be empty")
	}
	if c.Git == "" {
		return fmt.Errorf("git must not be empty")
	}
	return nil
}
