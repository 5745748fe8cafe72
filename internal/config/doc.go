// Package config 提供 git-freq 的可选配置。
//
// 配置文件位于 ~/.config/git-freq/config.yaml，使用 YAML 格式，
// 也可以通过 GIT_FREQ_<KEY> 环境变量覆盖。两者都不存在时使用内置默认值。
package config
