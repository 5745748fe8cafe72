package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"git-freq/internal/config"
	"git-freq/internal/freq"
	"git-freq/internal/gitlog"
	"git-freq/internal/logging"
	"git-freq/internal/repo"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version 是 git-freq 的版本号，通过 --version 输出。
var Version = "0.1.0"

// timeNow 抽象 time.Now 以便在测试中注入固定时间。
var timeNow = time.Now

// 命令行标志变量，未指定时使用配置值
var (
	rootRepo    string // 仓库目录
	rootBackend string // 日志查询后端
	rootGit     string // git 可执行文件
	rootVerbose bool   // 输出调试日志
)

// rootCmd 输出每日提交数序列。
// 用法: git-freq [reference-date days]
var rootCmd = &cobra.Command{
	Use:   "git-freq [reference-date days]",
	Short: "Print daily commit counts of a git repository",
	Long: `Print the number of commits per calendar day as a space-separated line.

Without arguments the whole history is counted. With exactly two arguments,
a reference date (YYYY-MM-DD) and a signed day count, only the window of that
many days ending (negative) or starting (positive) at the reference date is
counted and the output always covers the whole window. Any other number of
arguments behaves like no arguments.`,
	Example: `  git-freq
  git-freq 2024-01-10 -7
  git-freq -C ~/src/project --backend gogit 2024-01-10 30`,
	Args:          cobra.ArbitraryArgs,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute 运行根命令，出错时把诊断信息写到 stderr 并以非零状态退出。
func Execute() {
	rootCmd.SetArgs(partitionArgs(rootCmd.Flags(), os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func init() {
	addRootFlags(rootCmd)
}

// addRootFlags 为命令添加仓库和后端相关的标志。
func addRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&rootRepo, "repo", "C", "", "Repository directory (default: config value or .)")
	cmd.Flags().StringVar(&rootBackend, "backend", "", "Log backend: exec/gogit (default: config value or exec)")
	cmd.Flags().StringVar(&rootGit, "git", "", "Git executable used by the exec backend (default: config value or git)")
	cmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "Write debug logs to stderr")

	// 提前注册 cobra 的 help/version 标志，参数分区时才能识别它们
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()
}

// runRoot 解析窗口，查询提交日志并输出每日提交数。
// 结果不带结尾换行。
func runRoot(cmd *cobra.Command, args []string) error {
	// 参数错误优先于其他任何错误
	bounds, err := freq.ResolveBounds(args, timeNow())
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if _, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
		return err
	}

	dir, err := repo.Resolve(cfg.Repo)
	if err != nil {
		return err
	}

	if lr, ok := bounds.LowerRelative(); ok {
		slog.Debug("resolved bounds", "upper", bounds.Upper().Format(gitlog.DateLayout), "lower_relative", lr)
	}

	src, err := gitlog.New(cfg.Backend, cfg.Git, dir)
	if err != nil {
		return err
	}

	out, err := freq.Run(src, bounds)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// applyFlags 用显式指定的命令行标志覆盖配置值。
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("repo") {
		cfg.Repo = rootRepo
	}
	if flags.Changed("backend") {
		cfg.Backend = rootBackend
	}
	if flags.Changed("git") {
		cfg.Git = rootGit
	}
	if rootVerbose {
		cfg.LogLevel = "debug"
	}
}

// printError 输出带颜色前缀的错误信息，非终端环境下自动去掉颜色。
func printError(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprint(w, "Error: ")
	fmt.Fprintln(w, err)
}
