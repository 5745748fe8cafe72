package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve 把用户给出的仓库目录解析为已存在目录的绝对路径。
// 支持 ~ 和 ~/ 前缀。目录不必是仓库根目录，查询后端会向上查找 .git。
func Resolve(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", errors.New("repo: empty path")
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("repo %s: %w", p, err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
	}

	dir, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("repo %s: %w", p, err)
	}

	st, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("repo %s: %w", dir, err)
	}
	if !st.IsDir() {
		return "", fmt.Errorf("repo %s: not a directory", dir)
	}
	return dir, nil
}
