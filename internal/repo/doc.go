// Package repo 解析和检查要统计的仓库目录。
package repo
