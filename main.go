// git-freq 按日历日统计 Git 仓库的提交次数，并输出连续的每日提交数序列。
package main

import (
	"git-freq/cmd"
)

// main 是程序的入口函数，负责启动 CLI 命令执行。
func main() {
	cmd.Execute()
}
