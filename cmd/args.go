package cmd

import (
	"strings"

	"github.com/spf13/pflag"
)

// partitionArgs 把参数分成已知标志和位置参数两部分，位置参数放在 "--" 之后。
// 负数（"-7"）、无法识别的 "-x"/"--x" 形式都按位置参数处理，
// 由 bounds 解析决定是报错还是按默认值运行，而不是被 pflag 当作未知标志拒绝。
// 需要取值的标志（"-C dir"、"--git -7"）会连同取值留在标志部分。
func partitionArgs(flags *pflag.FlagSet, args []string) []string {
	flagArgs := make([]string, 0, len(args))
	positional := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}

		known, takesNext := classifyFlag(flags, arg)
		if !known {
			positional = append(positional, arg)
			continue
		}

		flagArgs = append(flagArgs, arg)
		if takesNext && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}

	if len(positional) == 0 {
		return flagArgs
	}
	out := append(flagArgs, "--")
	return append(out, positional...)
}

// classifyFlag 判断 arg 是否是 flags 中已定义的标志，以及它是否需要下一个参数作为取值。
func classifyFlag(flags *pflag.FlagSet, arg string) (known, takesNext bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return false, false
	}

	// --name 或 --name=value
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, hasValue := strings.Cut(name, "=")
		f := flags.Lookup(name)
		if name == "" || f == nil {
			return false, false
		}
		return true, !hasValue && f.NoOptDefVal == ""
	}

	// -v、-C dir、-Cdir、-vC dir 等短标志组合
	shorts := arg[1:]
	for i := 0; i < len(shorts); i++ {
		f := flags.ShorthandLookup(shorts[i : i+1])
		if f == nil {
			return false, false
		}
		if i+1 < len(shorts) && shorts[i+1] == '=' {
			return true, false
		}
		if f.NoOptDefVal != "" {
			continue
		}
		// 需要取值的短标志：剩余字符就是取值，否则取下一个参数
		return true, i == len(shorts)-1
	}
	return true, false
}
