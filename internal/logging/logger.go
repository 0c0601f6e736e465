// Package logging 提供进程级日志（stderr，基于 charmbracelet/log）。
// 面向用户的进度输出不走这里，由 deploy.Deployer 直接写入 Output。
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L 包级 logger，默认 Info 级别输出到 stderr
var L = clog.NewWithOptions(os.Stderr, clog.Options{
	Prefix: "ftpdeploy",
	Level:  clog.InfoLevel,
})

// SetDebug 切换 Debug 级别（对应 --debug）
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}

// SetOutput 重定向日志输出（测试用）
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
