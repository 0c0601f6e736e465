// Package remote 封装部署使用的文件传输会话（明文 FTP / SFTP）。
// Deployer 只依赖 Session 接口，测试中用 mock 替换。
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hwuu/ftpdeploy/internal/config"
)

var (
	ErrUnsupportedProtocol = errors.New("unsupported transfer protocol")
)

// Session 一次已建立连接的文件传输会话
type Session interface {
	// Login 使用用户名和密码认证
	Login(user, secret string) error
	// ChangeDir 切换远程工作目录
	ChangeDir(path string) error
	// MakeDir 创建远程目录（单级，不递归）
	MakeDir(path string) error
	// Store 将 r 的内容写入当前目录下的 name，已存在则覆盖
	Store(name string, r io.Reader) error
	// Quit 正常结束会话并断开连接
	Quit() error
}

// Dialer 建立到 addr（host:port）的连接，不做认证
type Dialer func(ctx context.Context, addr string) (Session, error)

// DialerFor 按协议名返回对应的 Dialer
func DialerFor(protocol string) (Dialer, error) {
	switch protocol {
	case config.ProtocolFTP:
		return DialFTP, nil
	case config.ProtocolSFTP:
		return DialSFTP, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, protocol)
	}
}
