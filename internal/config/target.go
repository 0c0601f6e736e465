// Package config 定义部署目标（服务器、本地/远程目录、文件清单）和运行时凭证的获取方式。
// 目标在编译期固定，不读取命令行参数或环境变量。
package config

import (
	"net"
	"path/filepath"
	"strconv"
)

const (
	ProtocolFTP  = "ftp"
	ProtocolSFTP = "sftp"

	DefaultHost      = "cyberex.com.tr"
	DefaultFTPPort   = 21
	DefaultLocalDir  = "web"
	DefaultRemoteDir = "/public_html/web3app"
	DefaultPublicURL = "https://cyberex.com.tr/web3app"
)

// defaultManifest 上传顺序即此顺序
var defaultManifest = []string{
	"index.html",
	"style.css",
	"script.js",
	".htaccess",
}

// Target 一次部署的目标。构造后不可修改：字段为值类型，文件清单只通过 Manifest() 拷贝读取
type Target struct {
	Host      string
	Port      int
	Protocol  string
	LocalDir  string
	RemoteDir string
	PublicURL string

	manifest []string
}

// DefaultTarget 返回 cyberex.com.tr/web3app 的部署目标（明文 FTP，默认端口）
func DefaultTarget() Target {
	return NewTarget(DefaultHost, DefaultFTPPort, DefaultLocalDir, DefaultRemoteDir, DefaultPublicURL, defaultManifest)
}

// NewTarget 创建明文 FTP 目标，manifest 会被拷贝
func NewTarget(host string, port int, localDir, remoteDir, publicURL string, manifest []string) Target {
	return Target{
		Host:      host,
		Port:      port,
		Protocol:  ProtocolFTP,
		LocalDir:  localDir,
		RemoteDir: remoteDir,
		PublicURL: publicURL,
		manifest:  append([]string(nil), manifest...),
	}
}

// WithProtocol 返回替换了传输协议的副本
func (t Target) WithProtocol(protocol string) Target {
	t.manifest = append([]string(nil), t.manifest...)
	t.Protocol = protocol
	return t
}

// Manifest 返回文件清单的副本
func (t Target) Manifest() []string {
	return append([]string(nil), t.manifest...)
}

// Address 返回 host:port
func (t Target) Address() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// LocalPath 返回清单文件在本地目录下的路径
func (t Target) LocalPath(name string) string {
	return filepath.Join(t.LocalDir, name)
}
