package remote

// sftp.go 提供基于 SSH 的传输会话，与 FTP 会话共用 Session 接口。
// Dial 只建立 TCP 连接；SSH 握手和密码认证放在 Login 中完成，
// 这样连接失败和认证失败可以分别上报。

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/hwuu/ftpdeploy/internal/logging"
)

type sftpSession struct {
	addr   string
	conn   net.Conn
	ssh    *ssh.Client
	client *sftp.Client
	cwd    string
}

// DialSFTP 建立到 SSH 服务的 TCP 连接
func DialSFTP(ctx context.Context, addr string) (Session, error) {
	logging.Debugf("sftp: dial %s", addr)
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("SSH connection to %s failed: %w", addr, err)
	}
	return &sftpSession{addr: addr, conn: conn}, nil
}

// Login 完成 SSH 握手（密码认证）并打开 SFTP 子系统
func (s *sftpSession) Login(user, secret string) error {
	logging.Debugf("sftp: login %s", user)
	cfg := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.Password(secret),
			ssh.KeyboardInteractive(func(_, _ string, questions []string, _ []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range answers {
					answers[i] = secret
				}
				return answers, nil
			}),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	c, chans, reqs, err := ssh.NewClientConn(s.conn, s.addr, cfg)
	if err != nil {
		return fmt.Errorf("SSH login failed: %w", err)
	}
	s.ssh = ssh.NewClient(c, chans, reqs)

	client, err := sftp.NewClient(s.ssh)
	if err != nil {
		s.ssh.Close()
		s.ssh = nil
		return fmt.Errorf("SFTP connection failed: %w", err)
	}
	s.attach(client)
	return nil
}

// attach 绑定 SFTP 客户端，并以服务端报告的目录作为初始工作目录
func (s *sftpSession) attach(client *sftp.Client) {
	s.client = client
	s.cwd = "/"
	if wd, err := client.Getwd(); err == nil && wd != "" {
		s.cwd = wd
	}
}

func (s *sftpSession) resolve(p string) string {
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(s.cwd, p)
}

// ChangeDir SFTP 没有服务端工作目录，只在本地记录，切换前确认目标是目录
func (s *sftpSession) ChangeDir(p string) error {
	target := s.resolve(p)
	logging.Debugf("sftp: cd %s", target)
	fi, err := s.client.Stat(target)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s: not a directory", target)
	}
	s.cwd = target
	return nil
}

func (s *sftpSession) MakeDir(p string) error {
	target := s.resolve(p)
	logging.Debugf("sftp: mkdir %s", target)
	return s.client.Mkdir(target)
}

func (s *sftpSession) Store(name string, r io.Reader) error {
	target := s.resolve(name)
	logging.Debugf("sftp: put %s", target)
	f, err := s.client.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *sftpSession) Quit() error {
	logging.Debugf("sftp: quit")
	var err error
	if s.client != nil {
		err = s.client.Close()
	}
	switch {
	case s.ssh != nil:
		if cerr := s.ssh.Close(); err == nil {
			err = cerr
		}
	case s.conn != nil:
		if cerr := s.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
