package remote

import (
	"context"
	"fmt"
	"io"

	"github.com/jlaffaye/ftp"

	"github.com/hwuu/ftpdeploy/internal/logging"
)

// ftpSession 明文 FTP 会话，超时沿用 jlaffaye/ftp 的默认值
type ftpSession struct {
	conn *ftp.ServerConn
}

// DialFTP 连接 FTP 服务器（未加密，控制连接在 addr 上）
func DialFTP(ctx context.Context, addr string) (Session, error) {
	logging.Debugf("ftp: dial %s", addr)
	conn, err := ftp.Dial(addr, ftp.DialWithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("FTP connection to %s failed: %w", addr, err)
	}
	return &ftpSession{conn: conn}, nil
}

func (s *ftpSession) Login(user, secret string) error {
	logging.Debugf("ftp: USER %s", user)
	if err := s.conn.Login(user, secret); err != nil {
		return fmt.Errorf("FTP login failed: %w", err)
	}
	return nil
}

func (s *ftpSession) ChangeDir(path string) error {
	logging.Debugf("ftp: CWD %s", path)
	return s.conn.ChangeDir(path)
}

func (s *ftpSession) MakeDir(path string) error {
	logging.Debugf("ftp: MKD %s", path)
	return s.conn.MakeDir(path)
}

func (s *ftpSession) Store(name string, r io.Reader) error {
	logging.Debugf("ftp: STOR %s", name)
	return s.conn.Stor(name, r)
}

func (s *ftpSession) Quit() error {
	logging.Debugf("ftp: QUIT")
	return s.conn.Quit()
}
