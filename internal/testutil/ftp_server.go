// Package testutil 提供测试用的本地假服务端，避免连接真实服务器。
package testutil

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"
)

// FTPServer 按脚本应答的回环 FTP 服务端，只接受一个控制连接。
// 支持 USER/PASS/FEAT/TYPE/CWD/MKD/EPSV/STOR/QUIT，其他命令返回 502。
type FTPServer struct {
	Addr string
	Host string
	Port int

	user, pass string
	ln         net.Listener
	done       chan struct{}

	mu       sync.Mutex
	commands []string
	dirs     map[string]bool
	files    map[string]string
}

// NewFTPServer 在 127.0.0.1 随机端口启动服务端；dirs 为预先存在的远程目录
func NewFTPServer(t *testing.T, user, pass string, dirs ...string) *FTPServer {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	tcpAddr := ln.Addr().(*net.TCPAddr)

	s := &FTPServer{
		Addr:  ln.Addr().String(),
		Host:  tcpAddr.IP.String(),
		Port:  tcpAddr.Port,
		user:  user,
		pass:  pass,
		ln:    ln,
		done:  make(chan struct{}),
		dirs:  make(map[string]bool),
		files: make(map[string]string),
	}
	for _, d := range dirs {
		s.dirs[d] = true
	}

	go func() {
		defer close(s.done)
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		s.serve(conn)
	}()
	t.Cleanup(func() { ln.Close() })

	return s
}

// Commands 返回收到的全部命令行（按顺序）
func (s *FTPServer) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...)
}

// Verbs 返回收到的命令中属于 verbs 的部分（按顺序）
func (s *FTPServer) Verbs(verbs ...string) []string {
	var out []string
	for _, c := range s.Commands() {
		verb, _, _ := strings.Cut(c, " ")
		for _, v := range verbs {
			if verb == v {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// File 返回 STOR 写入的内容
func (s *FTPServer) File(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.files[name]
	return content, ok
}

// HasDir 报告远程目录是否存在（预置或 MKD 创建）
func (s *FTPServer) HasDir(dir string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirs[dir]
}

// WaitClosed 等待控制连接结束（QUIT 或客户端断开）
func (s *FTPServer) WaitClosed(t *testing.T) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(5 * time.Second):
		t.Fatal("FTP control connection not closed")
	}
}

func (s *FTPServer) serve(conn net.Conn) {
	defer conn.Close()

	reply := func(format string, args ...interface{}) {
		fmt.Fprintf(conn, format+"\r\n", args...)
	}

	var data net.Listener
	defer func() {
		if data != nil {
			data.Close()
		}
	}()

	reply("220 test server ready")
	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		verb, arg, _ := strings.Cut(line, " ")
		verb = strings.ToUpper(verb)

		s.mu.Lock()
		s.commands = append(s.commands, line)
		s.mu.Unlock()

		switch verb {
		case "USER":
			reply("331 Password required")
		case "PASS":
			if arg == s.pass {
				reply("230 Logged in")
			} else {
				reply("530 Login incorrect")
			}
		case "FEAT":
			reply("211 No features")
		case "TYPE":
			reply("200 Type set")
		case "CWD":
			if s.HasDir(arg) {
				reply("250 Directory changed")
			} else {
				reply("550 No such directory")
			}
		case "MKD":
			s.mu.Lock()
			s.dirs[arg] = true
			s.mu.Unlock()
			reply("257 \"%s\" created", arg)
		case "EPSV":
			if data != nil {
				data.Close()
			}
			data, err = net.Listen("tcp", "127.0.0.1:0")
			if err != nil {
				reply("425 Cannot open data connection")
				continue
			}
			reply("229 Entering Extended Passive Mode (|||%d|)", data.Addr().(*net.TCPAddr).Port)
		case "STOR":
			if data == nil {
				reply("425 Use EPSV first")
				continue
			}
			reply("150 Opening data connection")
			content, err := receive(data)
			data.Close()
			data = nil
			if err != nil {
				reply("426 Transfer aborted")
				continue
			}
			s.mu.Lock()
			s.files[arg] = content
			s.mu.Unlock()
			reply("226 Transfer complete")
		case "QUIT":
			reply("221 Bye")
			return
		default:
			reply("502 Command not implemented")
		}
	}
}

func receive(data net.Listener) (string, error) {
	dc, err := data.Accept()
	if err != nil {
		return "", err
	}
	defer dc.Close()
	content, err := io.ReadAll(dc)
	return string(content), err
}
