package config_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hwuu/ftpdeploy/internal/config"
)

func TestDefaultTarget(t *testing.T) {
	target := config.DefaultTarget()

	if target.Host != "cyberex.com.tr" {
		t.Errorf("Host = %q", target.Host)
	}
	if target.Protocol != config.ProtocolFTP {
		t.Errorf("Protocol = %q, want ftp", target.Protocol)
	}
	if target.Address() != "cyberex.com.tr:21" {
		t.Errorf("Address = %q", target.Address())
	}
	if target.LocalDir != "web" {
		t.Errorf("LocalDir = %q", target.LocalDir)
	}
	if target.RemoteDir != "/public_html/web3app" {
		t.Errorf("RemoteDir = %q", target.RemoteDir)
	}
	if target.PublicURL != "https://cyberex.com.tr/web3app" {
		t.Errorf("PublicURL = %q", target.PublicURL)
	}

	want := []string{"index.html", "style.css", "script.js", ".htaccess"}
	if got := target.Manifest(); !reflect.DeepEqual(got, want) {
		t.Errorf("Manifest = %v, want %v", got, want)
	}
}

func TestTarget_ManifestIsCopy(t *testing.T) {
	target := config.DefaultTarget()

	m := target.Manifest()
	m[0] = "evil.php"

	if target.Manifest()[0] != "index.html" {
		t.Error("修改 Manifest() 返回值不应影响 Target")
	}
	if config.DefaultTarget().Manifest()[0] != "index.html" {
		t.Error("修改 Manifest() 返回值不应影响默认清单")
	}
}

func TestNewTarget_CopiesManifest(t *testing.T) {
	files := []string{"a.html", "b.css"}
	target := config.NewTarget("localhost", 2121, "/tmp/site", "/www", "http://localhost/www", files)
	files[0] = "changed"

	if got := target.Manifest(); got[0] != "a.html" {
		t.Errorf("NewTarget 应拷贝清单, got %v", got)
	}
	if target.Address() != "localhost:2121" {
		t.Errorf("Address = %q", target.Address())
	}
}

func TestTarget_WithProtocol(t *testing.T) {
	base := config.DefaultTarget()
	sftpTarget := base.WithProtocol(config.ProtocolSFTP)

	if base.Protocol != config.ProtocolFTP {
		t.Errorf("原 Target 不应被修改, got %q", base.Protocol)
	}
	if sftpTarget.Protocol != config.ProtocolSFTP {
		t.Errorf("Protocol = %q, want sftp", sftpTarget.Protocol)
	}
	if !reflect.DeepEqual(base.Manifest(), sftpTarget.Manifest()) {
		t.Error("WithProtocol 应保留清单")
	}
}

func TestTarget_LocalPath(t *testing.T) {
	target := config.DefaultTarget()
	if got, want := target.LocalPath(".htaccess"), filepath.Join("web", ".htaccess"); got != want {
		t.Errorf("LocalPath = %q, want %q", got, want)
	}
}
