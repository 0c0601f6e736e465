// Package deploy 按固定清单将静态站点文件上传到远程服务器。
// 流程是线性的：读取凭证 → 连接 → 登录 → 确保远程目录 → 逐个上传 → 断开。
package deploy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/hwuu/ftpdeploy/internal/config"
	"github.com/hwuu/ftpdeploy/internal/logging"
	"github.com/hwuu/ftpdeploy/internal/remote"
)

const (
	BannerWidth = 50
	ProjectName = "CyberEx Web3 App"
)

// Deployer 部署编排器，通过依赖注入支持测试
type Deployer struct {
	Target      config.Target
	Credentials config.CredentialProvider
	Dial        remote.Dialer
	Output      io.Writer
}

// New 创建 Deployer；target 按值传入，之后不再变化
func New(target config.Target, creds config.CredentialProvider, dial remote.Dialer, output io.Writer) *Deployer {
	return &Deployer{
		Target:      target,
		Credentials: creds,
		Dial:        dial,
		Output:      output,
	}
}

func (d *Deployer) printf(format string, args ...interface{}) {
	fmt.Fprintf(d.Output, format, args...)
}

// Run 执行一次完整部署。任何失败都在这里统一输出错误和手动上传说明，
// 结果只通过返回值区分，不会 panic 也不会返回 error。
func (d *Deployer) Run(ctx context.Context) *Result {
	d.printBanner()

	result := d.run(ctx)
	if result.Failed() {
		logging.Errorf("deploy %s: %v", result.Outcome, result.Err)
		d.printFailure(result.Err)
		return result
	}

	logging.Debugf("deploy finished: %s (%d uploaded, %d skipped)",
		result.Outcome, len(result.Uploaded()), len(result.Skipped()))
	return result
}

func (d *Deployer) run(ctx context.Context) *Result {
	result := &Result{}

	cred, err := d.Credentials.Credentials(ctx)
	if err != nil {
		return result.fail(OutcomeCredentialsFailed, "", fmt.Errorf("%w: %w", ErrCredentials, err))
	}

	d.printf("\n[*] Connecting to %s...\n", d.Target.Host)
	logging.Debugf("dial %s (%s)", d.Target.Address(), d.Target.Protocol)
	session, err := d.Dial(ctx, d.Target.Address())
	if err != nil {
		return result.fail(OutcomeConnectFailed, "", fmt.Errorf("%w: %w", ErrConnect, err))
	}
	// 失败路径上不发送 Quit，连接随进程退出释放
	if err := session.Login(cred.Username, cred.Secret); err != nil {
		return result.fail(OutcomeAuthFailed, "", fmt.Errorf("%w: %w", ErrAuth, err))
	}
	d.printf("[+] Connected!\n")

	if err := d.ensureRemoteDir(session); err != nil {
		return result.fail(OutcomeDirectorySetupFailed, "", fmt.Errorf("%w: %w", ErrDirectorySetup, err))
	}

	d.printf("\n[*] Uploading files...\n")
	for _, name := range d.Target.Manifest() {
		localPath := d.Target.LocalPath(name)
		if _, err := os.Stat(localPath); errors.Is(err, fs.ErrNotExist) {
			d.printf("  ⚠ %s not found!\n", name)
			result.record(name, FileSkippedMissing)
			continue
		}
		if err := d.upload(session, name, localPath); err != nil {
			return result.fail(OutcomeTransferFailed, name, fmt.Errorf("%w: %s: %w", ErrTransfer, name, err))
		}
		result.record(name, FileUploaded)
	}

	if err := session.Quit(); err != nil {
		return result.fail(OutcomeDisconnectFailed, "", fmt.Errorf("%w: %w", ErrDisconnect, err))
	}
	d.printf("\n[+] Upload complete!\n")
	d.printf("\nTest: %s\n", d.Target.PublicURL)

	result.Outcome = OutcomeSuccess
	return result
}

// ensureRemoteDir 进入远程目录；任何原因的失败（不只是目录不存在）都会尝试创建后再进入
func (d *Deployer) ensureRemoteDir(session remote.Session) error {
	dir := d.Target.RemoteDir
	err := session.ChangeDir(dir)
	if err == nil {
		return nil
	}
	logging.Warnf("change dir %s failed, creating it: %v", dir, err)

	d.printf("[*] Creating %s...\n", dir)
	if err := session.MakeDir(dir); err != nil {
		return err
	}
	return session.ChangeDir(dir)
}

func (d *Deployer) upload(session remote.Session, name, localPath string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	d.printf("  → %s uploading...\n", name)
	if err := session.Store(name, f); err != nil {
		return err
	}
	d.printf("  ✓ %s uploaded!\n", name)
	return nil
}

func (d *Deployer) printBanner() {
	line := strings.Repeat("=", BannerWidth)
	d.printf("%s\n", line)
	d.printf("%s - %s Deployment\n", ProjectName, strings.ToUpper(d.Target.Protocol))
	d.printf("%s\n\n", line)
}

// printFailure 输出错误和手动上传说明（FileZilla / cPanel）
func (d *Deployer) printFailure(err error) {
	d.printf("\n[!] Error: %v\n", err)
	d.printf("\nManual upload:\n")
	d.printf("1. Use FileZilla or the cPanel File Manager\n")
	d.printf("2. Upload the files in %s to %s\n", d.Target.LocalDir, d.Target.RemoteDir)
}
