package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/hwuu/ftpdeploy/internal/config"
	"github.com/hwuu/ftpdeploy/internal/deploy"
	"github.com/hwuu/ftpdeploy/internal/logging"
	"github.com/hwuu/ftpdeploy/internal/remote"
)

// 构建时通过 ldflags 注入
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// options 命令的输入输出和传输实现，测试时替换
type options struct {
	In   io.Reader
	Out  io.Writer
	Dial remote.Dialer // 为空时按 Target.Protocol 选择
}

func newRootCmd(opts options) *cobra.Command {
	var debug bool

	deployCmd := newDeployCmd(opts)

	rootCmd := &cobra.Command{
		Use:   "ftpdeploy",
		Short: "Upload the CyberEx Web3 App to cyberex.com.tr",
		Long: "ftpdeploy uploads index.html, style.css, script.js and .htaccess from ./web\n" +
			"to /public_html/web3app on cyberex.com.tr over FTP.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetDebug(debug)
		},
		RunE: deployCmd.RunE,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print transfer commands to stderr")

	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newDeployCmd(opts options) *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Upload the site files (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := config.DefaultTarget()

			dial := opts.Dial
			if dial == nil {
				var err error
				dial, err = remote.DialerFor(target.Protocol)
				if err != nil {
					return err
				}
			}

			prompter := config.NewPrompter(opts.In, opts.Out)
			d := deploy.New(target, config.PromptCredentials(prompter), dial, opts.Out)

			// 部署失败已在输出中说明，不影响退出码
			d.Run(cmd.Context())
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ftpdeploy %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
			fmt.Fprintf(out, "  go:     %s\n", runtime.Version())
		},
	}
}

func main() {
	if err := newRootCmd(options{In: os.Stdin, Out: os.Stdout}).Execute(); err != nil {
		os.Exit(1)
	}
}
