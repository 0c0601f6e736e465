package deploy

import "errors"

// 每种失败结果对应一个哨兵错误，Result.Err 通过 %w 包装，调用方用 errors.Is 判断
var (
	ErrCredentials    = errors.New("failed to read credentials")
	ErrConnect        = errors.New("connection failed")
	ErrAuth           = errors.New("authentication failed")
	ErrDirectorySetup = errors.New("remote directory setup failed")
	ErrTransfer       = errors.New("transfer failed")
	ErrDisconnect     = errors.New("disconnect failed")
)

// Outcome 一次部署的最终结果
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeCredentialsFailed
	OutcomeConnectFailed
	OutcomeAuthFailed
	OutcomeDirectorySetupFailed
	OutcomeTransferFailed
	OutcomeDisconnectFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeCredentialsFailed:
		return "credentials-failed"
	case OutcomeConnectFailed:
		return "connect-failed"
	case OutcomeAuthFailed:
		return "auth-failed"
	case OutcomeDirectorySetupFailed:
		return "directory-setup-failed"
	case OutcomeTransferFailed:
		return "transfer-failed"
	case OutcomeDisconnectFailed:
		return "disconnect-failed"
	default:
		return "unknown"
	}
}

// FileStatus 单个清单文件的处理结果
type FileStatus int

const (
	FileUploaded FileStatus = iota
	FileSkippedMissing
)

func (s FileStatus) String() string {
	switch s {
	case FileUploaded:
		return "uploaded"
	case FileSkippedMissing:
		return "skipped-missing-locally"
	default:
		return "unknown"
	}
}

// FileResult 清单中已处理文件的记录，失败中断后未处理的文件不会出现
type FileResult struct {
	Name   string
	Status FileStatus
}

// Result 部署结果。File 仅在 OutcomeTransferFailed 时为出错的文件名
type Result struct {
	Outcome Outcome
	File    string
	Err     error
	Files   []FileResult
}

// Failed 除 OutcomeSuccess 外都视为失败
func (r *Result) Failed() bool {
	return r.Outcome != OutcomeSuccess
}

// Uploaded 返回已上传的文件名（按清单顺序）
func (r *Result) Uploaded() []string {
	return r.filter(FileUploaded)
}

// Skipped 返回本地不存在而跳过的文件名
func (r *Result) Skipped() []string {
	return r.filter(FileSkippedMissing)
}

func (r *Result) filter(status FileStatus) []string {
	var names []string
	for _, f := range r.Files {
		if f.Status == status {
			names = append(names, f.Name)
		}
	}
	return names
}

func (r *Result) record(name string, status FileStatus) {
	r.Files = append(r.Files, FileResult{Name: name, Status: status})
}

func (r *Result) fail(outcome Outcome, file string, err error) *Result {
	r.Outcome = outcome
	r.File = file
	r.Err = err
	return r
}
