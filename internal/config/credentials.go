package config

import (
	"context"
	"fmt"
)

// Credentials FTP 登录凭证，只保存在内存中
type Credentials struct {
	Username string
	Secret   string
}

// CredentialProvider 获取凭证的能力，测试中可注入固定值
type CredentialProvider interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// CredentialFunc 将普通函数适配为 CredentialProvider
type CredentialFunc func(ctx context.Context) (Credentials, error)

func (f CredentialFunc) Credentials(ctx context.Context) (Credentials, error) {
	return f(ctx)
}

// StaticCredentials 始终返回给定的凭证
func StaticCredentials(username, secret string) CredentialProvider {
	return CredentialFunc(func(context.Context) (Credentials, error) {
		return Credentials{Username: username, Secret: secret}, nil
	})
}

// PromptCredentials 通过 Prompter 交互式读取：先用户名，后密码。
// 不做任何校验，空字符串原样返回。
func PromptCredentials(p *Prompter) CredentialProvider {
	return CredentialFunc(func(ctx context.Context) (Credentials, error) {
		if err := ctx.Err(); err != nil {
			return Credentials{}, err
		}
		username, err := p.Prompt("FTP username: ")
		if err != nil {
			return Credentials{}, fmt.Errorf("failed to read username: %w", err)
		}
		secret, err := p.PromptPassword("FTP password: ")
		if err != nil {
			return Credentials{}, fmt.Errorf("failed to read password: %w", err)
		}
		return Credentials{Username: username, Secret: secret}, nil
	})
}
