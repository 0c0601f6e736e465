package config_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/hwuu/ftpdeploy/internal/config"
)

func TestPrompter_Prompt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "deployer\n", "deployer"},
		{"crlf", "deployer\r\n", "deployer"},
		{"keeps spaces", "  spaced  \n", "  spaced  "},
		{"empty line", "\n", ""},
		{"no trailing newline", "last", "last"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := &bytes.Buffer{}
			prompter := config.NewPrompter(strings.NewReader(tt.input), output)

			result, err := prompter.Prompt("Enter value: ")
			if err != nil {
				t.Fatalf("Prompt failed: %v", err)
			}
			if result != tt.expected {
				t.Errorf("got %q, want %q", result, tt.expected)
			}
			if output.String() != "Enter value: " {
				t.Errorf("prompt message mismatch: %q", output.String())
			}
		})
	}
}

func TestPrompter_PromptEOF(t *testing.T) {
	prompter := config.NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	_, err := prompter.Prompt("Enter value: ")
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestPrompter_PromptPassword_NonTerminal(t *testing.T) {
	output := &bytes.Buffer{}
	prompter := config.NewPrompter(strings.NewReader("s3cret\n"), output)

	result, err := prompter.PromptPassword("Password: ")
	if err != nil {
		t.Fatalf("PromptPassword failed: %v", err)
	}
	if result != "s3cret" {
		t.Errorf("got %q, want %q", result, "s3cret")
	}
}

func TestPromptCredentials_Order(t *testing.T) {
	output := &bytes.Buffer{}
	prompter := config.NewPrompter(strings.NewReader("alice\npa ss\n"), output)

	cred, err := config.PromptCredentials(prompter).Credentials(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cred.Username != "alice" || cred.Secret != "pa ss" {
		t.Errorf("unexpected credentials: %+v", cred)
	}

	out := output.String()
	userIdx := strings.Index(out, "username")
	passIdx := strings.Index(out, "password")
	if userIdx < 0 || passIdx < 0 || userIdx > passIdx {
		t.Errorf("username 应先于 password 提示\n实际输出:\n%s", out)
	}
}

func TestPromptCredentials_EmptyValuesAccepted(t *testing.T) {
	prompter := config.NewPrompter(strings.NewReader("\n\n"), &bytes.Buffer{})

	cred, err := config.PromptCredentials(prompter).Credentials(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cred.Username != "" || cred.Secret != "" {
		t.Errorf("expected empty credentials, got %+v", cred)
	}
}

func TestPromptCredentials_MissingSecret(t *testing.T) {
	prompter := config.NewPrompter(strings.NewReader("alice\n"), &bytes.Buffer{})

	_, err := config.PromptCredentials(prompter).Credentials(context.Background())
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected wrapped io.EOF, got %v", err)
	}
}

func TestStaticCredentials(t *testing.T) {
	cred, err := config.StaticCredentials("u", "p").Credentials(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cred != (config.Credentials{Username: "u", Secret: "p"}) {
		t.Errorf("unexpected credentials: %+v", cred)
	}
}
