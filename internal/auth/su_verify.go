package auth

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
)

var ErrAuthBackend = errors.New("auth backend error")

const suTimeout = 6 * time.Second

// verifyWithSu runs su(1) behind a PTY so it can prompt for the password.
// This covers whatever hash the host's PAM stack supports.
func verifyWithSu(ctx context.Context, username, password string) (bool, error) {
	if strings.TrimSpace(username) == "" {
		return false, ErrInvalidCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, suTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "su", "-s", "/bin/sh", "-c", "true", username)
	f, err := pty.Start(cmd)
	if err != nil {
		return false, fmt.Errorf("%w: start su: %v", ErrAuthBackend, err)
	}
	defer func() { _ = f.Close() }()

	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		answerPrompt(f, password)
	}()

	err = cmd.Wait()
	<-readerDone

	if err == nil {
		return true, nil
	}
	if ctx.Err() != nil {
		return false, fmt.Errorf("%w: su timed out", ErrAuthBackend)
	}
	return false, nil
}

// answerPrompt writes password once the pty shows a password prompt and
// drains output until the pty closes.
func answerPrompt(f interface {
	io.ReadWriter
	SetReadDeadline(time.Time) error
}, password string) {
	prompted := false
	var out bytes.Buffer
	br := bufio.NewReader(f)
	buf := make([]byte, 4096)
	for {
		_ = f.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
		n, rerr := br.Read(buf)
		if n > 0 && !prompted {
			out.Write(buf[:n])
			if strings.Contains(strings.ToLower(out.String()), "password") {
				prompted = true
				_, _ = io.WriteString(f, password+"\n")
			}
		}
		if errors.Is(rerr, os.ErrDeadlineExceeded) {
			continue
		}
		if rerr != nil {
			return
		}
	}
}
