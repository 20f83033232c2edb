package cmdrun

import (
	"context"
	"testing"
	"time"
)

func TestRun_TextMode_Success(t *testing.T) {
	out, err := Run(context.Background(), "echo hello", Options{Prefix: "test"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := out.Text(); got != "hello\n" {
		t.Errorf("Text() = %q, want %q", got, "hello\n")
	}
}

func TestRun_NonZeroExitWithStderr_EmptyText(t *testing.T) {
	// ls on a missing path writes to stderr and exits nonzero without any
	// shell metacharacter that Sanitize would reject.
	out, err := Run(context.Background(), "ls /nonexistent-sigcap-buddy-path", Options{Prefix: "test"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := out.Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
	if raw := out.Raw(); raw.ReturnCode == 0 {
		t.Errorf("Raw().ReturnCode = 0, want nonzero")
	}
}

func TestRun_NonZeroExitNoStderr_StillSucceeds(t *testing.T) {
	// Many host utilities (iwlist, iw) exit nonzero with warnings but no
	// stderr content and still produce useful stdout; that stdout must
	// survive. The two commands are newline-separated because Sanitize
	// rejects ";".
	out, err := Run(context.Background(), "echo data\nexit 2", Options{Prefix: "test"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := out.Text(); got != "data\n" {
		t.Errorf("Text() = %q, want %q", got, "data\n")
	}
}

func TestRun_Timeout(t *testing.T) {
	out, err := Run(context.Background(), "sleep 5", Options{Prefix: "test", Timeout: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	raw := out.Raw()
	if raw.ReturnCode != 1 || raw.Stderr != timeoutStderr {
		t.Errorf("Raw() = %+v, want timeout", raw)
	}
}

func TestRun_UnsafeCommandRejected(t *testing.T) {
	_, err := Run(context.Background(), "echo hi ; rm -rf /", Options{})
	if err != ErrUnsafeCommand {
		t.Fatalf("Run error = %v, want ErrUnsafeCommand", err)
	}
}

func TestRunAsync_ResolveWithoutKill(t *testing.T) {
	h, err := RunAsync("echo async-hello", "test")
	if err != nil {
		t.Fatalf("RunAsync returned error: %v", err)
	}
	out, err := h.Resolve(context.Background(), Options{Prefix: "test"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got := out.Text(); got != "async-hello\n" {
		t.Errorf("Text() = %q, want %q", got, "async-hello\n")
	}
}

func TestRunAsync_ResolveWithKill(t *testing.T) {
	h, err := RunAsync("sleep 30", "test")
	if err != nil {
		t.Fatalf("RunAsync returned error: %v", err)
	}
	out, err := h.Resolve(context.Background(), Options{Prefix: "test", Kill: true, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	// sleep produces no stderr on SIGINT, so a nonzero/signal exit still
	// counts as success per the kill=true clause.
	if raw := out.Raw(); raw.Stderr != "" {
		t.Errorf("Raw().Stderr = %q, want empty", raw.Stderr)
	}
}
