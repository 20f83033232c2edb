// Package cmdrun is the shared helper every observation in sigcap-buddy is
// obtained through: every scan, link query, channel retune, and packet
// capture is a host utility invoked by this package. It provides a
// synchronous run with timeout, an asynchronous spawn returning a handle,
// and cancel/resolve of that handle, all behind a command sanitizer.
package cmdrun

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"syscall"
	"time"
)

// RawOutput is the always-populated view of a command's result.
type RawOutput struct {
	ReturnCode int
	Stdout     string
	Stderr     string
}

// Output is the result of a synchronous or resolved-async command. Text
// mode returns stdout decoded as UTF-8 on success and an empty string on
// any failure; Raw mode always returns the full ReturnCode/Stdout/Stderr
// triple. Both views are always populated so a caller can use either one.
type Output struct {
	text string
	raw  RawOutput
}

// Text returns the text-mode view: stdout on success, "" on failure.
func (o Output) Text() string { return o.text }

// Raw returns the raw-mode view: {ReturnCode, Stdout, Stderr}, always.
func (o Output) Raw() RawOutput { return o.raw }

// Options configures a synchronous Run or an async Resolve.
type Options struct {
	Prefix    string        // logging prefix, e.g. "Scanning Wi-Fi beacons"
	LogResult bool          // log stdout on success
	Timeout   time.Duration // zero means no timeout
	Kill      bool          // Resolve only: SIGINT the process group before collecting output
}

const timeoutStderr = "command timed out"

// Run executes cmd synchronously through "sh -c", honoring Options.Timeout.
// Success is exit code 0 OR empty stderr — many host utilities (iwlist, iw)
// exit non-zero while leaving stderr empty and still produce useful stdout,
// and that stdout must not be discarded. A non-zero exit with anything on
// stderr is a failure: Text() is then empty.
func Run(ctx context.Context, cmd string, opts Options) (Output, error) {
	if err := Sanitize(cmd); err != nil {
		return Output{}, err
	}

	if opts.Prefix == "" {
		opts.Prefix = "Running command"
	}
	log.Printf("%s: %s.", opts.Prefix, cmd)

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, "sh", "-c", cmd)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	runErr := c.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return Output{
			text: "",
			raw:  RawOutput{ReturnCode: 1, Stdout: "", Stderr: timeoutStderr},
		}, nil
	}

	rc := exitCode(c, runErr)
	raw := RawOutput{ReturnCode: rc, Stdout: stdout.String(), Stderr: stderr.String()}

	if rc == 0 || stderr.Len() == 0 {
		if opts.LogResult {
			log.Printf("%s result: %s", opts.Prefix, raw.Stdout)
		}
		return Output{text: raw.Stdout, raw: raw}, nil
	}

	log.Printf("%s error:\n%s", opts.Prefix, raw.Stderr)
	return Output{text: "", raw: raw}, nil
}

func exitCode(c *exec.Cmd, runErr error) int {
	if runErr == nil {
		return 0
	}
	if exitErr, ok := runErr.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return 1
}

// Handle is an opaque reference to a running child process group, owned by
// the caller from spawn until a single Resolve call. Leaking one without
// resolving it is a defect.
type Handle struct {
	cmd    *exec.Cmd
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// RunAsync starts cmd in a new session/process-group (via Setsid), so a
// later Resolve(kill=true) can signal the whole group with one syscall,
// and returns immediately. Pipes stdout/stderr into the Handle's buffers.
func RunAsync(cmd string, prefix string) (*Handle, error) {
	if err := Sanitize(cmd); err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = "Running async command"
	}
	log.Printf("%s: %s.", prefix, cmd)

	c := exec.Command("sh", "-c", cmd)
	c.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	h := &Handle{cmd: c}
	c.Stdout = &h.stdout
	c.Stderr = &h.stderr

	if err := c.Start(); err != nil {
		return nil, fmt.Errorf("cmdrun: start async command: %w", err)
	}
	return h, nil
}

// Resolve collects the Handle's output, optionally signaling the process
// group first. With Kill, an otherwise-nonzero exit is still treated as
// success if stderr is empty — tcpdump prints its capture summary to
// stderr on SIGINT but that is expected, not a failure. On timeout the
// process group is hard-killed and an empty/raw-error Output is returned.
func (h *Handle) Resolve(ctx context.Context, opts Options) (Output, error) {
	if opts.Prefix == "" {
		opts.Prefix = "Resolving async command"
	}

	if opts.Kill {
		h.signalGroup(syscall.SIGINT)
	}

	done := make(chan error, 1)
	go func() { done <- h.cmd.Wait() }()

	var waitErr error
	if opts.Timeout > 0 {
		select {
		case waitErr = <-done:
		case <-time.After(opts.Timeout):
			h.signalGroup(syscall.SIGKILL)
			<-done
			log.Printf("%s error:\n%s", opts.Prefix, timeoutStderr)
			return Output{
				text: "",
				raw:  RawOutput{ReturnCode: 1, Stdout: "", Stderr: timeoutStderr},
			}, nil
		}
	} else {
		waitErr = <-done
	}

	rc := exitCode(h.cmd, waitErr)
	raw := RawOutput{ReturnCode: rc, Stdout: h.stdout.String(), Stderr: h.stderr.String()}

	if rc == 0 || raw.Stderr == "" {
		if opts.LogResult {
			log.Printf("%s result: %s", opts.Prefix, raw.Stdout)
		}
		return Output{text: raw.Stdout, raw: raw}, nil
	}

	log.Printf("%s error:\n%s", opts.Prefix, raw.Stderr)
	return Output{text: "", raw: raw}, nil
}

func (h *Handle) signalGroup(sig syscall.Signal) {
	if h.cmd.Process == nil {
		return
	}
	pgid, err := syscall.Getpgid(h.cmd.Process.Pid)
	if err != nil {
		return
	}
	_ = syscall.Kill(-pgid, sig)
}
