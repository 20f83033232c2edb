package cmdrun

import (
	"errors"
	"regexp"
	"strings"
)

// ErrUnsafeCommand is returned by Sanitize, Run, and RunAsync when a
// templated command still contains shell metacharacters after the
// allow-listed sequences have been stripped. It is the one hard error this
// package surfaces to callers — everything else degrades to an empty or
// partial Output.
var ErrUnsafeCommand = errors.New("cmdrun: unsafe command")

// allowListed are multi-character sequences stripped before the
// metacharacter check runs. Each is a known-safe fragment this agent's own
// callers template in (the link-sampling loop in package scan, the update
// script invocation), not something arbitrary operator input can produce.
var allowListed = []string{
	"sleep 1;",
	"while true; do",
	"date -Ins;",
	"; done",
	"git fetch &&",
}

// wgetPipePrefix recognizes the one "wget <url> | " pipeline this agent
// templates for its own update script, so piping isn't rejected there.
var wgetPipePrefix = regexp.MustCompile(`^wget\s+\S+\s*\|\s*`)

// unsafeSymbols are checked for presence after allow-list stripping. They
// appear in practice bracketed by spaces (e.g. " ; ", " | "), but the check
// itself is presence-based, matching the original implementation's
// behavior exactly rather than a stricter space-anchored regex.
var unsafeSymbols = []string{";", "|", ">", "<", "&"}

// Sanitize is a belt-and-braces guard, not a security boundary: commands
// are templated with operator-controlled strings (SSIDs, interface names),
// and this simply rejects the shell metacharacters that would let such a
// string break out of its template.
func Sanitize(cmd string) error {
	sanitized := wgetPipePrefix.ReplaceAllString(cmd, "")
	for _, seq := range allowListed {
		sanitized = strings.ReplaceAll(sanitized, seq, "")
	}

	for _, sym := range unsafeSymbols {
		if strings.Contains(sanitized, sym) {
			return ErrUnsafeCommand
		}
	}
	return nil
}
