package monitor

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/gopacket/pcapgo"

	"github.com/adstriegel/sigcap-buddy/internal/cmdrun"
)

// archive keeps only the capture files that still exist and are valid pcap
// containers, zips them into a UTC-timestamped archive, and deletes the
// sources — but only once the zip command itself reports success.
// Archival failure is logged and the capture files are left in place for
// a future retry, matching the ordering of the source this was ported
// from: deletion only ever happens inside the "files exist" branch, after
// the zip call returns successfully.
func archive(ctx context.Context, files []string) (string, error) {
	existing := existingValidCaptures(files)
	if len(existing) == 0 {
		log.Print("monitor: no completed captures, skip zipping")
		return "", nil
	}

	archivePath := fmt.Sprintf("logs/pcap-log/%s.zip", time.Now().UTC().Format(time.RFC3339))
	out, err := cmdrun.Run(ctx, fmt.Sprintf("zip %s %s", archivePath, strings.Join(existing, " ")), cmdrun.Options{
		Prefix: "Zipping all capture files.",
	})
	if err != nil {
		return "", err
	}
	if out.Raw().ReturnCode != 0 {
		log.Printf("monitor: archive failed, leaving capture files in place: %s", out.Raw().Stderr)
		return "", nil
	}

	for _, f := range existing {
		if err := os.Remove(f); err != nil {
			log.Printf("monitor: failed to remove %s after archiving: %v", f, err)
		}
	}
	return archivePath, nil
}

// existingValidCaptures filters files down to those that exist on disk and
// parse as valid pcap containers. This is a container-format check only —
// pcapgo.NewReader reads the global pcap header, nothing inside it; this
// agent never decodes 802.11 frames out of a capture, by design.
func existingValidCaptures(files []string) []string {
	var out []string
	for _, f := range files {
		fh, err := os.Open(f)
		if err != nil {
			continue
		}
		_, err = pcapgo.NewReader(fh)
		fh.Close()
		if err != nil {
			log.Printf("monitor: %s failed pcap container validation: %v", f, err)
			continue
		}
		out = append(out, f)
	}
	return out
}
