package monitor

import (
	"testing"

	"github.com/adstriegel/sigcap-buddy/internal/scan"
)

func TestSelectChannels_All(t *testing.T) {
	chs := SelectChannels("all", nil)
	if len(chs) == 0 {
		t.Fatal("SelectChannels(all) returned no channels")
	}
}

func TestSelectChannels_Band(t *testing.T) {
	chs := SelectChannels("5ghz", nil)
	if len(chs) == 0 {
		t.Fatal("SelectChannels(5ghz) returned no channels")
	}
	for _, ch := range chs {
		if ch.Band != "5ghz" {
			t.Errorf("SelectChannels(5ghz) returned band %q", ch.Band)
		}
	}
}

func TestSelectChannels_Scan(t *testing.T) {
	lastScan := []scan.Cell{
		{Freq: "2.412 GHz"},
		{Freq: "5.745 GHz"},
		{Freq: "2.412 GHz"}, // duplicate frequency, should not duplicate the channel
	}
	chs := SelectChannels("scan", lastScan)

	if len(chs) != 2 {
		t.Fatalf("SelectChannels(scan) returned %d channels, want 2", len(chs))
	}
	// Table order preserved: the 5ghz band section precedes the 2.4ghz
	// section in the channel-plan table, so 5.745 GHz (ch 149) sorts
	// before 2.412 GHz (ch 1) regardless of lastScan's own ordering.
	if chs[0].PrimaryChannel != 149 || chs[0].Band != "5ghz" {
		t.Errorf("chs[0] = %+v, want primary channel 149 on 5ghz", chs[0])
	}
	if chs[1].PrimaryChannel != 1 || chs[1].Band != "2.4ghz" {
		t.Errorf("chs[1] = %+v, want primary channel 1 on 2.4ghz", chs[1])
	}
}

func TestSelectChannels_ScanWithEmptyLastScan(t *testing.T) {
	if chs := SelectChannels("scan", nil); chs != nil {
		t.Errorf("SelectChannels(scan, nil) = %v, want nil", chs)
	}
}

func TestSelectChannels_UnknownMode(t *testing.T) {
	if chs := SelectChannels("bogus", nil); chs != nil {
		t.Errorf("SelectChannels(bogus) = %v, want nil", chs)
	}
}
