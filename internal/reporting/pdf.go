// Package reporting renders a completed scan run into a printable PDF field
// survey: a beacon table plus a decoded HT/VHT/HE capability summary. The
// section-builder method shape (header/stats/table/footer, one method per
// section writing into a shared *gofpdf.Fpdf) is grounded on the teacher's
// reporting.PDFExporter.
package reporting

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/adstriegel/sigcap-buddy/internal/fingerprint"
	"github.com/adstriegel/sigcap-buddy/internal/scan"
)

// SurveyReport is the input to one PDF export: one completed scan-run's
// beacons, plus metadata about when and where it was gathered.
type SurveyReport struct {
	Iface      string
	StartedAt  time.Time
	FinishedAt time.Time
	Cells      []scan.Cell
}

// Exporter renders SurveyReports to PDF bytes. Vendors is optional: when
// set, the PDF gains a vendor-distribution section resolved from each
// cell's BSSID. The Beacon JSON contract itself never carries vendor
// data — it is surfaced only here, in the human-readable report.
type Exporter struct {
	Vendors *fingerprint.Repository
}

// NewExporter returns a ready-to-use Exporter with no vendor lookup.
func NewExporter() *Exporter {
	return &Exporter{}
}

// NewExporterWithVendors returns an Exporter that enriches its output with
// vendor names resolved through repo.
func NewExporterWithVendors(repo *fingerprint.Repository) *Exporter {
	return &Exporter{Vendors: repo}
}

// Export generates a field-survey PDF for one scan run.
func (e *Exporter) Export(report SurveyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	e.addHeader(pdf, report)
	e.addSummary(pdf, report)
	e.addBeaconTable(pdf, report)
	e.addCapabilitySummary(pdf, report)
	e.addVendorDistribution(pdf, report)
	e.addFooter(pdf, report)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generate field survey pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) addHeader(pdf *gofpdf.Fpdf, report SurveyReport) {
	pdf.SetFont("Arial", "B", 22)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 14, "Wi-Fi Field Survey", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("Interface: %s", report.Iface), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Scanned: %s", report.StartedAt.Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func (e *Exporter) addSummary(pdf *gofpdf.Fpdf, report SurveyReport) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 9, "Summary", "", 1, "L", false, 0, "")

	connected := ""
	for _, c := range report.Cells {
		if c.Connected {
			connected = c.BSSID
			break
		}
	}
	if connected == "" {
		connected = "none"
	}

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 6, fmt.Sprintf("Beacons observed: %d", len(report.Cells)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Current association: %s", connected), "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func (e *Exporter) addBeaconTable(pdf *gofpdf.Fpdf, report SurveyReport) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 9, "Observed Beacons", "", 1, "L", false, 0, "")

	if len(report.Cells) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 7, "No beacons observed in this scan", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 9)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(45, 7, "BSSID", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 7, "SSID", "1", 0, "L", true, 0, "")
	pdf.CellFormat(18, 7, "Chan", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Freq", "1", 0, "C", true, 0, "")
	pdf.CellFormat(18, 7, "RSSI", "1", 0, "C", true, 0, "")
	pdf.CellFormat(29, 7, "Linked", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 8)
	for _, c := range report.Cells {
		if c.Connected {
			pdf.SetTextColor(0, 102, 204)
		} else {
			pdf.SetTextColor(60, 60, 60)
		}

		ssid := c.SSID
		if len(ssid) > 28 {
			ssid = ssid[:25] + "..."
		}

		linked := ""
		if c.Connected {
			linked = "yes"
		}

		pdf.CellFormat(45, 6, c.BSSID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, ssid, "1", 0, "L", false, 0, "")
		pdf.CellFormat(18, 6, c.Channel, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, c.Freq, "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, c.RSSI, "1", 0, "C", false, 0, "")
		pdf.CellFormat(29, 6, linked, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)
}

// addCapabilitySummary counts which decoded IE types each beacon carried,
// giving a field surveyor a quick view of the HT/VHT/HE footprint in the
// surveyed area without reading raw hex dumps.
func (e *Exporter) addCapabilitySummary(pdf *gofpdf.Fpdf, report SurveyReport) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 9, "Capability Summary", "", 1, "L", false, 0, "")

	counts := map[string]int{}
	for _, c := range report.Cells {
		for _, el := range c.Extras {
			counts[el.Type]++
		}
	}

	if len(counts) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 7, "No decoded information elements in this scan", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(60, 60, 60)
	for _, label := range []string{"BSS Load", "TPC Report", "HT Capabilities", "HT Operation", "VHT Capabilities", "VHT Operation", "HE Capabilities", "HE Operation", "Vendor Specific", "Cisco CCX1 CKIP", "Unknown"} {
		if n, ok := counts[label]; ok {
			pdf.CellFormat(0, 6, fmt.Sprintf("%s: %d", label, n), "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(6)
}

// addVendorDistribution resolves each cell's BSSID to a vendor name and
// tallies them, giving the report a sense of which hardware vendors are
// present on site. A no-op section when no vendor repository is configured.
func (e *Exporter) addVendorDistribution(pdf *gofpdf.Fpdf, report SurveyReport) {
	if e.Vendors == nil || len(report.Cells) == 0 {
		return
	}

	counts := map[string]int{}
	ctx := context.Background()
	for _, c := range report.Cells {
		mac, err := fingerprint.ParseMAC(c.BSSID)
		if err != nil {
			continue
		}
		vendor, err := e.Vendors.Lookup(ctx, mac)
		if err != nil {
			vendor = "Unknown"
		}
		counts[vendor]++
	}
	if len(counts) == 0 {
		return
	}

	type row struct {
		vendor string
		count  int
	}
	rows := make([]row, 0, len(counts))
	for v, n := range counts {
		rows = append(rows, row{v, n})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].count > rows[j].count })

	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 9, "Vendor Distribution", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(60, 60, 60)
	for _, r := range rows {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: %d", r.vendor, r.count), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func (e *Exporter) addFooter(pdf *gofpdf.Fpdf, report SurveyReport) {
	pdf.SetY(-20)
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(3)

	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated by sigcap-buddy | %s", report.FinishedAt.Format(time.RFC3339)), "", 1, "C", false, 0, "")
}
