// Package pdf renders endorsement certificates for the coverage ledger.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CertificateData carries everything the endorsement certificate shows.
type CertificateData struct {
	Policy       domain.Policy
	Endorsement  domain.Endorsement
	Action       domain.CoverageAction
	Items        []domain.CoverageSuccess
	TotalAmount  decimal.Decimal
	BalanceAfter decimal.Decimal
}

// Renderer writes endorsement certificate PDFs beneath a base directory.
type Renderer struct {
	baseDir string
}

// NewRenderer creates a Renderer rooted at baseDir.
func NewRenderer(baseDir string) *Renderer {
	return &Renderer{baseDir: baseDir}
}

// RenderEndorsementCertificate renders the certificate and returns the file
// path and size. Files are grouped per policy under the base directory.
func (r *Renderer) RenderEndorsementCertificate(data CertificateData) (string, int64, error) {
	dir := filepath.Join(r.baseDir, "endorsements", data.Policy.PolicyID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create certificate directory: %w", err)
	}
	path := filepath.Join(dir, data.Endorsement.EndorsementNumber+".pdf")

	title := "Endorsement Certificate - Addition of Insured Members"
	amountLabel := "Premium Charged"
	if data.Action == domain.CoverageRemove {
		title = "Endorsement Certificate - Removal of Insured Members"
		amountLabel = "Premium Refunded"
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	field := func(label, value string) {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}
	field("Endorsement Number:", data.Endorsement.EndorsementNumber)
	field("Policy Number:", data.Policy.PolicyNumber)
	field("Insurance Provider:", data.Policy.Provider)
	field("Insurance Type:", string(data.Policy.InsuranceType))
	field("Effective Date:", data.Endorsement.EffectiveDate.Format("02 Jan 2006"))
	field("Policy Period:", data.Policy.StartDate.Format("02 Jan 2006")+" to "+data.Policy.EndDate.Format("02 Jan 2006"))
	doc.Ln(6)

	// Member table
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	doc.CellFormat(12, 8, "#", "1", 0, "C", true, 0, "")
	doc.CellFormat(88, 8, "Member Name", "1", 0, "L", true, 0, "")
	doc.CellFormat(45, 8, "Sum Insured", "1", 0, "R", true, 0, "")
	doc.CellFormat(45, 8, amountLabel, "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for i, item := range data.Items {
		sumInsured := ""
		if item.Breakdown != nil {
			sumInsured = item.Breakdown.SumInsured.StringFixed(2)
		}
		doc.CellFormat(12, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		doc.CellFormat(88, 7, item.StudentName, "1", 0, "L", false, 0, "")
		doc.CellFormat(45, 7, sumInsured, "1", 0, "R", false, 0, "")
		doc.CellFormat(45, 7, item.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(145, 8, "Total "+amountLabel, "1", 0, "R", false, 0, "")
	doc.CellFormat(45, 8, data.TotalAmount.StringFixed(2), "1", 1, "R", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, "Remaining Sum Insured: "+data.BalanceAfter.StringFixed(2), "", 1, "L", false, 0, "")
	if data.Endorsement.Description != "" {
		doc.Ln(2)
		doc.SetFont("Helvetica", "I", 10)
		doc.MultiCell(0, 6, data.Endorsement.Description, "", "L", false)
	}

	doc.Ln(10)
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(120, 120, 120)
	doc.CellFormat(0, 6, "This certificate is system generated and forms part of the policy referenced above.", "", 1, "L", false, 0, "")

	if err := doc.OutputFileAndClose(path); err != nil {
		return "", 0, fmt.Errorf("failed to write certificate %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to stat certificate %s: %w", path, err)
	}
	return path, info.Size(), nil
}
