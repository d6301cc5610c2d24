package contract

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer writes loan agreements as PDF files under a storage
// directory.
type PDFRenderer struct {
	storageDir string
	logger     *slog.Logger
}

func NewPDFRenderer(storageDir string, logger *slog.Logger) *PDFRenderer {
	return &PDFRenderer{
		storageDir: storageDir,
		logger:     logger,
	}
}

func (r *PDFRenderer) Render(data Data) (string, error) {
	if err := os.MkdirAll(r.storageDir, 0o755); err != nil {
		return "", fmt.Errorf("create contract storage dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Loan Agreement No. %d", data.QueueNumber), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, data.Organization, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, "Salary Advance Loan Agreement", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Contract Number: %d", data.QueueNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Employee", data.EmployeeName},
		{"Department", data.Department},
		{"Approved Amount", fmt.Sprintf("%d", data.ApprovedAmount)},
		{"Repayment Term", fmt.Sprintf("%d months", data.TermMonths)},
		{"Monthly Installment", fmt.Sprintf("%d", data.MonthlyInstallment())},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(60, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(120, 8, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5,
		"The employee agrees to repay the approved amount through equal monthly "+
			"salary deductions over the stated term. The advance is interest free "+
			"and becomes due in full upon separation from the organization.",
		"", "L", false)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(90, 7, "Employee Signature: ______________", "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, "HR Manager Signature: ______________", "", 1, "L", false, 0, "")

	path := filepath.Join(r.storageDir, data.FileName())
	if err := pdf.OutputFileAndClose(path); err != nil {
		r.logger.Error("failed to write contract pdf", "error", err, "path", path)
		return "", fmt.Errorf("write contract pdf: %w", err)
	}

	r.logger.Info("contract rendered", "path", path, "queue_number", data.QueueNumber)
	return path, nil
}
