package contract

import "fmt"

// Data carries everything the rendered agreement shows.
type Data struct {
	QueueNumber    int64
	EmployeeName   string
	Department     string
	ApprovedAmount int64
	TermMonths     int
	Organization   string
}

// MonthlyInstallment is the flat repayment deducted from salary each month.
func (d Data) MonthlyInstallment() int64 {
	if d.TermMonths <= 0 {
		return 0
	}
	return d.ApprovedAmount / int64(d.TermMonths)
}

// FileName is the canonical name of the agreement document; the queue
// number doubles as the contract number.
func (d Data) FileName() string {
	return fmt.Sprintf("loan_contract_%d.pdf", d.QueueNumber)
}

// Renderer produces the agreement document and returns the path it was
// written to.
type Renderer interface {
	Render(data Data) (string, error)
}
