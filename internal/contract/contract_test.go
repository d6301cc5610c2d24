package contract

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestContract(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Contract Module Suite")
}

var _ = ginkgo.Describe("Data", func() {
	ginkgo.It("should divide the approved amount evenly across the term", func() {
		d := Data{ApprovedAmount: 36000, TermMonths: 36}

		gomega.Expect(d.MonthlyInstallment()).To(gomega.Equal(int64(1000)))
	})

	ginkgo.It("should guard against a zero term", func() {
		d := Data{ApprovedAmount: 36000}

		gomega.Expect(d.MonthlyInstallment()).To(gomega.Equal(int64(0)))
	})

	ginkgo.It("should name the file after the queue number", func() {
		d := Data{QueueNumber: 42}

		gomega.Expect(d.FileName()).To(gomega.Equal("loan_contract_42.pdf"))
	})
})

var _ = ginkgo.Describe("PDFRenderer", func() {
	var (
		dir      string
		renderer *PDFRenderer
	)

	ginkgo.BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "contracts")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		renderer = NewPDFRenderer(dir, slog.Default())
	})

	ginkgo.AfterEach(func() {
		os.RemoveAll(dir)
	})

	ginkgo.It("should write the agreement under the storage directory", func() {
		path, err := renderer.Render(Data{
			QueueNumber:    7,
			EmployeeName:   "Abebe Kebede",
			Department:     "Finance",
			ApprovedAmount: 36000,
			TermMonths:     36,
			Organization:   "Example Organization",
		})

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(path).To(gomega.Equal(filepath.Join(dir, "loan_contract_7.pdf")))

		info, err := os.Stat(path)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(info.Size()).To(gomega.BeNumerically(">", 0))
	})

	ginkgo.It("should fail when the storage directory cannot be created", func() {
		blocked := filepath.Join(dir, "blocked")
		gomega.Expect(os.WriteFile(blocked, []byte("x"), 0o644)).To(gomega.Succeed())

		bad := NewPDFRenderer(filepath.Join(blocked, "nested"), slog.Default())
		_, err := bad.Render(Data{QueueNumber: 1, TermMonths: 36})

		gomega.Expect(err).To(gomega.HaveOccurred())
	})
})
