package eligibility

import (
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	apperrors "github.com/dagimg/loan-management/internal"
)

func TestEligibility(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Eligibility Module Suite")
}

func fixedYear(year int) Clock {
	return func() time.Time {
		return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
}

func errCode(err error) apperrors.ErrorCode {
	if appErr, ok := apperrors.IsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

var _ = ginkgo.Describe("Ceiling and Remaining", func() {
	ginkgo.It("should multiply gross salary by the policy multiplier", func() {
		gomega.Expect(Ceiling(15000)).To(gomega.Equal(int64(90000)))
		gomega.Expect(Ceiling(1)).To(gomega.Equal(int64(6)))
	})

	ginkgo.It("should subtract approved totals from the ceiling", func() {
		gomega.Expect(Remaining(15000, 0)).To(gomega.Equal(int64(90000)))
		gomega.Expect(Remaining(15000, 50000)).To(gomega.Equal(int64(40000)))
		gomega.Expect(Remaining(15000, 90000)).To(gomega.Equal(int64(0)))
	})

	ginkgo.It("should never go negative", func() {
		gomega.Expect(Remaining(15000, 95000)).To(gomega.Equal(int64(0)))
	})

	ginkgo.It("should build a consistent summary", func() {
		s := Summarize(15000, 30000)

		gomega.Expect(s.Ceiling).To(gomega.Equal(int64(90000)))
		gomega.Expect(s.TotalApproved).To(gomega.Equal(int64(30000)))
		gomega.Expect(s.Remaining).To(gomega.Equal(int64(60000)))
	})
})

var _ = ginkgo.Describe("Checker", func() {
	ginkgo.Describe("CheckRetirementWindow", func() {
		ginkgo.It("should pass with exactly the minimum years left", func() {
			checker := NewChecker(fixedYear(2026))

			err := checker.CheckRetirementWindow(2026 + MinYearsToRetirement)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should fail with fewer than the minimum years left", func() {
			checker := NewChecker(fixedYear(2026))

			err := checker.CheckRetirementWindow(2028)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(errCode(err)).To(gomega.Equal(apperrors.ErrCodeRetirementWindow))
		})

		ginkgo.It("should fail for an already retired employee", func() {
			checker := NewChecker(fixedYear(2026))

			err := checker.CheckRetirementWindow(2020)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(errCode(err)).To(gomega.Equal(apperrors.ErrCodeRetirementWindow))
		})
	})

	ginkgo.Describe("CheckAmount", func() {
		var checker *Checker

		ginkgo.BeforeEach(func() {
			checker = NewChecker(nil)
		})

		ginkgo.It("should allow an amount up to the full remaining headroom", func() {
			gomega.Expect(checker.CheckAmount(15000, 50000, 40000)).To(gomega.Succeed())
		})

		ginkgo.It("should reject one unit above the remaining headroom", func() {
			err := checker.CheckAmount(15000, 50000, 40001)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(errCode(err)).To(gomega.Equal(apperrors.ErrCodeEligibilityExceeded))
		})

		ginkgo.It("should report exhausted eligibility distinctly", func() {
			err := checker.CheckAmount(15000, 90000, 1)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(errCode(err)).To(gomega.Equal(apperrors.ErrCodeEligibilityExhausted))
		})
	})
})
