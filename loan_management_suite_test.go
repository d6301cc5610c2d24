package main_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLoanManagement(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "LoanManagement Suite")
}
