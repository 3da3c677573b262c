package report_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mycodecay/internal/decay"
	"github.com/san-kum/mycodecay/internal/report"
	"github.com/san-kum/mycodecay/internal/strain"
)

var _ = Describe("Rows", func() {
	var run *decay.Run

	BeforeEach(func() {
		p, ok := strain.Lookup(strain.AspergillusNiger)
		Expect(ok).To(BeTrue())

		var err error
		run, err = decay.Simulate(p, 180, 1000)
		Expect(err).NotTo(HaveOccurred())
	})

	It("samples every thirty days up to the last reachable day", func() {
		rows := report.Rows(run)
		Expect(rows).To(HaveLen(7))

		days := make([]string, 0, len(rows))
		for _, row := range rows {
			days = append(days, row[0])
		}
		Expect(days).To(Equal([]string{"0", "30", "60", "90", "120", "150", "180"}))
	})

	It("starts from the untouched initial mass", func() {
		Expect(report.Rows(run)[0]).To(Equal([]string{"0", "1000.00", "0.00", "0.400"}))
	})

	It("repeats the run-level risk score on every row", func() {
		for _, row := range report.Rows(run) {
			Expect(row[3]).To(Equal("0.400"))
		}
	})

	It("reports the nearly eliminated mass on the final day", func() {
		last := report.Rows(run)[6]
		Expect(last[1]).To(Equal("0.30"))
		Expect(last[2]).To(Equal("99.97"))
	})

	Context("when the run is shorter than one stride", func() {
		It("emits only day zero", func() {
			p, _ := strain.Lookup(strain.PenicilliumChrysogenum)
			short, err := decay.Simulate(p, 29, 500)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Rows(short)).To(HaveLen(1))
		})
	})
})
