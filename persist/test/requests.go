// Package test holds test cases every types.RequestSink implementation should pass.
package test

import (
	"context"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/supremind/portalperm/types"
)

// Received returns requests the remote side of a sink accepted, in arrival order
type Received func() []types.PermissionRequest

func pending(id, perm string, duration *int64) types.PermissionRequest {
	return types.PermissionRequest{
		ID:          id,
		Permission:  perm,
		Reason:      "needed for " + perm,
		Duration:    duration,
		RequestedBy: "u-tenant",
		RequestedAt: 1709283600000,
		Status:      types.RequestPending,
	}
}

// RequestSinkTestCases describes a sink created fresh by setup for every case
func RequestSinkTestCases(name string, setup func() (types.RequestSink, Received)) bool {
	return Describe(name, func() {
		var (
			sink     types.RequestSink
			received Received
		)

		BeforeEach(func() {
			sink, received = setup()
		})

		It("delivers a request unchanged", func() {
			hour := int64(3600000)
			req := pending("r-1", "financials.view", &hour)
			Expect(sink.Submit(context.Background(), req)).To(Succeed())
			Expect(received()).To(Equal([]types.PermissionRequest{req}))
		})

		It("delivers requests in order", func() {
			reqs := []types.PermissionRequest{
				pending("r-1", "financials.view", nil),
				pending("r-2", "reports.export", nil),
				pending("r-3", "leases.approve", nil),
			}
			for _, req := range reqs {
				Expect(sink.Submit(context.Background(), req)).To(Succeed())
			}
			Expect(received()).To(Equal(reqs))
		})

		It("gives up on a canceled context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			Expect(sink.Submit(ctx, pending("r-1", "financials.view", nil))).NotTo(Succeed())
			Expect(received()).To(BeEmpty())
		})
	})
}
