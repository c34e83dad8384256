package portalperm_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/supremind/portalperm"
	"github.com/supremind/portalperm/internal/testdata"
	. "github.com/supremind/portalperm/types"
)

var _ = Describe("preset policies", func() {
	DescribeTable("super role",
		func(identity *Identity, perm string, allowed bool) {
			Expect(SuperRole(SystemAdmin)(identity, ParsePermission(perm))).To(Equal(allowed))
		},
		Entry("super role, known permission", testdata.Admin, "users.manage", true),
		Entry("super role, unknown permission", testdata.Admin, "galaxies.conquer", true),
		Entry("super role, malformed permission", testdata.Admin, "nonsense", true),
		Entry("other role", testdata.CompanyAdmin, "users.manage", false),
		Entry("nobody", nil, "users.manage", false),
	)

	DescribeTable("everybody",
		func(granted, perm string, allowed bool) {
			Expect(Everybody(granted)(testdata.Tenant, ParsePermission(perm))).To(Equal(allowed))
		},
		Entry("exact", "dashboard.view", "dashboard.view", true),
		Entry("other action", "dashboard.view", "dashboard.manage", false),
		Entry("other resource", "dashboard.view", "reports.view", false),
		Entry("wildcard action", "help.*", "help.search", true),
		Entry("wildcard on another resource", "help.*", "dashboard.view", false),
		Entry("wildcard never matches malformed", "help.*", "help", false),
	)
})
