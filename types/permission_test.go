package types_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/supremind/portalperm/types"
)

var _ = Describe("permission", func() {
	DescribeTable("parse",
		func(s string, perm Permission, valid bool) {
			p := ParsePermission(s)
			Expect(p).To(Equal(perm))
			Expect(p.Valid()).To(Equal(valid))
			Expect(p.String()).To(Equal(s))
		},
		Entry("resource and action", "properties.view", Permission{Resource: "properties", Action: "view"}, true),
		Entry("unknown action", "leases.approve", Permission{Resource: "leases", Action: "approve"}, true),
		Entry("dotted action", "a.b.c", Permission{Resource: "a", Action: "b.c"}, true),
		Entry("no separator", "dashboard", Permission{Resource: "dashboard"}, false),
		Entry("empty action", "users.", Permission{Resource: "users."}, false),
		Entry("empty resource", ".view", Permission{Resource: ".view"}, false),
	)

	It("knows actions of valid permissions only", func() {
		act, ok := ParsePermission("tasks.assign").KnownAction()
		Expect(ok).To(BeTrue())
		Expect(act).To(Equal(Assign))

		_, ok = ParsePermission("tasks").KnownAction()
		Expect(ok).To(BeFalse())
	})

	Describe("set", func() {
		It("collapses duplicates", func() {
			s := NewPermissionSet("users.view", "users.view", "tasks.manage")
			Expect(s).To(HaveLen(2))
			Expect(s.List()).To(Equal([]string{"tasks.manage", "users.view"}))
		})

		It("unions without touching operands", func() {
			a := NewPermissionSet("users.view")
			b := NewPermissionSet("tasks.view")
			u := a.Union(b)
			Expect(u.Has(NewPermission("users", "view"))).To(BeTrue())
			Expect(u.Has(NewPermission("tasks", "view"))).To(BeTrue())
			Expect(a).To(HaveLen(1))
			Expect(b).To(HaveLen(1))
		})
	})

	Describe("identity", func() {
		It("looks up owned and assigned resources", func() {
			id := &Identity{
				ID:                "u1",
				Role:              Landlord,
				OwnedResources:    map[string][]string{"properties": {"p1"}},
				AssignedResources: map[string][]string{"properties": {"p2"}},
			}
			Expect(id.Owns("properties", "p1")).To(BeTrue())
			Expect(id.Owns("properties", "p2")).To(BeFalse())
			Expect(id.AssignedTo("properties", "p2")).To(BeTrue())

			var nobody *Identity
			Expect(nobody.Owns("properties", "p1")).To(BeFalse())
		})
	})
})
