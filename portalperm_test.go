package portalperm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/supremind/portalperm"
	"github.com/supremind/portalperm/internal/testdata"
	"github.com/supremind/portalperm/persist/fake"
	. "github.com/supremind/portalperm/types"
)

var _ = Describe("authorizer", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		clock  *testdata.Clock
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		clock = testdata.NewClock()
	})

	AfterEach(func() {
		cancel()
	})

	newAuthz := func(opts ...AuthorizerOption) Authorizer {
		opts = append([]AuthorizerOption{WithLogger(logr.Discard()), WithClock(clock)}, opts...)
		authz, e := New(ctx, opts...)
		Expect(e).To(Succeed())
		return authz
	}

	It("lets the system admin do anything by default", func() {
		authz := newAuthz()
		Expect(authz.SetIdentity(testdata.Admin)).To(Succeed())
		Expect(authz.HasPermission("anything.at_all", "")).To(BeTrue())
		Expect(authz.Snapshot().CachedDecisions).To(BeZero())
	})

	It("disables the super role when configured empty", func() {
		cfg := DefaultConfig()
		cfg.SuperRole = ""
		authz := newAuthz(WithConfig(cfg))
		Expect(authz.SetIdentity(testdata.Admin)).To(Succeed())

		Expect(authz.HasPermission("users.manage", "")).To(BeTrue())
		Expect(authz.HasPermission("users.view", "")).To(BeTrue())
		Expect(authz.HasPermission("anything.at_all", "")).To(BeFalse())
	})

	It("moves the super role", func() {
		cfg := DefaultConfig()
		cfg.SuperRole = Landlord
		authz := newAuthz(WithConfig(cfg))

		Expect(authz.SetIdentity(testdata.Landlord)).To(Succeed())
		Expect(authz.HasPermission("system.manage", "")).To(BeTrue())
		Expect(authz.SetIdentity(testdata.Admin)).To(Succeed())
		Expect(authz.HasPermission("anything.at_all", "")).To(BeFalse())
	})

	It("applies extra presets to signed in identities only", func() {
		authz := newAuthz(WithPresetPolicies(Everybody("dashboard.view")))
		Expect(authz.HasPermission("dashboard.view", "")).To(BeFalse())

		Expect(authz.SetIdentity(testdata.Tenant)).To(Succeed())
		Expect(authz.MenuPermissions()).To(HaveKeyWithValue("dashboard", true))
		Expect(authz.HasPermission("dashboard.manage", "")).To(BeFalse())
	})

	It("builds the menu", func() {
		authz := newAuthz()
		Expect(authz.SetIdentity(testdata.CompanyAdmin)).To(Succeed())

		menu := authz.MenuPermissions()
		Expect(menu).To(haveExactKeys("dashboard", "properties", "tenants", "maintenance", "financials",
			"reports", "users", "settings", "communications", "tasks", "analytics", "audit"))
		Expect(menu).To(HaveKeyWithValue("users", true))
		Expect(menu).To(HaveKeyWithValue("analytics", false))
	})

	It("sweeps expired grants in background", func() {
		cfg := DefaultConfig()
		cfg.SweepInterval = 10 * time.Millisecond
		authz := newAuthz(WithConfig(cfg))
		Expect(authz.SetIdentity(testdata.Tenant)).To(Succeed())

		authz.GrantTemporaryPermission([]string{"financials.view"}, time.Second)
		Expect(authz.Snapshot().Temporary).To(HaveLen(1))

		clock.Advance(2 * time.Second)
		Eventually(func() []TemporaryGrant {
			return authz.Snapshot().Temporary
		}).Should(BeEmpty())
	})

	It("uses the default grant duration of the config", func() {
		cfg := DefaultConfig()
		cfg.DefaultGrantDuration = time.Minute
		authz := newAuthz(WithConfig(cfg))
		Expect(authz.SetIdentity(testdata.Tenant)).To(Succeed())

		authz.GrantTemporaryPermission([]string{"financials.view"}, 0)
		Expect(authz.Snapshot().Temporary[0].ExpiresAt).To(Equal(clock.Now().Add(time.Minute)))
	})

	It("rejects invalid config", func() {
		cfg := DefaultConfig()
		cfg.CacheTTL = -time.Second
		_, e := New(ctx, WithLogger(logr.Discard()), WithConfig(cfg))
		Expect(errors.Is(e, ErrInvalidConfig)).To(BeTrue())

		cfg = DefaultConfig()
		cfg.APIBaseURL = "not a url"
		_, e = New(ctx, WithLogger(logr.Discard()), WithConfig(cfg))
		Expect(errors.Is(e, ErrInvalidConfig)).To(BeTrue())
	})

	Describe("permission requests", func() {
		It("fails without a sink", func() {
			authz := newAuthz()
			Expect(authz.SetIdentity(testdata.Tenant)).To(Succeed())
			res := authz.RequestPermission(ctx, "financials.view", "audit", 0)
			Expect(errors.Is(res.Err, ErrNoRequestSink)).To(BeTrue())
		})

		It("sends to a given sink", func() {
			sink := fake.NewRequestSink()
			authz := newAuthz(WithRequestSink(sink))
			Expect(authz.SetIdentity(testdata.Tenant)).To(Succeed())

			res := authz.RequestPermission(ctx, "financials.view", "audit", 0)
			Expect(res.Success).To(BeTrue())
			Expect(sink.List()).To(HaveLen(1))
			Expect(sink.List()[0].ID).To(Equal(res.RequestID))
		})

		It("posts to the configured api", func() {
			posted := make(chan PermissionRequest, 1)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				defer GinkgoRecover()
				Expect(r.URL.Path).To(Equal("/v1/access"))

				var req PermissionRequest
				Expect(json.NewDecoder(r.Body).Decode(&req)).To(Succeed())
				posted <- req
				w.WriteHeader(http.StatusAccepted)
			}))
			defer srv.Close()

			cfg := DefaultConfig()
			cfg.APIBaseURL = srv.URL
			cfg.RequestEndpoint = "/v1/access"
			authz := newAuthz(WithConfig(cfg))
			Expect(authz.SetIdentity(testdata.Tenant)).To(Succeed())

			res := authz.RequestPermission(ctx, "financials.view", "audit", 30*time.Minute)
			Expect(res.Err).To(BeNil())

			var req PermissionRequest
			Eventually(posted).Should(Receive(&req))
			Expect(req.ID).To(Equal(res.RequestID))
			Expect(req.RequestedBy).To(Equal("u-tenant"))
			Expect(req.RequestedAt).To(Equal(clock.Now().UnixMilli()))
			Expect(*req.Duration).To(Equal(int64(1800000)))
			Expect(req.Status).To(Equal(RequestPending))
		})
	})
})
