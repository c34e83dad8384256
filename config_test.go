package portalperm_test

import (
	"errors"
	"os"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/supremind/portalperm"
	. "github.com/supremind/portalperm/types"
)

var _ = Describe("config", func() {
	var set []string

	setenv := func(kv map[string]string) {
		for k, v := range kv {
			Expect(os.Setenv(k, v)).To(Succeed())
			set = append(set, k)
		}
	}

	AfterEach(func() {
		for _, k := range set {
			Expect(os.Unsetenv(k)).To(Succeed())
		}
		set = nil
	})

	It("defaults to documented values", func() {
		cfg, e := LoadConfig()
		Expect(e).To(Succeed())
		Expect(cfg).To(Equal(DefaultConfig()))
		Expect(cfg.CacheTTL).To(Equal(5 * time.Minute))
		Expect(cfg.SweepInterval).To(Equal(time.Minute))
		Expect(cfg.DefaultGrantDuration).To(Equal(time.Hour))
		Expect(cfg.SuperRole).To(Equal(SystemAdmin))
		Expect(cfg.RequestEndpoint).To(Equal("/permissions/request"))
		Expect(cfg.RequestTimeout).To(Equal(10 * time.Second))
	})

	It("reads the environment", func() {
		setenv(map[string]string{
			"PORTALPERM_CACHE_TTL":    "30s",
			"PORTALPERM_SUPER_ROLE":   "company_admin",
			"PORTALPERM_API_BASE_URL": "https://api.example.com",
		})

		cfg, e := LoadConfig()
		Expect(e).To(Succeed())
		Expect(cfg.CacheTTL).To(Equal(30 * time.Second))
		Expect(cfg.SuperRole).To(Equal(CompanyAdmin))
		Expect(cfg.APIBaseURL).To(Equal("https://api.example.com"))
	})

	It("fails on malformed values", func() {
		setenv(map[string]string{"PORTALPERM_SWEEP_INTERVAL": "often"})
		_, e := LoadConfig()
		Expect(e).To(HaveOccurred())
	})

	It("fails on negative durations", func() {
		setenv(map[string]string{"PORTALPERM_REQUEST_TIMEOUT": "-1s"})
		_, e := LoadConfig()
		Expect(errors.Is(e, ErrInvalidConfig)).To(BeTrue())
	})
})
