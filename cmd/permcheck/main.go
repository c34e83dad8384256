// permcheck evaluates permissions of an identity described in a YAML file.
//
// Usage:
//
//	permcheck --identity user.yaml [--check perm ...] [--context key] [--level resource ...]
//	          [--menu] [--grant perm ... --grant-for 1h] [--request perm --reason text] [-v N]
//
// Config is read from PORTALPERM_* environment variables, --request needs PORTALPERM_API_BASE_URL.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/go-logr/stdr"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/supremind/portalperm"
	"github.com/supremind/portalperm/types"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if e := run(ctx, os.Args[1:], os.Stdout); e != nil {
		if errors.Is(e, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", e)
		os.Exit(1)
	}
}

type options struct {
	identity   string
	checks     []string
	context    string
	levels     []string
	menu       bool
	grants     []string
	grantFor   time.Duration
	request    string
	reason     string
	requestFor time.Duration
	verbosity  int
}

func parse(args []string) (*options, error) {
	var o options

	flagSet := pflag.NewFlagSet("permcheck", pflag.ContinueOnError)
	flagSet.StringVar(&o.identity, "identity", "", "path to the identity YAML file")
	flagSet.StringSliceVar(&o.checks, "check", nil, "permissions to check, like properties.view")
	flagSet.StringVar(&o.context, "context", "", "context key checks are made within")
	flagSet.StringSliceVar(&o.levels, "level", nil, "resources to print the permission level of")
	flagSet.BoolVar(&o.menu, "menu", false, "print which menu sections are visible")
	flagSet.StringSliceVar(&o.grants, "grant", nil, "permissions granted temporarily before checking")
	flagSet.DurationVar(&o.grantFor, "grant-for", 0, "how long --grant lasts (default from PORTALPERM_DEFAULT_GRANT_DURATION)")
	flagSet.StringVar(&o.request, "request", "", "permission to request approval for")
	flagSet.StringVar(&o.reason, "reason", "", "why --request is needed")
	flagSet.DurationVar(&o.requestFor, "request-for", 0, "how long --request should last, unbounded if 0")
	flagSet.IntVarP(&o.verbosity, "verbosity", "v", 0, "log verbosity, 4 logs mutations and 6 every decision")

	if e := flagSet.Parse(args); e != nil {
		return nil, e
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if o.identity == "" {
		return nil, errors.New("--identity is required")
	}
	if o.request != "" && o.reason == "" {
		return nil, errors.New("--request needs a --reason")
	}

	return &o, nil
}

func readIdentity(path string) (*types.Identity, error) {
	data, e := os.ReadFile(path)
	if e != nil {
		return nil, fmt.Errorf("read identity: %w", e)
	}

	var identity types.Identity
	if e := yaml.Unmarshal(data, &identity); e != nil {
		return nil, fmt.Errorf("parse identity %s: %w", path, e)
	}
	return &identity, nil
}

func run(ctx context.Context, args []string, out io.Writer) error {
	o, e := parse(args)
	if e != nil {
		return e
	}

	stdr.SetVerbosity(o.verbosity)
	l := stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)).WithName("permcheck")

	cfg, e := portalperm.LoadConfig()
	if e != nil {
		return e
	}
	identity, e := readIdentity(o.identity)
	if e != nil {
		return e
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	authz, e := portalperm.New(ctx, portalperm.WithConfig(cfg), portalperm.WithLogger(l))
	if e != nil {
		return e
	}
	if e := authz.SetIdentity(identity); e != nil {
		return e
	}

	if len(o.grants) > 0 {
		key := authz.GrantTemporaryPermission(o.grants, o.grantFor)
		fmt.Fprintf(out, "grant %s: %v\n", key, o.grants)
	}

	for _, perm := range o.checks {
		fmt.Fprintf(out, "%s: %s\n", perm, verdict(authz.HasPermission(perm, o.context)))
	}

	for _, res := range o.levels {
		fmt.Fprintf(out, "%s level: %s\n", res, authz.PermissionLevel(res, o.context))
	}

	if o.menu {
		menu := authz.MenuPermissions()
		sections := make([]string, 0, len(menu))
		for section := range menu {
			sections = append(sections, section)
		}
		sort.Strings(sections)
		for _, section := range sections {
			fmt.Fprintf(out, "menu %s: %s\n", section, verdict(menu[section]))
		}
	}

	if o.request != "" {
		res := authz.RequestPermission(ctx, o.request, o.reason, o.requestFor)
		if !res.Success {
			return fmt.Errorf("request %s: %w", o.request, res.Err)
		}
		fmt.Fprintf(out, "request %s: %s\n", o.request, res.RequestID)
	}

	return nil
}

func verdict(allowed bool) string {
	if allowed {
		return "allowed"
	}
	return "denied"
}
