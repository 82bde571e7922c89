package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"assigna/internal/config"
	"assigna/internal/exitcode"
	"assigna/internal/service"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd prints the stored role and when the access token expires.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Show the stored role and token expiry" }
func (c *WhoamiCmd) Usage() string     { return "assigna whoami" }
func (c *WhoamiCmd) NeedsAuth() bool   { return true }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	role := svc.Role()
	if role == "" {
		role = "unknown"
	}
	fmt.Fprintf(out, "role:    %s\n", role)

	expires := "unknown"
	if exp := svc.TokenExpiry(); !exp.IsZero() {
		expires = exp.Local().Format(time.RFC3339)
	}
	fmt.Fprintf(out, "expires: %s\n", expires)
	return exitcode.Success
}
