package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"assigna/internal/config"
	"assigna/internal/exitcode"
	"assigna/internal/service"
	"assigna/internal/session"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command.
type RegisterCmd struct {
	reg  service.Registration
	role string
	env  Env
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return []string{"signup"} }
func (c *RegisterCmd) Synopsis() string  { return "Create an account" }
func (c *RegisterCmd) Usage() string {
	return "assigna register [--user <name>] [--first-name <name>] [--email <addr>] [--password <pw>] [--role lead|member]"
}
func (c *RegisterCmd) NeedsAuth() bool { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.reg.UserName, "user", "", "")
	fs.StringVar(&c.reg.UserName, "u", "", "")
	fs.StringVar(&c.reg.FirstName, "first-name", "", "")
	fs.StringVar(&c.reg.Email, "email", "", "")
	fs.StringVar(&c.reg.Password, "password", "", "")
	fs.StringVar(&c.reg.Password, "p", "", "")
	fs.StringVar(&c.role, "role", "", "")
}

// SetEnv implements EnvUser.
func (c *RegisterCmd) SetEnv(env Env) {
	c.env = env
}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	p := newPrompter(c.env.In, errOut)
	if !p.fill(&c.reg.UserName, "Username") ||
		!p.fill(&c.reg.FirstName, "First name") ||
		!p.fill(&c.reg.Email, "Email") ||
		!p.fill(&c.reg.Password, "Password") ||
		!p.fill(&c.role, "Role (lead|member)") {
		fmt.Fprintln(errOut, "error: username, first name, email, password and role required")
		return exitcode.UserError
	}

	if !session.ValidUserName(c.reg.UserName) {
		fmt.Fprintf(errOut, "error: invalid username: %q\n", c.reg.UserName)
		return exitcode.UserError
	}
	if !session.ValidEmail(c.reg.Email) {
		fmt.Fprintf(errOut, "error: invalid email: %s\n", c.reg.Email)
		return exitcode.UserError
	}
	role, ok := parseRole(c.role)
	if !ok {
		fmt.Fprintf(errOut, "error: invalid role: %s (want lead or member)\n", c.role)
		return exitcode.UserError
	}
	c.reg.Role = role

	res := svc.Register(ctx, c.reg)
	if !res.Success {
		logger(c.env).Info("registration refused", "user", c.reg.UserName, "message", res.Message)
		fmt.Fprintf(errOut, "error: registration failed: %s\n", failureMessage(res.Message))
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// parseRole accepts the short names and the wire names.
func parseRole(s string) (string, bool) {
	switch s {
	case "lead", service.RoleLead:
		return service.RoleLead, true
	case "member", service.RoleMember:
		return service.RoleMember, true
	}
	return "", false
}
