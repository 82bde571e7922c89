package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"assigna/internal/config"
	"assigna/internal/exitcode"
	"assigna/internal/logging"
	"assigna/internal/service"
)

func init() {
	Register(&LoginCmd{})
}

// prompter asks for missing flag values on the input stream. Prompts go to
// errOut so stdout stays clean for scripts.
type prompter struct {
	in     *bufio.Scanner
	errOut io.Writer
}

func newPrompter(in io.Reader, errOut io.Writer) *prompter {
	if in == nil {
		in = strings.NewReader("")
	}
	return &prompter{in: bufio.NewScanner(in), errOut: errOut}
}

// fill prompts for *v when it is empty. It returns false when input ends first.
func (p *prompter) fill(v *string, label string) bool {
	if *v != "" {
		return true
	}
	fmt.Fprintf(p.errOut, "%s: ", label)
	if !p.in.Scan() {
		fmt.Fprintln(p.errOut)
		return false
	}
	*v = strings.TrimSpace(p.in.Text())
	return *v != ""
}

// LoginCmd implements the login command.
type LoginCmd struct {
	user     string
	password string
	env      Env
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate and store the session" }
func (c *LoginCmd) Usage() string {
	return "assigna login [common flags] [--user <name>] [--password <pw>]"
}
func (c *LoginCmd) NeedsAuth() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.user, "user", "", "")
	fs.StringVar(&c.user, "u", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

// SetEnv implements EnvUser.
func (c *LoginCmd) SetEnv(env Env) {
	c.env = env
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	p := newPrompter(c.env.In, errOut)
	if !p.fill(&c.user, "Username") || !p.fill(&c.password, "Password") {
		fmt.Fprintln(errOut, "error: username and password required")
		return exitcode.UserError
	}

	res := svc.Login(ctx, c.user, c.password)
	if !res.Success {
		logger(c.env).Info("login refused", "user", c.user, "message", res.Message)
		fmt.Fprintf(errOut, "error: login failed: %s\n", failureMessage(res.Message))
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok (%s)\n", svc.Role())
	}
	return exitcode.Success
}

func logger(env Env) *slog.Logger {
	if env.Logger == nil {
		return logging.Discard()
	}
	return env.Logger
}
