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
	Register(&ForgotPasswordCmd{})
	Register(&ResetPasswordCmd{})
}

// ForgotPasswordCmd implements the forgot-password command.
type ForgotPasswordCmd struct {
	env Env
}

func (c *ForgotPasswordCmd) Name() string      { return "forgot-password" }
func (c *ForgotPasswordCmd) Aliases() []string { return []string{"forgot"} }
func (c *ForgotPasswordCmd) Synopsis() string  { return "Request a password reset token" }
func (c *ForgotPasswordCmd) Usage() string     { return "assigna forgot-password <email>" }
func (c *ForgotPasswordCmd) NeedsAuth() bool   { return false }

func (c *ForgotPasswordCmd) RegisterFlags(fs *flag.FlagSet) {}

// SetEnv implements EnvUser.
func (c *ForgotPasswordCmd) SetEnv(env Env) {
	c.env = env
}

func (c *ForgotPasswordCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: email required")
		return exitcode.UserError
	}
	email := args[0]
	if !session.ValidEmail(email) {
		fmt.Fprintf(errOut, "error: invalid email: %s\n", email)
		return exitcode.UserError
	}

	res := svc.ForgotPassword(ctx, email)
	if !res.Success {
		logger(c.env).Info("password reset request refused", "message", res.Message)
		fmt.Fprintf(errOut, "error: backend error: %s\n", failureMessage(res.Message))
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok (run: assigna reset-password)")
	}
	return exitcode.Success
}

// ResetPasswordCmd implements the reset-password command.
type ResetPasswordCmd struct {
	password string
	confirm  string
	token    string
	env      Env
}

func (c *ResetPasswordCmd) Name() string      { return "reset-password" }
func (c *ResetPasswordCmd) Aliases() []string { return []string{"reset"} }
func (c *ResetPasswordCmd) Synopsis() string  { return "Set a new password with the reset token" }
func (c *ResetPasswordCmd) Usage() string {
	return "assigna reset-password [--password <pw>] [--confirm <pw>] [--token <reset-token>]"
}
func (c *ResetPasswordCmd) NeedsAuth() bool { return false }

func (c *ResetPasswordCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
	fs.StringVar(&c.confirm, "confirm", "", "")
	fs.StringVar(&c.token, "token", "", "")
}

// SetEnv implements EnvUser.
func (c *ResetPasswordCmd) SetEnv(env Env) {
	c.env = env
}

func (c *ResetPasswordCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	token := c.token
	if token == "" {
		token = svc.ResetToken()
	}
	if token == "" {
		fmt.Fprintln(errOut, "error: no reset token (run: assigna forgot-password <email>)")
		return exitcode.UserError
	}

	p := newPrompter(c.env.In, errOut)
	if !p.fill(&c.password, "New password") || !p.fill(&c.confirm, "Confirm password") {
		fmt.Fprintln(errOut, "error: password and confirmation required")
		return exitcode.UserError
	}

	res := svc.ResetPassword(ctx, c.password, c.confirm, token)
	if !res.Success {
		logger(c.env).Info("password reset refused", "message", res.Message)
		fmt.Fprintf(errOut, "error: backend error: %s\n", failureMessage(res.Message))
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
