package session

import (
	"context"
	"regexp"
	"strings"

	"assigna/internal/service"
)

var emailPattern = regexp.MustCompile(`(?i)^[^@\s]+@[^@\s]+\.(com|net|org|gov)$`)

// ValidEmail reports whether s is an address the API accepts.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidUserName reports whether s contains no spaces.
func ValidUserName(s string) bool {
	return s != "" && !strings.Contains(s, " ")
}

func (s *Session) register(ctx context.Context) error {
	for {
		s.println()
		r, err := s.readRegistration(ctx)
		if err != nil {
			return err
		}

		res := s.svc.Register(ctx, r)
		if res.Success {
			s.println()
			s.println("Successful, please login now")
			return s.login(ctx)
		}
		s.logger.Info("registration refused", "user", r.UserName, "message", res.Message)
		s.tryAgain()
	}
}

func (s *Session) readRegistration(ctx context.Context) (service.Registration, error) {
	var (
		r   service.Registration
		err error
	)

	s.prompt("Enter your username (ex: peter@user):")
	if r.UserName, err = s.readValid(ctx, ValidUserName, "Username is not valid, please enter valid username:"); err != nil {
		return r, err
	}
	s.prompt("Enter your first name (ex: peter):")
	if r.FirstName, err = s.readLine(ctx); err != nil {
		return r, err
	}
	s.prompt("Enter your email address (ex: peter@example.com):")
	if r.Email, err = s.readValid(ctx, ValidEmail, "Email address is not valid, please enter valid email:"); err != nil {
		return r, err
	}
	s.prompt("Enter your password (ex: peter@123):")
	if r.Password, err = s.readLine(ctx); err != nil {
		return r, err
	}

	s.prompt("Select your user role:")
	s.prompt("1. " + service.RoleLead)
	s.prompt("2. " + service.RoleMember)
	choice, err := s.readLine(ctx)
	if err != nil {
		return r, err
	}
	r.Role = service.RoleMember
	if choice == "1" {
		r.Role = service.RoleLead
	}
	return r, nil
}

// readValid reads lines until valid accepts one.
func (s *Session) readValid(ctx context.Context, valid func(string) bool, retry string) (string, error) {
	for {
		line, err := s.readLine(ctx)
		if err != nil {
			return "", err
		}
		if valid(line) {
			return line, nil
		}
		s.prompt(retry)
	}
}

func (s *Session) login(ctx context.Context) error {
	for {
		s.println()
		s.prompt("Enter your username:")
		user, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		s.prompt("Enter your password:")
		password, err := s.readLine(ctx)
		if err != nil {
			return err
		}

		res := s.svc.Login(ctx, user, password)
		if !res.Success {
			s.logger.Info("login refused", "user", user, "message", res.Message)
			s.println()
			s.println(MsgBadLogin)
			continue
		}

		s.println()
		s.println(strings.Repeat("-", len(MsgWelcome)))
		s.println(MsgWelcome)
		s.println(strings.Repeat("-", len(MsgWelcome)))
		if s.svc.Role() == service.RoleLead {
			return s.leadMenu(ctx)
		}
		return s.memberMenu(ctx)
	}
}

func (s *Session) forgotPassword(ctx context.Context) error {
	for {
		s.println()
		s.prompt("Enter your email to reset password:")
		email, err := s.readValid(ctx, ValidEmail, "Email address is not valid, please enter valid email:")
		if err != nil {
			return err
		}

		res := s.svc.ForgotPassword(ctx, email)
		if !res.Success {
			s.logger.Info("password reset request refused", "message", res.Message)
			s.tryAgain()
			continue
		}

		s.prompt("Enter new password (ex: newpass@123):")
		password, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		s.prompt("Enter confirm password:")
		confirm, err := s.readLine(ctx)
		if err != nil {
			return err
		}

		reset := s.svc.ResetPassword(ctx, password, confirm, s.svc.ResetToken())
		if reset.Success {
			s.println()
			s.println("Successful, please login")
			return s.login(ctx)
		}
		s.logger.Info("password reset refused", "message", reset.Message)
		s.tryAgain()
	}
}
