package commands

import (
	"Corexus/internal/cli/api"
	"Corexus/internal/config"
	"Corexus/internal/frontend"
	"context"
	"errors"
	"strings"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and login" }
func (registerCmd) Usage() string       { return "register <email> <password> [full name]" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	fullName := strings.Join(args[2:], " ")
	s := newSession(cfg)
	err := s.Register(ctx, args[0], args[1], fullName)
	if errors.Is(err, api.ErrConflict) {
		return errors.New("email already registered")
	}
	if err != nil {
		return err
	}
	return openPage(s.Store(), frontend.DashboardPath)
}

func init() { RegisterCmd(registerCmd{}) }
