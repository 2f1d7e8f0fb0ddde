package commands

import (
	"Corexus/internal/cli/api"
	"Corexus/internal/config"
	"Corexus/internal/frontend"
	"context"
	"errors"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store access token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	s := newSession(cfg)
	err := s.Login(ctx, args[0], args[1])
	if errors.Is(err, api.ErrUnauthorized) {
		return errors.New("incorrect email or password")
	}
	if err != nil {
		return err
	}
	return openPage(s.Store(), frontend.DashboardPath)
}

func init() { RegisterCmd(loginCmd{}) }
