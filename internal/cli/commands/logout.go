package commands

import (
	"Corexus/internal/cli/repo/fs"
	"Corexus/internal/config"
	"Corexus/internal/frontend"
	"context"
	"fmt"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Remove stored access token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	nav := frontend.NewNavigator(nil, fs.NewStorage(cfg.StorageDir))
	v, err := nav.Logout()
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	renderView(Out, v)
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
