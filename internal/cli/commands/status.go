package commands

import (
	"Corexus/internal/cli/api"
	"Corexus/internal/config"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show server status and current user" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	st, err := api.NewClient(cfg.ServerURL).Status(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Server: %s (v%s)\n", st.Status, st.Version)

	user, err := newSession(cfg).CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user.FullName != "" {
		fmt.Fprintf(Out, "Logged in as %s <%s>\n", user.FullName, user.Email)
	} else {
		fmt.Fprintf(Out, "Logged in as %s\n", user.Email)
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
