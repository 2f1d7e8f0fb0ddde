package commands

import (
	"Corexus/internal/cli/repo/fs"
	"Corexus/internal/config"
	"Corexus/internal/frontend"
	"context"
)

type openCmd struct{}

func (openCmd) Name() string        { return "open" }
func (openCmd) Description() string { return "Open a page (/, /login, /dashboard)" }
func (openCmd) Usage() string       { return "open [path]" }

func (openCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	path := frontend.HomePath
	if len(args) == 1 {
		path = args[0]
	}
	return openPage(fs.NewStorage(cfg.StorageDir), path)
}

func init() { RegisterCmd(openCmd{}) }
