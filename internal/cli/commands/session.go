package commands

import (
	"Corexus/internal/cli/api"
	"Corexus/internal/cli/repo/fs"
	"Corexus/internal/cli/service"
	"Corexus/internal/config"
	"Corexus/internal/frontend"
	"fmt"
)

// newSession собирает сессию: API-клиент на cfg.ServerURL и файловое хранилище в cfg.StorageDir.
func newSession(cfg *config.Config) *service.Session {
	return service.NewSession(api.NewClient(cfg.ServerURL), fs.NewStorage(cfg.StorageDir))
}

// openPage переходит по пути и печатает итоговую страницу.
func openPage(store frontend.Storage, path string) error {
	nav := frontend.NewNavigator(nil, store)
	v, err := nav.Navigate(path)
	if err != nil {
		return err
	}
	if nav.Location() != path {
		fmt.Fprintf(Out, "(redirected to %s)\n", nav.Location())
	}
	renderView(Out, v)
	return nil
}
