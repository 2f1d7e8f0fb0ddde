package frontend

import "fmt"

// maxRedirects ограничивает цепочку редиректов при навигации.
const maxRedirects = 5

// Navigator клиентская навигация поверх Router: следует редиректам
// с семантикой replace и помнит текущий путь.
type Navigator struct {
	router   *Router
	store    Storage
	location string
}

// NewNavigator создаёт навигатор. router == nil означает DefaultRouter.
func NewNavigator(router *Router, store Storage) *Navigator {
	if router == nil {
		router = DefaultRouter()
	}
	return &Navigator{router: router, store: store}
}

// Location текущий путь после последней навигации.
func (n *Navigator) Location() string { return n.location }

// Navigate переходит по пути и возвращает итоговую страницу.
func (n *Navigator) Navigate(path string) (*View, error) {
	for hop := 0; hop <= maxRedirects; hop++ {
		out, err := n.router.Resolve(path, n.store)
		if err != nil {
			return nil, fmt.Errorf("navigate %s: %w", path, err)
		}
		if !out.IsRedirect() {
			n.location = path
			return out.View, nil
		}
		path = out.Redirect
	}
	return nil, fmt.Errorf("navigate %s: too many redirects", path)
}

// Logout очищает токен и переходит на страницу входа.
func (n *Navigator) Logout() (*View, error) {
	out, err := Logout(n.store)
	if err != nil {
		return nil, fmt.Errorf("logout: %w", err)
	}
	return n.Navigate(out.Redirect)
}
