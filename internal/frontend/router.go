package frontend

import (
	"errors"
	"sort"
)

// Пути приложения.
const (
	HomePath      = "/"
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
	LogoutPath    = "/logout"
)

// ErrNotFound путь отсутствует в таблице маршрутов.
var ErrNotFound = errors.New("route not found")

// Outcome результат разрешения маршрута: либо страница, либо редирект.
type Outcome struct {
	View     *View
	Redirect string
}

// IsRedirect true, если нужно перейти на другой путь.
func (o Outcome) IsRedirect() bool { return o.Redirect != "" }

// Route связывает путь со страницей.
type Route struct {
	Path    string
	Page    func() *View
	Guarded bool
}

// Router хранит таблицу маршрутов. Вложенности и параметров нет.
type Router struct {
	routes map[string]Route
}

// NewRouter создаёт роутер с переданными маршрутами.
func NewRouter(routes ...Route) *Router {
	r := &Router{routes: make(map[string]Route, len(routes))}
	for _, rt := range routes {
		r.routes[rt.Path] = rt
	}
	return r
}

// DefaultRouter таблица маршрутов приложения.
func DefaultRouter() *Router {
	return NewRouter(
		Route{Path: HomePath, Page: HomePage},
		Route{Path: LoginPath, Page: LoginPage},
		Route{Path: DashboardPath, Page: DashboardPage, Guarded: true},
	)
}

// Paths возвращает зарегистрированные пути в отсортированном виде.
func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Resolve находит страницу для пути. Для защищённых маршрутов решение принимает Guard.
func (r *Router) Resolve(path string, store Storage) (Outcome, error) {
	if path == "" {
		path = HomePath
	}
	rt, ok := r.routes[path]
	if !ok {
		return Outcome{}, ErrNotFound
	}
	if rt.Guarded {
		return Guard(store, rt.Page), nil
	}
	return Outcome{View: rt.Page()}, nil
}

// Guard отдаёт страницу при наличии токена, иначе редирект на /login.
// Отсутствие токена: обычная ветка, а не ошибка.
func Guard(store Storage, page func() *View) Outcome {
	if !HasToken(store) {
		return Outcome{Redirect: LoginPath}
	}
	return Outcome{View: page()}
}

// Logout удаляет токен и отправляет на /login. Повторный вызов ничего не меняет.
func Logout(store Storage) (Outcome, error) {
	if store != nil {
		if err := store.RemoveItem(TokenKey); err != nil {
			return Outcome{}, err
		}
	}
	return Outcome{Redirect: LoginPath}, nil
}
