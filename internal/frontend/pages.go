package frontend

// View отрисовываемая страница. Body хранится в Markdown,
// поэтому один и тот же текст выводится и в HTML, и в терминал.
type View struct {
	Name    string
	Title   string
	Heading string
	Body    string
	// LoginForm страница показывает форму входа (только web).
	LoginForm bool
	Actions   []Action
}

// Action пользовательское действие на странице.
type Action struct {
	Name   string
	Label  string
	Method string
	Path   string
}

// Имена страниц.
const (
	PageHome      = "home"
	PageLogin     = "login"
	PageDashboard = "dashboard"
	PageNotFound  = "not_found"
)

// LogoutAction кнопка выхода на дашборде.
var LogoutAction = Action{Name: "logout", Label: "Logout", Method: "POST", Path: LogoutPath}

// HomePage стартовая страница.
func HomePage() *View {
	return &View{
		Name:    PageHome,
		Title:   "Corexus",
		Heading: "Welcome to Corexus!",
		Body:    "This is the home page. [Login here](" + LoginPath + ").",
	}
}

// LoginPage страница входа.
func LoginPage() *View {
	return &View{
		Name:      PageLogin,
		Title:     "Login to Corexus",
		Heading:   "Login",
		Body:      "This is the login page.",
		LoginForm: true,
	}
}

// DashboardPage страница, доступная только с токеном.
func DashboardPage() *View {
	return &View{
		Name:    PageDashboard,
		Title:   "Dashboard",
		Heading: "Welcome to your Dashboard!",
		Body:    "You are logged in.",
		Actions: []Action{LogoutAction},
	}
}

// NotFoundPage для путей вне таблицы маршрутов.
func NotFoundPage(path string) *View {
	return &View{
		Name:    PageNotFound,
		Title:   "Not found",
		Heading: "Page not found",
		Body:    "Nothing lives at `" + path + "`. Go back [home](" + HomePath + ").",
	}
}
