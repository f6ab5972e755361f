package di

// AppNames defines the component names of the application (guest) container.
// Projects embed this struct in their own DI name sets.
type AppNames struct {
	Config     string
	Logger     string
	HTTPServer string
}

// App contains the well-known component names of the guest container.
var App = AppNames{
	Config:     "config",
	Logger:     "logger",
	HTTPServer: "http_server",
}
