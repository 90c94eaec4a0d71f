package config

type App struct {
	Port        string `env:"APP_PORT" envDefault:"8080"`
	AdminSecret string `env:"ADMIN_SECRET" envDefault:"local_dev_secret"`
	Env         string `env:"APP_ENV" envDefault:"dev"`
}
