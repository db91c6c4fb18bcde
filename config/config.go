package config

import (
	"github.com/jinzhu/configor"
	"github.com/joho/godotenv"
)

type Config struct {
	AppConfig     AppConfig     `env:"APPCONFIG"`
	DiscordConfig DiscordConfig `env:"DISCORDCONFIG"`
	DBConfig      DBConfig      `env:"DBCONFIG"`
}

type AppConfig struct {
	APPName string `default:"tagbot"`
	Version string `default:"x.x.x" env:"VERSION"`
	Port    int    `default:"8080" env:"APP_PORT"`
}

type DiscordConfig struct {
	Token         string `required:"true" env:"DISCORD_TOKEN"`
	CommandPrefix string `default:"!" env:"COMMAND_PREFIX"`
}

type DBConfig struct {
	// URL, when set, is used verbatim as the connection string and
	// takes precedence over the individual fields below.
	URL          string `env:"PG_URL"`
	Host         string `default:"localhost" env:"DBHOST"`
	DataBase     string `default:"tagbot" env:"DBNAME"`
	User         string `default:"postgres" env:"DBUSERNAME"`
	Password     string `env:"DBPASSWORD" default:"mysecretpassword"`
	Port         uint   `default:"5432" env:"DBPORT"`
	SSLMode      string `default:"disable" env:"DBSSL"`
	MaxOpenConns int    `default:"10" env:"DBMAXCONNS"`
	MaxIdleConns int    `default:"5" env:"DBMAXIDLE"`
}

func LoadConfigOrPanic() Config {
	// a local .env is optional; real deployments set the environment directly
	godotenv.Load()

	var config = Config{}
	configor.Load(&config, "config/config.dev.json")

	return config
}
