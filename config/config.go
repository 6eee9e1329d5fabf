package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "CARDSTORE_CONFIG_FILE"

type catalog struct {
	APIURL         string        `mapstructure:"api_url"`
	FetchTimeout   time.Duration `mapstructure:"fetch_timeout"`
	MaxAttempts    int           `mapstructure:"max_attempts"`
	TitleWeight    float64       `mapstructure:"title_weight"`
	CategoryWeight float64       `mapstructure:"category_weight"`
}

type checkout struct {
	ItemURL     string `mapstructure:"item_url"`
	MaxQuantity int    `mapstructure:"max_quantity"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	SQLDB          string     `mapstructure:"sql_db"`
	Catalog        catalog    `mapstructure:"catalog"`
	Checkout       checkout   `mapstructure:"checkout"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	SQLDB=%q

	Catalog:
	APIURL=%q
	FetchTimeout=%q
	MaxAttempts=%d
	TitleWeight=%v
	CategoryWeight=%v

	Checkout:
	ItemURL=%q
	MaxQuantity=%d

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.SQLDB,
		c.Catalog.APIURL,
		c.Catalog.FetchTimeout,
		c.Catalog.MaxAttempts,
		c.Catalog.TitleWeight,
		c.Catalog.CategoryWeight,
		c.Checkout.ItemURL,
		c.Checkout.MaxQuantity,
	)
}
