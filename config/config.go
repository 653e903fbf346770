package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "PLANTS_CONFIG_FILE"
	envPrefix         = "PLANTS"
)

const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourcePostgres = "postgres"
)

type httpServer struct {
	Addr           string        `mapstructure:"addr"`
	HandlerTimeout time.Duration `mapstructure:"handler_timeout"`
}

type catalog struct {
	Source string `mapstructure:"source"`
	SQLDB  string `mapstructure:"sql_db"`
}

type topics struct {
	CartEvents string `mapstructure:"cart_events"`
}

type tlsFiles struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	Topics             topics   `mapstructure:"topics"`
	TLS                tlsFiles `mapstructure:"tls"`
}

type Config struct {
	LogLevel   slog.Level `mapstructure:"log_level"`
	HTTPServer httpServer `mapstructure:"http_server"`
	Catalog    catalog    `mapstructure:"catalog"`
	Broker     broker     `mapstructure:"broker"`
}

// BrokerEnabled reports whether cart events should be published.
func (c Config) BrokerEnabled() bool {
	return len(c.Broker.SeedBrokers) != 0
}

// TLSEnabled reports whether broker connections use mutual TLS.
func (c Config) TLSEnabled() bool {
	return c.Broker.TLS.CA != ""
}

// Load reads the config file named by the --config flag or the
// PLANTS_CONFIG_FILE variable, exiting the process on failure.
func Load() Config {
	cfg, err := Read(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// Read builds a Config from defaults, the optional YAML file at path and
// PLANTS_* environment variables, in increasing priority.
func Read(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("http_server.addr", ":8080")
	v.SetDefault("http_server.handler_timeout", "5s")
	v.SetDefault("catalog.source", CatalogSourceBuiltin)
	v.SetDefault("catalog.sql_db", "")
	v.SetDefault("broker.seed_brokers", []string{})
	v.SetDefault("broker.schema_registry_urls", []string{})
	v.SetDefault("broker.topics.cart_events", "cart_events")
	v.SetDefault("broker.tls.ca", "")
	v.SetDefault("broker.tls.cert", "")
	v.SetDefault("broker.tls.key", "")
}

func (c Config) validate() error {
	var errs []error

	switch c.Catalog.Source {
	case CatalogSourceBuiltin:
	case CatalogSourcePostgres:
		if c.Catalog.SQLDB == "" {
			errs = append(errs, errors.New("catalog.sql_db: required for postgres source"))
		}
	default:
		errs = append(errs, fmt.Errorf("catalog.source: unknown %q", c.Catalog.Source))
	}

	if c.BrokerEnabled() {
		if len(c.Broker.SchemaRegistryURLs) == 0 {
			errs = append(errs, errors.New("broker.schema_registry_urls: required with seed_brokers"))
		}
		if c.Broker.Topics.CartEvents == "" {
			errs = append(errs, errors.New("broker.topics.cart_events: required"))
		}
	}

	t := c.Broker.TLS
	if (t.CA != "" || t.Cert != "" || t.Key != "") &&
		(t.CA == "" || t.Cert == "" || t.Key == "") {
		errs = append(errs, errors.New("broker.tls: ca, cert and key go together"))
	}

	return errors.Join(errs...)
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	HandlerTimeout=%q

	Catalog:
	Source=%q
	SQLDB set=%t

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	TLS=%t
	Topics:
		CartEvents=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServer.Addr,
		c.HTTPServer.HandlerTimeout,
		c.Catalog.Source,
		c.Catalog.SQLDB != "",
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.TLSEnabled(),
		c.Broker.Topics.CartEvents,
	)
}
