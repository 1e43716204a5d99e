package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Sheets   *SheetsConfig   `mapstructure:"sheets"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	JWTExpiryHours     int      `mapstructure:"jwt_expiry_hours"`
	AdminEmail         string   `mapstructure:"admin_email"`
	AdminPassword      string   `mapstructure:"admin_password"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
}

type SheetsConfig struct {
	RegistrationWorkbook string `mapstructure:"registration_workbook"`
	LedgerWorkbook       string `mapstructure:"ledger_workbook"`
}

// Load reads the yaml file at path, then lets environment variables
// prefixed with TOYBRIDGE_ override individual keys
// (e.g. TOYBRIDGE_API_JWT_SIGNING_KEY).
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvPrefix("TOYBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	return conf, nil
}
