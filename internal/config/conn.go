package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	connEnvPrefix  = "DB_"
	defaultDBPort  = 5432
	defaultSSLMode = "disable"
)

// Conn is the database connection descriptor assembled from DB_* environment variables.
type Conn struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required,gt=0,lte=65535"`
	User     string `koanf:"username" validate:"required"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

// LoadConn reads DB_HOST, DB_PORT, DB_USERNAME, DB_PASSWORD, DB_NAME and DB_SSLMODE.
func LoadConn() (*Conn, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(connEnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, connEnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load database env: %w", err)
	}

	conn := &Conn{
		Port:    defaultDBPort,
		SSLMode: defaultSSLMode,
	}
	if err := k.Unmarshal("", conn); err != nil {
		return nil, fmt.Errorf("unmarshal database env: %w", err)
	}

	if err := validator.New().Struct(conn); err != nil {
		return nil, fmt.Errorf("validate database env: %w", err)
	}

	return conn, nil
}

// DSN returns the postgres URL for the descriptor.
func (c *Conn) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

func (c *Conn) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host", c.Host),
		slog.Int("port", c.Port),
		slog.String("username", c.User),
		slog.String("password", "[REDACTED]"),
		slog.String("name", c.Name),
		slog.String("sslmode", c.SSLMode),
	)
}
