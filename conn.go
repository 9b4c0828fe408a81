package pgmodel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgmodel/pgtype"
)

// ConnConfig contains all the options used to establish a connection. It must be created by ParseConfig and
// then it can be modified.
type ConnConfig struct {
	pgconn.Config
	Logger   Logger
	LogLevel LogLevel

	// Catalog resolves type OIDs and names. nil uses the built-in types.
	Catalog *pgtype.Catalog

	connString           string
	createdByParseConfig bool // Used to enforce created by ParseConfig rule.
}

// Copy returns a deep copy of the config that is safe to use and modify.
// The only exception is the tls.Config:
// according to the tls.Config docs it must not be modified after creation.
func (cc *ConnConfig) Copy() *ConnConfig {
	newConfig := new(ConnConfig)
	*newConfig = *cc
	newConfig.Config = *newConfig.Config.Copy()
	return newConfig
}

// ConnString returns the connection string as parsed by pgmodel.ParseConfig into pgmodel.ConnConfig.
func (cc *ConnConfig) ConnString() string { return cc.connString }

// ParseConfig creates a ConnConfig from a connection string. ParseConfig handles all options that pgconn.ParseConfig
// does. In addition, it accepts the following options:
//
//	log_level
//		Log level of the Logger. Default: info.
func ParseConfig(connString string) (*ConnConfig, error) {
	config, err := pgconn.ParseConfig(connString)
	if err != nil {
		return nil, err
	}

	logLevel := LogLevelInfo
	if s, ok := config.RuntimeParams["log_level"]; ok {
		delete(config.RuntimeParams, "log_level")
		logLevel, err = LogLevelFromString(s)
		if err != nil {
			return nil, fmt.Errorf("cannot parse log_level: %w", err)
		}
	}

	connConfig := &ConnConfig{
		Config:               *config,
		LogLevel:             logLevel,
		createdByParseConfig: true,
		connString:           connString,
	}

	return connConfig, nil
}

// Conn is a PostgreSQL connection handle used to read and write models. It is not safe for concurrent usage.
type Conn struct {
	pgConn        *pgconn.PgConn
	config        *ConnConfig
	logger        Logger
	logLevel      LogLevel
	catalog       *pgtype.Catalog
	serverVersion *semver.Version
}

// Connect establishes a connection with a PostgreSQL server with a connection string. See
// pgconn.Connect for details.
func Connect(ctx context.Context, connString string) (*Conn, error) {
	connConfig, err := ParseConfig(connString)
	if err != nil {
		return nil, err
	}
	return connect(ctx, connConfig)
}

// ConnectConfig establishes a connection with a PostgreSQL server with a configuration struct.
// connConfig must have been created by ParseConfig.
func ConnectConfig(ctx context.Context, connConfig *ConnConfig) (*Conn, error) {
	// In general this improves safety. In particular avoid the config.Config.OnNotification mutation from affecting
	// other connections with the same config.
	connConfig = connConfig.Copy()

	return connect(ctx, connConfig)
}

func connect(ctx context.Context, config *ConnConfig) (c *Conn, err error) {
	// Default values are set in ParseConfig. Enforce initial creation by ParseConfig rather than setting defaults from
	// zero values.
	if !config.createdByParseConfig {
		panic("config must be created by ParseConfig")
	}

	c = &Conn{
		config:   config,
		logLevel: config.LogLevel,
		logger:   config.Logger,
		catalog:  config.Catalog,
	}

	if c.shouldLog(LogLevelInfo) {
		c.log(ctx, LogLevelInfo, "Dialing PostgreSQL server", map[string]interface{}{"host": config.Config.Host})
	}
	c.pgConn, err = pgconn.ConnectConfig(ctx, &config.Config)
	if err != nil {
		if c.shouldLog(LogLevelError) {
			c.log(ctx, LogLevelError, "connect failed", map[string]interface{}{"err": err})
		}
		return nil, err
	}

	c.serverVersion, err = parseServerVersion(c.pgConn.ParameterStatus("server_version"))
	if err != nil {
		c.pgConn.Close(ctx)
		if c.shouldLog(LogLevelError) {
			c.log(ctx, LogLevelError, "connect failed", map[string]interface{}{"err": err})
		}
		return nil, err
	}

	return c, nil
}

// parseServerVersion parses the server_version parameter, e.g. "13.4" or "14.2 (Debian 14.2-1.pgdg110+1)".
func parseServerVersion(s string) (*semver.Version, error) {
	end := strings.IndexFunc(s, func(r rune) bool { return (r < '0' || r > '9') && r != '.' })
	if end >= 0 {
		s = s[:end]
	}
	s = strings.TrimSuffix(s, ".")

	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("cannot parse server version %q: %w", s, err)
	}
	return v, nil
}

// Close closes a connection. It is safe to call Close on a already closed
// connection.
func (c *Conn) Close(ctx context.Context) error {
	if c.IsClosed() {
		return nil
	}

	err := c.pgConn.Close(ctx)
	if c.shouldLog(LogLevelInfo) {
		c.log(ctx, LogLevelInfo, "closed connection", nil)
	}
	return err
}

// IsClosed reports if the connection has been closed.
func (c *Conn) IsClosed() bool {
	return c.pgConn.IsClosed()
}

// PgConn returns the underlying *pgconn.PgConn. This is an escape hatch method that allows lower level access to the
// PostgreSQL connection than pgmodel exposes.
//
// It is strongly recommended that the connection be idle (no in-progress queries) before the underlying *pgconn.PgConn
// is used and the connection must be returned to the same state before any *pgmodel.Conn methods are again used.
func (c *Conn) PgConn() *pgconn.PgConn { return c.pgConn }

// Config returns a copy of config that was used to establish this connection.
func (c *Conn) Config() *ConnConfig { return c.config.Copy() }

// Catalog returns the catalog used to encode and decode values. nil means the built-in types.
func (c *Conn) Catalog() *pgtype.Catalog { return c.catalog }

// ServerVersion returns the version the server reported on connect.
func (c *Conn) ServerVersion() *semver.Version { return c.serverVersion }

// checkServerVersion verifies that every type of projection is provided by the server.
func (c *Conn) checkServerVersion(projection Projection) error {
	for _, f := range projection.Fields() {
		dt, ok := c.catalog.DataTypeForOID(f.OID)
		if !ok || dt.MinServerVersion == "" {
			continue
		}

		constraint, err := semver.NewConstraint(">= " + dt.MinServerVersion)
		if err != nil {
			return fmt.Errorf("type %s: %w", dt.Name, err)
		}
		if !constraint.Check(c.serverVersion) {
			return &UnsupportedTypeError{
				Field:            f.Name,
				TypeName:         dt.Name,
				MinServerVersion: dt.MinServerVersion,
				ServerVersion:    c.serverVersion.String(),
			}
		}
	}

	return nil
}

func (c *Conn) shouldLog(lvl LogLevel) bool {
	return c.logger != nil && c.logLevel >= lvl
}

func (c *Conn) log(ctx context.Context, lvl LogLevel, msg string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	if c.pgConn != nil && c.pgConn.PID() != 0 {
		data["pid"] = c.pgConn.PID()
	}

	c.logger.Log(ctx, lvl, msg, data)
}

// encodeParams renders args in text format.
func (c *Conn) encodeParams(args []pgtype.Encoder) ([][]byte, []uint32, error) {
	values := make([][]byte, len(args))
	oids := make([]uint32, len(args))

	for i, arg := range args {
		buf, err := arg.EncodeText(c.catalog, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("argument $%d: %w", i+1, err)
		}
		values[i] = buf
		oids[i] = arg.OID()
	}

	return values, oids, nil
}

// query sends sql with text encoded params and calls fn for each result row. Rows are requested in text format.
func (c *Conn) query(ctx context.Context, sql string, values [][]byte, oids []uint32, fn func(Row) error) (pgconn.CommandTag, error) {
	startTime := time.Now()

	var rowCount int64
	var fnErr error

	rr := c.pgConn.ExecParams(ctx, sql, values, oids, nil, nil)
	for rr.NextRow() {
		if fnErr != nil {
			continue
		}

		var row *DataRow
		row, fnErr = NewDataRow(rr.FieldDescriptions(), rr.Values())
		if fnErr == nil {
			fnErr = fn(row)
		}
		rowCount++
	}

	commandTag, err := rr.Close()
	if err == nil {
		err = fnErr
	}

	if err != nil {
		if c.shouldLog(LogLevelError) {
			c.log(ctx, LogLevelError, "Query", map[string]interface{}{"sql": sql, "args": logQueryArgs(values), "err": err})
		}
		return nil, err
	}

	if c.shouldLog(LogLevelInfo) {
		c.log(ctx, LogLevelInfo, "Query", map[string]interface{}{
			"sql":        sql,
			"args":       logQueryArgs(values),
			"time":       time.Since(startTime),
			"rowCount":   rowCount,
			"commandTag": commandTag.String(),
		})
	}

	return commandTag, nil
}
