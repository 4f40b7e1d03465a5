package flags

import (
	"time"

	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/sqlx"
)

type DBFlag struct {
	Driver   sqlx.DBDriver `long:"driver" description:"Database driver to use for SQL backend (e.g. mysql)" default:"mysql"`
	Host     string        `long:"host" description:"Host for SQL backend" default:"localhost"`
	Port     int           `long:"port" description:"Port for SQL backend" default:"3306"`
	Schema   string        `long:"schema" description:"Database name to use for connecting to SQL backend" required:"true"`
	Username string        `long:"username" description:"Username to use for connecting to SQL backend" required:"true"`
	Password string        `long:"password" description:"Password to use for connecting to SQL backend"`

	Tuning SQLTuningFlag `group:"Tuning" namespace:"tuning"`
}

type SQLTuningFlag struct {
	ConnMaxLifetime int `long:"connection-max-lifetime" description:"Limit the lifetime in milliseconds of a SQL connection"`
}

func (o *DBFlag) Connect(logger logx.Logger) (*sqlx.DB, error) {
	logger = logger.WithData(logx.Data{
		Key:   "db_driver",
		Value: o.Driver,
	}, logx.Data{
		Key:   "db_host",
		Value: o.Host,
	}, logx.Data{
		Key:   "db_port",
		Value: o.Port,
	}, logx.Data{
		Key:   "db_schema",
		Value: o.Schema,
	}, logx.Data{
		Key:   "db_username",
		Value: o.Username,
	})

	conn, err := sqlx.Connect(
		o.Driver,
		sqlx.DBUsername(o.Username),
		sqlx.DBPassword(o.Password),
		sqlx.DBDatabaseName(o.Schema),
		sqlx.DBHost(o.Host),
		sqlx.DBPort(o.Port),
		sqlx.DBConnectionMaxLifetime(time.Duration(o.Tuning.ConnMaxLifetime)*time.Millisecond),
	)
	if err != nil {
		logger.Error(failedToOpenSQLConnection, err)
		return nil, err
	}

	return conn, nil
}
