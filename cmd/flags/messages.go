package flags

const (
	failedToOpenSQLConnection = "failed-to-open-sql-connection"
	failedToConnectToStatsD   = "failed-to-connect-to-statsd"
)
