package logx

// Data is a single structured logging key/value pair.
type Data struct {
	Key   string
	Value interface{}
}

// Logger is the logging interface used throughout this library. The lagerx
// subpackage adapts a lager.Logger to it; tests may supply any other
// implementation.
type Logger interface {
	WithName(name string) Logger
	WithData(data ...Data) Logger

	Debug(msg string, data ...Data)
	Info(msg string, data ...Data)
	Error(msg string, err error, data ...Data)
}
