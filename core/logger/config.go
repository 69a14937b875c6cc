package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding: console or json.
	Format string `mapstructure:"format" default:"console"`
	// Output is where entries are written. The console banner owns stdout,
	// so logs default to stderr.
	Output string `mapstructure:"output" default:"stderr"`
}
