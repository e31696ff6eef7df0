package config

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Log format: json, text
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// Console destination: stdout, stderr
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr"`

	// Optional JSON log file written alongside the console output
	FilePath string `mapstructure:"file_path"`

	// Include caller information (file:line)
	IncludeCaller bool `mapstructure:"include_caller"`
}
