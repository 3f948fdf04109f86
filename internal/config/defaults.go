package config

const (
	defaultOutputDirectory = "."
	defaultValidFile       = "validBib.bib"
	defaultInvalidFile     = "invalidBib.bib"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultReportColor     = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Directory:   defaultOutputDirectory,
			ValidFile:   defaultValidFile,
			InvalidFile: defaultInvalidFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Report: Report{
			Enabled: true,
			Color:   defaultReportColor,
		},
	}
}
