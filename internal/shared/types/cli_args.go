package types

// CLIArgs represents the command-line arguments.
// Only flags the user actually set are non-nil, so they can override the
// config file and the environment.
type CLIArgs struct {
	ConfigFile string
	Source     *string
	Sheet      *string
	Host       *string
	Port       *int
	Debug      *bool
	AWSProfile *string
	AWSRegion  *string
	Seed       *int64
	ReportName *string
	ReportType []string
	Dir        *string
}

// Apply sobrescreve na configuração os valores passados por flag.
func (a *CLIArgs) Apply(cfg *Config) {
	if a.Source != nil {
		cfg.Source = *a.Source
	}
	if a.Sheet != nil {
		cfg.Sheet = *a.Sheet
	}
	if a.Host != nil {
		cfg.Host = *a.Host
	}
	if a.Port != nil {
		cfg.Port = *a.Port
	}
	if a.Debug != nil {
		cfg.Debug = *a.Debug
	}
	if a.AWSProfile != nil {
		cfg.AWSProfile = *a.AWSProfile
	}
	if a.AWSRegion != nil {
		cfg.AWSRegion = *a.AWSRegion
	}
	if a.Seed != nil {
		cfg.Seed = *a.Seed
	}
	if a.ReportName != nil {
		cfg.ReportName = *a.ReportName
	}
	if len(a.ReportType) > 0 {
		cfg.ReportType = a.ReportType
	}
	if a.Dir != nil {
		cfg.Dir = *a.Dir
	}
}
