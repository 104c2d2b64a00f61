package config

// JaegerConfig ...
type JaegerConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	URL         string  `mapstructure:"url"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}
