package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(cfg *Config) {},
		},
		{
			name: "missing access key",
			mutate: func(cfg *Config) {
				cfg.API.AccessKey = ""
			},
			wantErr: true,
		},
		{
			name: "missing secret key",
			mutate: func(cfg *Config) {
				cfg.API.SecretKey = ""
			},
			wantErr: true,
		},
		{
			name: "invalid logging level",
			mutate: func(cfg *Config) {
				cfg.Logging.Level = "verbose"
			},
			wantErr: true,
		},
		{
			name: "invalid logging format",
			mutate: func(cfg *Config) {
				cfg.Logging.Format = "logfmt"
			},
			wantErr: true,
		},
		{
			name: "zero batch concurrency",
			mutate: func(cfg *Config) {
				cfg.Batch.Concurrency = 0
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				API: APIConfig{
					AccessKey: "RcLsdM6uhIN6gw",
					SecretKey: "MW2vfkkgLTzGGw",
				},
				Batch: BatchConfig{
					Concurrency: 4,
				},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "console",
				},
			}
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
