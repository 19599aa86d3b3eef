package receiver

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"eventlink/internal/global"
)

// Loads JSON config from file
func LoadConfig(path string) (cfg JSONConfig, err error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read config file: %v", err)
		return
	}

	err = json.Unmarshal(configFile, &cfg)
	if err != nil {
		err = fmt.Errorf("invalid config syntax in '%s': %v", path, err)
		return
	}

	return
}

// Parses JSON config into daemon config
func (cfg JSONConfig) NewDaemonConf() (config Config, err error) {
	config.PrivateKeyFile = cfg.PrivateKeyFile

	// Network
	config.ListenIP = cfg.Listen.Address
	config.ListenPort = cfg.Listen.Port

	// Definitions
	config.DefinitionsPath = cfg.Definitions.Path
	config.ReloadOnChange = cfg.Definitions.ReloadOnChange
	config.Profile = cfg.Profile

	// Definition Sync
	config.SyncEnabled = cfg.Sync.Enabled
	config.SyncEndpoint = cfg.Sync.Endpoint
	config.TrustedPublicKey = cfg.Sync.TrustedPublicKey

	// Outputs
	config.JournalEndpoint = cfg.Outputs.JournalEndpoint
	config.StdoutEnabled = cfg.Outputs.Stdout
	config.OutputFilePath = cfg.Outputs.FilePath
	config.RemoteEndpoint = cfg.Outputs.RemoteEndpoint
	config.RemoteCollectorPublicKey = cfg.Outputs.RemoteCollectorPublicKey
	config.BeatsEndpoint = cfg.Outputs.BeatsEndpoint

	// Remote identity
	config.OurSystemID = cfg.Remote.OurSystemID
	config.OurComponentID = cfg.Remote.OurComponentID

	// Metrics
	config.MetricQueryServerEnabled = cfg.Metrics.Enabled
	config.MetricQueryServerPort = cfg.Metrics.QueryServerPort
	if cfg.Metrics.MaxAge != "" {
		config.MetricMaxAge, err = time.ParseDuration(cfg.Metrics.MaxAge)
		if err != nil {
			err = fmt.Errorf("failed to parse metric max age time: %v", err)
			return
		}
	}
	if cfg.Metrics.CollectionInterval != "" {
		config.MetricCollectionInterval, err = time.ParseDuration(cfg.Metrics.CollectionInterval)
		if err != nil {
			err = fmt.Errorf("failed to parse metric collection interval time: %v", err)
			return
		}
	}

	// Logging
	config.LogLevel = cfg.Logging.Level

	config.setDefaults()
	return
}

// Sets defaults for any missing/invalid values
func (cfg *Config) setDefaults() {
	if cfg.ListenIP == "" {
		cfg.ListenIP = "[::]"
	}
	if cfg.ListenPort == 0 {
		cfg.ListenPort = global.DefaultReceiverPort
	}
	if cfg.DefinitionsPath == "" {
		cfg.DefinitionsPath = global.DefaultDefinitionsPath
	}
	if cfg.Profile == "" {
		cfg.Profile = global.DefaultProfile
	}
	if cfg.MetricMaxAge == 0 {
		cfg.MetricMaxAge = 1 * time.Hour
	}
	if cfg.MetricQueryServerPort == 0 {
		cfg.MetricQueryServerPort = global.HTTPListenPortReceiver
	}
	if cfg.MetricCollectionInterval == 0 {
		cfg.MetricCollectionInterval = 15 * time.Second
	}
}
