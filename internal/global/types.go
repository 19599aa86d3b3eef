package global

type CommandSet struct {
	CommandName     string                 // Exact name of cli command
	UsageOption     string                 // Expected command value in usage top line
	Description     string                 // Short text displayed on parent command
	FullDescription string                 // Long text displayed on current command
	ChildCommands   map[string]*CommandSet // Available subcommands
}

type CtxKey string

// Receiving Daemon

// DaemonConfig is the on-disk JSON shape of the receive daemon's
// configuration. It is embedded by receiver.JSONConfig rather than
// duplicated so this shape stays the single source of truth for what a
// deployed config file looks like.
type DaemonConfig struct {
	PrivateKeyFile string            `json:"privateKeyFile,omitempty"`
	Listen         ListenConf        `json:"listen"`
	Definitions    DefinitionsConf   `json:"definitions"`
	Sync           SyncConf          `json:"sync"`
	Profile        string            `json:"profile"`
	Outputs        RecvOutputs       `json:"outputs"`
	Remote         RemoteConf        `json:"remote"`
	Metrics        MetricConf        `json:"metrics"`
	Logging        Logging           `json:"logging"`
}

type ListenConf struct {
	Address string `json:"address"`
	Port    int    `json:"port"`
}

type DefinitionsConf struct {
	Path           string `json:"path"`
	ReloadOnChange bool   `json:"reloadOnChange,omitempty"`
}

type SyncConf struct {
	Enabled          bool   `json:"enabled"`
	Endpoint         string `json:"endpoint,omitempty"`
	TrustedPublicKey string `json:"trustedPublicKey,omitempty"`
}

type RecvOutputs struct {
	JournalEndpoint          string `json:"journal,omitempty"`
	Stdout                   bool   `json:"stdout,omitempty"`
	FilePath                 string `json:"filePath,omitempty"`
	MetricsServer            bool   `json:"metricsServer,omitempty"`
	RemoteEndpoint           string `json:"remote,omitempty"`
	RemoteCollectorPublicKey string `json:"remoteCollectorPublicKey,omitempty"`
	BeatsEndpoint            string `json:"beats,omitempty"`
}

// RemoteConf names the station's own identity and the single remote this
// deployment expects to hear from. OurSystemID/OurComponentID are the
// station identity the listener checks message targets against.
// SystemID/ComponentID are not enforced: the Receive Protocol creates a
// protocol instance for any (system_id, component_id) it sees on the wire.
type RemoteConf struct {
	SystemID       uint8 `json:"systemID"`
	ComponentID    uint8 `json:"componentID"`
	OurSystemID    uint8 `json:"ourSystemID"`
	OurComponentID uint8 `json:"ourComponentID"`
}

type MetricConf struct {
	Enabled           bool   `json:"enabled"`
	CollectionInterval string `json:"collectionInterval,omitempty"`
	MaxAge            string `json:"maximumRetention,omitempty"`
	QueryServerPort   int    `json:"queryServerPort,omitempty"`
}

type Logging struct {
	Level   int    `json:"logLevel"`
	LogFile string `json:"logFile,omitempty"`
}
