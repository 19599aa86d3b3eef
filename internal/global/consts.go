package global

import "time"

const (
	// Descriptive Names for available verbosity levels
	VerbosityNone int = iota
	VerbosityStandard
	VerbosityProgress
	VerbosityData
	VerbosityFullData
	VerbosityDebug

	// Descriptive names for available severity levels
	ErrorLog string = "Error"
	WarnLog  string = "Warn"
	InfoLog  string = "Info"
)

const (
	ProgVersion string = "v0.6.0"

	// Context keys
	LoggerKey  CtxKey = "logger"  // Event queue (mostly for variable log verbosity handling)
	LogTagsKey CtxKey = "logtags" // List of tags in order of broad->specific appended/popped at various parts of the program

	DefaultBinaryPath      string = "/usr/local/bin/eventlink"
	DefaultConfigDir       string = "/etc/eventlink"
	DefaultConfigPath      string = "/etc/eventlink/config.json"
	DefaultPrivKeyPath     string = "/etc/ssl/private/eventlink.key"
	DefaultDefinitionsPath string = "/etc/eventlink/definitions.json"
	DefaultStateDir        string = "/var/cache/eventlink"
	DefaultAAProfName      string = "usr.local.bin.eventlink"
	DefaultReceiverPort    int    = 8514
	DefaultMinQueueSize    int    = 512
	DefaultMaxQueueSize    int    = 4096
	DefaultProfile         string = "dev"

	DefaultJournaldURL = "http://localhost:19532"

	// Timeout values
	ReceiveShutdownTimeout time.Duration = 20 * time.Second

	// Metric HTTP server
	HTTPListenPortReceiver int           = 20000 + DefaultReceiverPort // Default listen port
	HTTPListenAddr         string        = "localhost"                // Metric queries only exposed to local machine
	HTTPReadTimeout        time.Duration = 30 * time.Second
	HTTPWriteTimeout       time.Duration = 10 * time.Second
	HTTPIdleTimeout        time.Duration = 180 * time.Second

	// Namespacing Name Components
	NSMetric    string = "Metrics"
	NSMetricSrv string = "Server"
	NSTest      string = "Test"
	NSRecv      string = "Receiver"
	NSQueue     string = "Queue"
	NSListen    string = "Listener"
	NSWorker    string = "Worker"
	NSmIngest   string = "Ingest"
	NSmOutput   string = "Out"
	NSProtocol  string = "Protocol"

	// Metric query HTTP endpoint paths
	DataPath        string = "/data"
	DiscoveryPath   string = "/discover"
	AggregationPath string = "/aggregate"

	// Metric aggregation types
	MetricSum          string = "sum"
	MetricMin          string = "min"
	MetricMax          string = "max"
	MetricAvg          string = "avg"
	MetricTrimmedMean  string = "trimmed_mean"

	// Fraction of samples dropped from each end of a trimmed-mean aggregation
	MetricTrimmedMeanTrimPercent float64 = 0.1
)
