package eventdef

import "strings"

// LogLevel is the ordered severity an EventDefinition is tagged with. It
// is a definitions-file extension beyond the wire protocol itself, used to
// route rendered output toward the right journal priority.
type LogLevel int

const (
	Emergency LogLevel = iota
	Alert
	Critical
	Error
	Warning
	Notice
	Info
	Protocol
	Disabled
)

var logLevelSpellings = map[string]LogLevel{
	"emergency": Emergency,
	"alert":     Alert,
	"critical":  Critical,
	"error":     Error,
	"warning":   Warning,
	"notice":    Notice,
	"info":      Info,
	"protocol":  Protocol,
	"disabled":  Disabled,
}

// ParseLogLevel maps a case-insensitive spelling to a LogLevel, defaulting to
// Info when the token is empty or unrecognized.
func ParseLogLevel(token string) LogLevel {
	if token == "" {
		return Info
	}
	if lvl, ok := logLevelSpellings[strings.ToLower(token)]; ok {
		return lvl
	}
	return Info
}

func (lvl LogLevel) String() string {
	for token, v := range logLevelSpellings {
		if v == lvl {
			return token
		}
	}
	return "info"
}
