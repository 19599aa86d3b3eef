package eventdef

// EnumEntry is a single named value inside an EnumDefinition. Values need
// not be contiguous and need not start at zero.
type EnumEntry struct {
	Value       uint64
	Name        string
	Description string
}

// EnumDefinition describes a named enumeration scoped to a namespace. Its
// identity key (as stored in Store) is Namespace + "::" + Name.
type EnumDefinition struct {
	Namespace   string
	Name        string
	Base        BaseType
	Description string
	Entries     map[uint64]EnumEntry
}

// Describe looks up the description text for a decoded numeric value,
// returning ok=false when the value has no matching entry.
func (e *EnumDefinition) Describe(value uint64) (description string, ok bool) {
	entry, found := e.Entries[value]
	if !found {
		return "", false
	}
	return entry.Description, true
}

// ArgumentDefinition describes one ordered argument of an EventDefinition.
// EnumIndex, when >= 0, names an enum in the owning Store's enum slice; the
// argument's wire type is then that enum's Base type. NumDecimals only
// matters when Type is Float32.
type ArgumentDefinition struct {
	Name        string
	Description string
	Type        BaseType
	EnumIndex   int // -1 when this argument is not an enum reference
	NumDecimals int
}

func (a ArgumentDefinition) IsEnum() bool {
	return a.EnumIndex >= 0
}

// EventDefinition is one decodable/renderable event, keyed in the Store by
// its 32-bit Id (high byte component id, low 24 bits sub-id).
type EventDefinition struct {
	Id          uint32
	Namespace   string
	Group       string
	Name        string
	Message     string
	Description string
	LogLevel    LogLevel
	Arguments   []ArgumentDefinition
}

// ComponentId extracts the high byte of an event id.
func ComponentId(id uint32) uint8 {
	return uint8(id >> 24)
}

// SubId extracts the low 24 bits of an event id.
func SubId(id uint32) uint32 {
	return id & 0x00FFFFFF
}

// MakeEventId combines a component id and sub-id into the 32-bit event id.
func MakeEventId(componentId uint8, subId uint32) uint32 {
	return (uint32(componentId) << 24) | (subId & 0x00FFFFFF)
}
