package eventdef

// EventWire is a received event exactly as the wire codec decodes it --
// before any metadata lookup happens.
type EventWire struct {
	Id                   uint32
	Sequence             uint16
	TimeBootMs           uint32
	DestinationComponent uint8
	Arguments            [32]byte
}

// ParsedEvent is a non-owning view bundling an EventWire with the
// EventDefinition the Metadata Store resolved for it. It must not outlive
// the Store it was built against -- callers that hold a reload-capable
// atomic.Pointer[Store] should keep parsing against whichever generation was
// current when the event arrived, never the "latest" pointer, so a reload
// mid-flight never mutates an in-flight ParsedEvent's view.
type ParsedEvent struct {
	wire  EventWire
	def   EventDefinition
	store *Store
	cfg   Configuration

	decoded    []Argument
	decodedSet bool
}

// NewParsedEvent builds a view over wire using def (already looked up from
// store by wire.Id) and cfg (the renderer's profile/formatters).
func NewParsedEvent(wire EventWire, def EventDefinition, store *Store, cfg Configuration) *ParsedEvent {
	return &ParsedEvent{wire: wire, def: def, store: store, cfg: cfg}
}

func (p *ParsedEvent) Id() uint32             { return p.def.Id }
func (p *ParsedEvent) Name() string           { return p.def.Name }
func (p *ParsedEvent) Namespace() string      { return p.def.Namespace }
func (p *ParsedEvent) Group() string          { return p.def.Group }
func (p *ParsedEvent) LogLevel() LogLevel     { return p.def.LogLevel }
func (p *ParsedEvent) Sequence() uint16       { return p.wire.Sequence }
func (p *ParsedEvent) TimeBootMs() uint32     { return p.wire.TimeBootMs }
func (p *ParsedEvent) NumArguments() int      { return len(p.def.Arguments) }

func (p *ParsedEvent) Argument(index int) ArgumentDefinition {
	return p.def.Arguments[index]
}

// ArgumentValues lazily decodes the raw argument payload, caching the
// result for subsequent calls.
func (p *ParsedEvent) ArgumentValues() []Argument {
	if !p.decodedSet {
		p.decoded = DecodeArguments(p.def, p.wire.Arguments[:])
		p.decodedSet = true
	}
	return p.decoded
}

// Message lazily renders the event's message template.
func (p *ParsedEvent) Message() string {
	return Render(p.def.Message, p.ArgumentValues(), p.store, p.def.Namespace, p.cfg)
}

// Description lazily renders the event's description template.
func (p *ParsedEvent) Description() string {
	return Render(p.def.Description, p.ArgumentValues(), p.store, p.def.Namespace, p.cfg)
}
