package eventdef

import (
	"encoding/json"
	"fmt"
	"os"
)

// definitionsVersion is the only accepted top-level "version" value.
const definitionsVersion = 1

// jsonFile mirrors the definitions file's top-level shape exactly as written
// on disk; the loader turns this into a Store.
type jsonFile struct {
	Version    int              `json:"version"`
	Components []jsonComponent  `json:"components"`
}

type jsonComponent struct {
	ComponentID *int             `json:"component_id"`
	Namespace   *string          `json:"namespace"`
	Enums       []jsonEnum       `json:"enums"`
	EventGroups []jsonEventGroup `json:"event_groups"`
}

type jsonEnum struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Entries     []jsonEnumEntry `json:"entries"`
}

type jsonEnumEntry struct {
	Value       uint64 `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type jsonEventGroup struct {
	Name   string      `json:"name"`
	Events []jsonEvent `json:"events"`
}

type jsonEvent struct {
	Name        string        `json:"name"`
	SubID       uint32        `json:"sub_id"`
	Message     string        `json:"message"`
	Description string        `json:"description"`
	LogLevel    string        `json:"log_level"`
	Arguments   []jsonArgument `json:"arguments"`
}

type jsonArgument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	NumDecimals int    `json:"num_decimals"`
}

// LoadFile reads and parses a definitions file from disk.
func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	return Load(raw)
}

// Load parses raw JSON definitions bytes into a freshly built Store. On any
// failure it returns a nil Store -- callers that are reloading must keep
// serving their previous Store in that case, never a half-built one.
func Load(raw []byte) (*Store, error) {
	var file jsonFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("invalid definitions syntax: %w", err)
	}
	if file.Version != definitionsVersion {
		return nil, fmt.Errorf("unsupported definitions version %d, expected %d", file.Version, definitionsVersion)
	}

	store := newStore()
	if file.Components == nil {
		return store, nil
	}

	loadEnums(store, file.Components)
	loadEvents(store, file.Components)

	return store, nil
}

// loadEnums is pass 1: populate store.enums/enumByKey from every component's
// enums[] before any event argument tries to resolve an enum reference.
func loadEnums(store *Store, components []jsonComponent) {
	for _, component := range components {
		if component.ComponentID == nil || component.Namespace == nil {
			continue
		}
		namespace := *component.Namespace

		for _, jsonEnumDef := range component.Enums {
			base := ParseBaseType(jsonEnumDef.Type)
			if base == Invalid {
				// Unknown base type on enum: skip it, keep loading.
				continue
			}

			enumDef := EnumDefinition{
				Namespace:   namespace,
				Name:        jsonEnumDef.Name,
				Base:        base,
				Description: jsonEnumDef.Description,
				Entries:     make(map[uint64]EnumEntry, len(jsonEnumDef.Entries)),
			}
			for _, entry := range jsonEnumDef.Entries {
				enumDef.Entries[entry.Value] = EnumEntry{
					Value:       entry.Value,
					Name:        entry.Name,
					Description: entry.Description,
				}
			}

			key := namespace + "::" + jsonEnumDef.Name
			if idx, exists := store.enumByKey[key]; exists {
				// Duplicate key: later definition silently replaces earlier.
				store.enums[idx] = enumDef
				continue
			}
			store.enums = append(store.enums, enumDef)
			store.enumByKey[key] = len(store.enums) - 1
		}
	}
}

// loadEvents is pass 2: populate store.events, resolving each argument's
// type against the enums pass 1 already loaded.
func loadEvents(store *Store, components []jsonComponent) {
	for _, component := range components {
		if component.ComponentID == nil || component.Namespace == nil {
			continue
		}
		namespace := *component.Namespace
		componentID := uint8(*component.ComponentID)

		for _, group := range component.EventGroups {
			for _, jsonEventDef := range group.Events {
				eventDef, ok := buildEventDefinition(store, namespace, group.Name, componentID, jsonEventDef)
				if !ok {
					continue
				}
				if _, exists := store.events[eventDef.Id]; exists {
					// Duplicate event id: keep the first, discard the new one.
					continue
				}
				store.events[eventDef.Id] = eventDef
			}
		}
	}
}

func buildEventDefinition(store *Store, namespace, group string, componentID uint8, src jsonEvent) (EventDefinition, bool) {
	eventDef := EventDefinition{
		Id:          MakeEventId(componentID, src.SubID),
		Namespace:   namespace,
		Group:       group,
		Name:        src.Name,
		Message:     src.Message,
		Description: src.Description,
		LogLevel:    ParseLogLevel(src.LogLevel),
	}

	for _, jsonArg := range src.Arguments {
		argDef := ArgumentDefinition{
			Name:        jsonArg.Name,
			Description: jsonArg.Description,
			EnumIndex:   -1,
			NumDecimals: jsonArg.NumDecimals,
		}

		if base := ParseBaseType(jsonArg.Type); base != Invalid {
			argDef.Type = base
		} else {
			enumIdx, found := findEnumIndex(store, namespace, jsonArg.Type)
			if !found {
				// No enum matches either: the entire event is discarded.
				return EventDefinition{}, false
			}
			argDef.EnumIndex = enumIdx
			argDef.Type = store.enums[enumIdx].Base
		}

		eventDef.Arguments = append(eventDef.Arguments, argDef)
	}

	return eventDef, true
}

func findEnumIndex(store *Store, eventNamespace, typeToken string) (int, bool) {
	ns, name := resolveEnumToken(eventNamespace, typeToken)
	idx, ok := store.enumByKey[ns+"::"+name]
	return idx, ok
}

// Reload reads path and, only if the new definitions parse cleanly, returns
// the fresh Store for the caller to swap in (e.g. via atomic.Pointer[Store]).
// It never mutates an existing Store and never returns a partially built one.
func Reload(path string) (*Store, error) {
	return LoadFile(path)
}
