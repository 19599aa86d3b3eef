package eventdef

import "testing"

func TestLoadRejectsWrongVersion(t *testing.T) {
	raw := []byte(`{"version": 2, "components": []}`)
	store, err := Load(raw)
	if err == nil {
		t.Fatalf("expected error for wrong version, got nil")
	}
	if store != nil {
		t.Fatalf("expected nil store on failed load")
	}
}

func TestLoadEmptyComponentsSucceeds(t *testing.T) {
	raw := []byte(`{"version": 1}`)
	store, err := Load(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store == nil {
		t.Fatalf("expected an empty store, got nil")
	}
	if _, ok := store.FindEvent(0); ok {
		t.Errorf("expected no events in empty store")
	}
}

func TestLoadSkipsComponentMissingRequiredFields(t *testing.T) {
	raw := []byte(`{
		"version": 1,
		"components": [
			{"namespace": "missing_id"},
			{"component_id": 1}
		]
	}`)
	store, err := Load(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.enums) != 0 || len(store.events) != 0 {
		t.Errorf("expected nothing loaded from incomplete components")
	}
}

func TestLoadEnumsThenEvents(t *testing.T) {
	raw := []byte(`{
		"version": 1,
		"components": [
			{
				"component_id": 1,
				"namespace": "health",
				"enums": [
					{
						"name": "Status",
						"type": "uint8_t",
						"entries": [
							{"value": 3, "name": "READY", "description": "Ready"},
							{"value": 5, "name": "FAULT", "description": "Fault"}
						]
					}
				],
				"event_groups": [
					{
						"name": "battery",
						"events": [
							{
								"name": "status_changed",
								"sub_id": 7,
								"message": "status is {1}",
								"arguments": [
									{"name": "status", "type": "Status"}
								]
							}
						]
					}
				]
			}
		]
	}`)

	store, err := Load(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	enumDef, ok := store.FindEnum("health", "Status")
	if !ok {
		t.Fatalf("expected enum Status to resolve")
	}
	if enumDef.Base != Uint8 {
		t.Errorf("expected enum base Uint8, got %v", enumDef.Base)
	}

	wantId := MakeEventId(1, 7)
	eventDef, ok := store.FindEvent(wantId)
	if !ok {
		t.Fatalf("expected event id %#x to resolve", wantId)
	}
	if len(eventDef.Arguments) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(eventDef.Arguments))
	}
	if !eventDef.Arguments[0].IsEnum() {
		t.Errorf("expected argument to be an enum reference")
	}
}

func TestLoadSkipsEnumWithInvalidType(t *testing.T) {
	raw := []byte(`{
		"version": 1,
		"components": [
			{
				"component_id": 1,
				"namespace": "ns",
				"enums": [
					{"name": "Bad", "type": "not_a_type"}
				]
			}
		]
	}`)
	store, err := Load(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.FindEnum("ns", "Bad"); ok {
		t.Errorf("expected invalid-type enum to be skipped")
	}
}

func TestLoadDiscardsEventWithUnresolvedEnumArgument(t *testing.T) {
	raw := []byte(`{
		"version": 1,
		"components": [
			{
				"component_id": 1,
				"namespace": "ns",
				"event_groups": [
					{
						"name": "grp",
						"events": [
							{
								"name": "bad_event",
								"sub_id": 1,
								"message": "m",
								"arguments": [
									{"name": "a", "type": "NoSuchEnum"}
								]
							}
						]
					}
				]
			}
		]
	}`)
	store, err := Load(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.FindEvent(MakeEventId(1, 1)); ok {
		t.Errorf("expected event with unresolved enum argument to be discarded")
	}
}

func TestLoadKeepsFirstOnDuplicateEventId(t *testing.T) {
	raw := []byte(`{
		"version": 1,
		"components": [
			{
				"component_id": 1,
				"namespace": "ns",
				"event_groups": [
					{
						"name": "grp",
						"events": [
							{"name": "first", "sub_id": 1, "message": "first"},
							{"name": "second", "sub_id": 1, "message": "second"}
						]
					}
				]
			}
		]
	}`)
	store, err := Load(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	eventDef, ok := store.FindEvent(MakeEventId(1, 1))
	if !ok {
		t.Fatalf("expected event to resolve")
	}
	if eventDef.Name != "first" {
		t.Errorf("expected duplicate id to keep first definition, got %q", eventDef.Name)
	}
}

func TestLoadDuplicateEnumKeyReplacesEarlier(t *testing.T) {
	raw := []byte(`{
		"version": 1,
		"components": [
			{
				"component_id": 1,
				"namespace": "ns",
				"enums": [
					{"name": "Dup", "type": "uint8_t", "description": "first"},
					{"name": "Dup", "type": "uint8_t", "description": "second"}
				]
			}
		]
	}`)
	store, err := Load(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	enumDef, ok := store.FindEnum("ns", "Dup")
	if !ok {
		t.Fatalf("expected enum to resolve")
	}
	if enumDef.Description != "second" {
		t.Errorf("expected later enum definition to replace earlier, got %q", enumDef.Description)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load([]byte(`{not json`))
	if err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestFindEnumAbsoluteNamespaceReference(t *testing.T) {
	raw := []byte(`{
		"version": 1,
		"components": [
			{
				"component_id": 1,
				"namespace": "shared",
				"enums": [
					{"name": "Status", "type": "uint8_t"}
				]
			},
			{
				"component_id": 2,
				"namespace": "other",
				"event_groups": [
					{
						"name": "grp",
						"events": [
							{
								"name": "uses_shared_enum",
								"sub_id": 1,
								"message": "m",
								"arguments": [
									{"name": "a", "type": "shared::Status"}
								]
							}
						]
					}
				]
			}
		]
	}`)
	store, err := Load(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	eventDef, ok := store.FindEvent(MakeEventId(2, 1))
	if !ok {
		t.Fatalf("expected event to resolve")
	}
	if !eventDef.Arguments[0].IsEnum() {
		t.Errorf("expected absolute namespace reference to resolve to the shared enum")
	}
}
