package eventdef

import "testing"

func TestParsedEventMessageRendersDecodedArgument(t *testing.T) {
	raw := []byte(`{
		"version": 1,
		"components": [
			{
				"component_id": 1,
				"namespace": "battery",
				"event_groups": [
					{
						"name": "grp",
						"events": [
							{
								"name": "low",
								"sub_id": 3,
								"message": "battery at {1}%",
								"description": "cell voltage dropped",
								"arguments": [
									{"name": "percent", "type": "uint8_t"}
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

	def, ok := store.FindEvent(MakeEventId(1, 3))
	if !ok {
		t.Fatalf("expected event to resolve")
	}

	var wire EventWire
	wire.Id = def.Id
	wire.Arguments[0] = 17

	parsed := NewParsedEvent(wire, def, store, NewConfiguration())
	if got := parsed.Message(); got != "battery at 17%" {
		t.Errorf("Message() = %q, expected %q", got, "battery at 17%")
	}
	if got := parsed.Description(); got != "cell voltage dropped" {
		t.Errorf("Description() = %q, expected %q", got, "cell voltage dropped")
	}
}

func TestParsedEventArgumentValuesCached(t *testing.T) {
	def := EventDefinition{
		Arguments: []ArgumentDefinition{{Name: "a", Type: Uint8, EnumIndex: -1}},
	}
	var wire EventWire
	wire.Arguments[0] = 9

	parsed := NewParsedEvent(wire, def, nil, NewConfiguration())
	first := parsed.ArgumentValues()
	second := parsed.ArgumentValues()
	if &first[0] != &second[0] {
		t.Errorf("expected ArgumentValues() to return the cached decode on repeat calls")
	}
}
