package formats

import "testing"

func TestParseYAMLRanges(t *testing.T) {
	data := []byte(`
id: ranges
name: Ranges
end_x: 1000
spawns:
  - kind: chicken
    x: 400
    y: [360, 380]
    speed: {min: 0.1, max: 0.5}
  - kind: coin
    count: 4
    x: [100, 900]
    y: 200
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if len(lvl.Spawns) != 2 {
		t.Fatalf("len(Spawns) = %d, expected 2", len(lvl.Spawns))
	}

	chicken := lvl.Spawns[0]
	if chicken.Count != 1 {
		t.Errorf("omitted count = %d, expected 1", chicken.Count)
	}
	if !chicken.X.Fixed() || chicken.X.Min != 400 {
		t.Errorf("scalar range = %+v, expected fixed 400", chicken.X)
	}
	if chicken.Y != (Range{Min: 360, Max: 380}) {
		t.Errorf("sequence range = %+v", chicken.Y)
	}
	if chicken.Speed != (Range{Min: 0.1, Max: 0.5}) {
		t.Errorf("mapping range = %+v", chicken.Speed)
	}
	if lvl.Spawns[1].Count != 4 {
		t.Errorf("coin count = %d, expected 4", lvl.Spawns[1].Count)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"three element range": "id: a\nend_x: 1\nspawns:\n  - kind: coin\n    x: [1, 2, 3]\n",
		"non-numeric range":   "id: a\nend_x: 1\nspawns:\n  - kind: coin\n    x: far\n",
		"broken yaml":         "id: [a\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(data)); err == nil {
				t.Error("ParseYAML() should fail")
			}
		})
	}
}
