package tbf

import "testing"

func TestNewTagRejectsInvalidNames(t *testing.T) {
	cases := []string{"", "has space", "has-dash", "has.dot"}
	for _, name := range cases {
		if _, err := NewTag(name); err == nil {
			t.Errorf("NewTag(%q) = nil error, want error", name)
		}
	}
}

func TestNewTagAcceptsValidNames(t *testing.T) {
	cases := []string{"a", "A1_b2", "_private", "snake_case_name"}
	for _, name := range cases {
		tag, err := NewTag(name)
		if err != nil {
			t.Errorf("NewTag(%q) = %v, want nil error", name, err)
			continue
		}
		if tag.Name() != name {
			t.Errorf("tag.Name() = %q, want %q", tag.Name(), name)
		}
		if tag.ID() != HashName(name) {
			t.Errorf("tag.ID() = %d, want HashName(%q) = %d", tag.ID(), name, HashName(name))
		}
	}
}

func TestMustTagPanicsOnInvalidName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustTag to panic on invalid name")
		}
	}()
	MustTag("not valid")
}

func TestNewIDTagRejectsZeroID(t *testing.T) {
	if _, err := NewIDTag(0, "name"); err == nil {
		t.Error("expected error for id=0")
	}
}

func TestHashNameNeverZero(t *testing.T) {
	// A name whose raw FNV-1a hash happens to truncate to 0 must still
	// report a non-zero id: 0 is reserved to mean "absent" in IDMode.
	// "9eb" is such a name; the others are ordinary names.
	for _, name := range []string{"9eb", "a", "b", "c", "aa", "bb", "test", "x", "y", "z"} {
		if HashName(name) == 0 {
			t.Errorf("HashName(%q) = 0, want non-zero", name)
		}
	}
}

func TestIDOnlyTagHasNoName(t *testing.T) {
	tag := IDOnlyTag(42)
	if tag.HasName() {
		t.Error("expected IDOnlyTag to have no name")
	}
	if !tag.HasID() || tag.ID() != 42 {
		t.Errorf("tag.ID() = %d, want 42", tag.ID())
	}
}
