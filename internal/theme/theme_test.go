package theme

import "testing"

func TestLookup(t *testing.T) {
	for _, name := range List() {
		th, ok := Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) failed for a listed theme", name)
		}
		if th.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, th.Name)
		}
	}

	if th, ok := Lookup("  Nord "); !ok || th.Name != "nord" {
		t.Errorf("Lookup should ignore case and spaces, got %q %v", th.Name, ok)
	}
	if _, ok := Lookup("neon"); ok {
		t.Error("unknown theme should not resolve")
	}
	if Default().Name != DefaultName {
		t.Errorf("Default().Name = %q", Default().Name)
	}
}

func TestListSorted(t *testing.T) {
	names := List()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("List not sorted: %v", names)
		}
	}
}
