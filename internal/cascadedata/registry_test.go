package cascadedata

import "testing"

func TestGet_KnownNames(t *testing.T) {
	for _, name := range []string{"tiny", "face", "eye", "mouth"} {
		c, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q) returned error: %v", name, err)
			continue
		}
		if c.MinW() <= 0 || c.MinH() <= 0 {
			t.Errorf("Get(%q): MinW/MinH = %v/%v, want positive", name, c.MinW(), c.MinH())
		}
	}
}

func TestGet_UnknownNameIsError(t *testing.T) {
	if _, err := Get("nonexistent"); err == nil {
		t.Error("expected an error for an unknown cascade name")
	}
}

func TestList_IsSorted(t *testing.T) {
	names := List()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("List() not sorted: %v", names)
			break
		}
	}
	if len(names) != 4 {
		t.Errorf("len(List()) = %d, want 4", len(names))
	}
}
