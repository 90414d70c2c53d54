package teams

import "testing"

func TestAllSortedAndComplete(t *testing.T) {
	all := All()

	if len(all) != 30 {
		t.Fatalf("expected 30 teams, got %d", len(all))
	}

	for i := 1; i < len(all); i++ {
		if all[i-1].Name >= all[i].Name {
			t.Fatalf("catalog not sorted at %q / %q", all[i-1].Name, all[i].Name)
		}
	}

	if all[0].Name != "Arizona Diamondbacks" {
		t.Fatalf("expected Diamondbacks first, got %s", all[0].Name)
	}
}

func TestNameByID(t *testing.T) {
	name, ok := NameByID(121)
	if !ok || name != "New York Mets" {
		t.Fatalf("expected New York Mets, got %q (ok=%v)", name, ok)
	}

	if _, ok := NameByID(999); ok {
		t.Fatal("expected unknown id to miss")
	}
}
