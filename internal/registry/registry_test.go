package registry

import (
	"testing"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

func TestAddAndGet(t *testing.T) {
	c := core.MustCatalog([]core.Shape{{ID: "A", Matrix: core.ParseMatrix("##")}})

	if err := Add("test-add", "Test", "memory", c); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if !Exists("test-add") {
		t.Error("Exists() = false, expected true")
	}

	got, err := Get("test-add")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != c {
		t.Error("Get() returned a different catalog")
	}

	if err := Add("test-add", "Again", "memory", c); err == nil {
		t.Error("expected error for duplicate id")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("does-not-exist"); err == nil {
		t.Error("expected error for unknown id")
	}
	if Exists("does-not-exist") {
		t.Error("Exists() = true for unknown id")
	}
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	c := core.MustCatalog([]core.Shape{{ID: "A", Matrix: core.ParseMatrix("#")}})
	Register("test-dup", "Dup", c)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate Register")
		}
	}()
	Register("test-dup", "Dup", c)
}

func TestListSortedWithInfo(t *testing.T) {
	c := core.MustCatalog([]core.Shape{
		{ID: "A", Matrix: core.ParseMatrix("##")},
		{ID: "B", Matrix: core.ParseMatrix("#.", "##")},
	})
	if err := Add("test-list-b", "B", "memory", c); err != nil {
		t.Fatal(err)
	}
	if err := Add("test-list-a", "A", "memory", c); err != nil {
		t.Fatal(err)
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}

	for _, info := range list {
		if info.ID == "test-list-a" {
			if info.Pieces != 2 || info.Cells != 5 || info.Source != "memory" {
				t.Errorf("unexpected info: %+v", info)
			}
			return
		}
	}
	t.Error("test-list-a missing from List()")
}

func TestAddRejectsEmpty(t *testing.T) {
	if err := Add("", "x", "memory", core.DefaultCatalog()); err == nil {
		t.Error("expected error for empty id")
	}
	if err := Add("test-nil", "x", "memory", nil); err == nil {
		t.Error("expected error for nil catalog")
	}
}
