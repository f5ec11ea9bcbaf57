package contact_test

import (
	"testing"

	"github.com/zhouzirui/kontak/internal/model/contact"
)

func sampleFields(name, email, phone string, cat contact.Category) contact.Fields {
	return contact.Fields{Name: name, Email: email, Phone: phone, Category: cat}
}

func TestStoreAddAppends(t *testing.T) {
	store := contact.NewStore()

	first := store.Add(sampleFields("Ann Lee", "ann@x.com", "0812345678", contact.CategoryFriend))
	second := store.Add(sampleFields("Bob Tan", "bob@x.com", "0812345679", contact.CategoryWork))

	if first.ID == "" || second.ID == "" {
		t.Fatal("expected assigned ids")
	}
	if first.ID == second.ID {
		t.Fatalf("ids must be unique, both %s", first.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	list := store.List(contact.Filter{})
	if len(list) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(list))
	}
	if list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatal("insertion order not preserved")
	}
}

func TestStoreUpdate(t *testing.T) {
	store := contact.NewStore()
	c := store.Add(sampleFields("Ann Lee", "ann@x.com", "0812345678", contact.CategoryFriend))

	fields := sampleFields("Ann Lee", "ann@x.com", "0812345678", contact.CategoryWork)
	if !store.Update(c.ID, fields) {
		t.Fatal("expected update to find the contact")
	}

	got, ok := store.FindByID(c.ID)
	if !ok {
		t.Fatal("contact vanished after update")
	}
	if got.Category != contact.CategoryWork {
		t.Fatalf("category not updated: %s", got.Category)
	}
	if got.ID != c.ID || !got.CreatedAt.Equal(c.CreatedAt) {
		t.Fatal("id and CreatedAt must survive an update")
	}
}

func TestStoreUpdateMissingIDLeavesStoreUnchanged(t *testing.T) {
	store := contact.NewStore()
	store.Add(sampleFields("Ann Lee", "ann@x.com", "0812345678", contact.CategoryFriend))
	store.Add(sampleFields("Bob Tan", "bob@x.com", "0812345679", contact.CategoryWork))
	before := store.List(contact.Filter{})

	if store.Update("missing", sampleFields("X", "x@x.com", "0812345670", contact.CategoryOther)) {
		t.Fatal("expected update miss")
	}

	after := store.List(contact.Filter{})
	if len(after) != len(before) {
		t.Fatalf("store size changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("contact %d changed unexpectedly", i)
		}
	}
}

func TestStoreDeleteIdempotent(t *testing.T) {
	store := contact.NewStore()
	a := store.Add(sampleFields("Ann Lee", "ann@x.com", "0812345678", contact.CategoryFriend))
	b := store.Add(sampleFields("Bob Tan", "bob@x.com", "0812345679", contact.CategoryWork))

	store.Delete(a.ID)
	store.Delete(a.ID)

	list := store.List(contact.Filter{})
	if len(list) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(list))
	}
	if list[0].ID != b.ID {
		t.Fatal("wrong contact removed")
	}
}

func TestStoreListFilter(t *testing.T) {
	store := contact.NewStore()
	store.Add(sampleFields("Ana Maria", "ana@x.com", "0812345678", contact.CategoryWork))
	store.Add(sampleFields("Bob Tan", "bob@x.com", "0899999999", contact.CategoryWork))
	store.Add(sampleFields("Ana Lucia", "lucia@x.com", "0811111111", contact.CategoryFriend))

	work := store.List(contact.Filter{Category: "work"})
	if len(work) != 2 {
		t.Fatalf("expected 2 work contacts, got %d", len(work))
	}
	for _, c := range work {
		if c.Category != contact.CategoryWork {
			t.Fatalf("unexpected category %s", c.Category)
		}
	}

	both := store.List(contact.Filter{Category: "work", Search: "ana"})
	if len(both) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(both))
	}
	if both[0].Name != "Ana Maria" {
		t.Fatalf("unexpected match %s", both[0].Name)
	}
}

func TestStoreListSearchCaseInsensitiveAcrossFields(t *testing.T) {
	store := contact.NewStore()
	store.Add(sampleFields("Ann Lee", "ANN@X.COM", "0812345678", contact.CategoryFriend))

	for _, q := range []string{"ann", "ANN", "ann@x", "0812"} {
		if got := store.List(contact.Filter{Search: q}); len(got) != 1 {
			t.Fatalf("search %q: expected 1 hit, got %d", q, len(got))
		}
	}

	if got := store.List(contact.Filter{Search: "zz"}); len(got) != 0 {
		t.Fatalf("search zz: expected no hits, got %d", len(got))
	}
}

func TestStoreListDoesNotMutate(t *testing.T) {
	store := contact.NewStore()
	store.Add(sampleFields("Ann Lee", "ann@x.com", "0812345678", contact.CategoryFriend))

	filtered := store.List(contact.Filter{Search: "no-such-contact"})
	if len(filtered) != 0 {
		t.Fatalf("expected empty result, got %d", len(filtered))
	}
	if store.Len() != 1 {
		t.Fatalf("filtering mutated the store: len=%d", store.Len())
	}
}

func TestParseCategory(t *testing.T) {
	if _, ok := contact.ParseCategory("work"); !ok {
		t.Fatal("work must parse")
	}
	for _, raw := range []string{"", "Work", "WORK", "colleague"} {
		if _, ok := contact.ParseCategory(raw); ok {
			t.Fatalf("%q must not parse", raw)
		}
	}
}
