package auth

import "testing"

func TestStaticStoreVerify(t *testing.T) {
	store, err := NewStaticStore("admin", "adminpass")
	if err != nil {
		t.Fatalf("NewStaticStore error: %v", err)
	}
	if !store.Verify("admin", "adminpass") {
		t.Fatalf("valid credentials rejected")
	}
	if store.Verify("admin", "wrong") {
		t.Fatalf("wrong password accepted")
	}
	if store.Verify("root", "adminpass") {
		t.Fatalf("wrong username accepted")
	}
	if store.Verify("", "") {
		t.Fatalf("empty credentials accepted")
	}
}
