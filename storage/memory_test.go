package storage

import (
	"errors"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	if _, found, err := m.ReadRecord("slot"); err != nil || found {
		t.Fatalf("Expected absent record, got found=%v err=%v", found, err)
	}

	blob := []byte(`{"loopCount":2}`)
	if err := m.WriteRecord("slot", blob); err != nil {
		t.Fatalf("write: %v", err)
	}
	blob[0] = 'X'

	got, found, err := m.ReadRecord("slot")
	if err != nil || !found {
		t.Fatalf("Expected record, got found=%v err=%v", found, err)
	}
	if string(got) != `{"loopCount":2}` {
		t.Errorf("Expected stored copy isolated from caller buffer, got %q", got)
	}

	if err := m.DeleteRecord("slot"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := m.ReadRecord("slot"); found {
		t.Error("Expected record gone after delete")
	}
}

func TestMemoryFailWrites(t *testing.T) {
	m := NewMemory()
	_ = m.WriteRecord("slot", []byte("old"))

	m.FailWrites(ErrQuotaExceeded)
	if err := m.WriteRecord("slot", []byte("new")); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("Expected quota error, got %v", err)
	}
	got, _, _ := m.ReadRecord("slot")
	if string(got) != "old" {
		t.Errorf("Expected failed write to keep old record, got %q", got)
	}

	m.FailWrites(nil)
	if err := m.WriteRecord("slot", []byte("new")); err != nil {
		t.Errorf("Expected writes restored, got %v", err)
	}
}

func TestMemoryQuota(t *testing.T) {
	m := NewMemory()
	m.SetQuota(10)

	if err := m.WriteRecord("a", []byte("123456")); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if err := m.WriteRecord("b", []byte("123456")); !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("Expected quota exceeded for b, got %v", err)
	}
	if err := m.WriteRecord("a", []byte("1234567890")); err != nil {
		t.Errorf("Expected overwrite within quota, got %v", err)
	}

	keys, _ := m.ListRecords()
	if len(keys) != 1 || keys[0] != "a" {
		t.Errorf("Expected [a], got %v", keys)
	}
}
