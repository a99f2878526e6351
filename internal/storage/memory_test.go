package storage

import "testing"

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory()

	if _, ok, _ := m.Get("missing"); ok {
		t.Error("missing key reported as present")
	}

	if err := m.Set("k", []byte("v1")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := m.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if string(value) != "v1" {
		t.Errorf("value = %s, want v1", value)
	}

	if err := m.Set("k", []byte("v2")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	value, _, _ = m.Get("k")
	if string(value) != "v2" {
		t.Errorf("value = %s, want v2", value)
	}
}

func TestMemory_CopiesValue(t *testing.T) {
	m := NewMemory()

	buf := []byte("original")
	m.Set("k", buf)
	buf[0] = 'X'

	value, _, _ := m.Get("k")
	if string(value) != "original" {
		t.Errorf("stored value aliased caller buffer: %s", value)
	}
}
