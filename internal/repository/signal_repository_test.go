package repository

import "testing"

func TestToInt32(t *testing.T) {
	out := toInt32([]int{5, 10, 21})
	if len(out) != 3 || out[0] != 5 || out[1] != 10 || out[2] != 21 {
		t.Fatalf("unexpected conversion: %v", out)
	}
	if got := toInt32(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestNewClickHouseSignalStore(t *testing.T) {
	if s := NewClickHouseSignalStore(nil, "tradescout"); s == nil {
		t.Fatalf("expected store instance")
	}
}
