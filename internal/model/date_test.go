package model

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2024-06-01" {
		t.Errorf("expected 2024-06-01, got %q", d.String())
	}

	for _, invalid := range []string{"", "2024-6-1", "01-06-2024", "not-a-date"} {
		if _, err := ParseDate(invalid); err == nil {
			t.Errorf("ParseDate(%q) should fail", invalid)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	early, _ := ParseDate("2024-06-01")
	late, _ := ParseDate("2024-06-05")

	if !early.Before(late) {
		t.Error("expected 2024-06-01 before 2024-06-05")
	}
	if early.After(late) {
		t.Error("2024-06-01 should not be after 2024-06-05")
	}
	if late.After(late) {
		t.Error("a date should not be after itself")
	}
	if !early.Equal(early) {
		t.Error("a date should equal itself")
	}
}

func TestDateJSON(t *testing.T) {
	d, _ := ParseDate("2024-06-01")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2024-06-01"` {
		t.Errorf("expected \"2024-06-01\", got %s", data)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.Equal(d) {
		t.Errorf("round trip changed date: %v != %v", decoded, d)
	}

	// Empty strings and null decode to the zero date.
	for _, raw := range []string{`""`, `null`} {
		var zero Date
		if err := json.Unmarshal([]byte(raw), &zero); err != nil {
			t.Errorf("Unmarshal(%s): %v", raw, err)
		}
		if !zero.IsZero() {
			t.Errorf("Unmarshal(%s) should produce the zero date", raw)
		}
	}

	if err := json.Unmarshal([]byte(`"garbage"`), &decoded); err == nil {
		t.Error("expected error for garbage date")
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan("2024-06-01"); err != nil {
		t.Fatalf("Scan(string): %v", err)
	}
	if d.String() != "2024-06-01" {
		t.Errorf("expected 2024-06-01, got %q", d.String())
	}

	if err := d.Scan([]byte("2024-06-02")); err != nil {
		t.Fatalf("Scan([]byte): %v", err)
	}
	if d.String() != "2024-06-02" {
		t.Errorf("expected 2024-06-02, got %q", d.String())
	}

	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}
