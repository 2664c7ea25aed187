package models

import (
	"testing"
)

func TestStringList_Contains(t *testing.T) {
	l := StringList{"Alice", "Bob"}

	if !l.Contains("Alice") {
		t.Error("Contains should find Alice")
	}
	if l.Contains("alice") {
		t.Error("Contains is case sensitive")
	}
	if l.Contains("Carol") {
		t.Error("Contains should not find Carol")
	}
}

func TestStringList_Remove(t *testing.T) {
	l := StringList{"Alice", "Bob", "Carol"}

	if !l.Remove("Bob") {
		t.Error("Remove should report true for a present name")
	}
	if len(l) != 2 || l.Contains("Bob") {
		t.Errorf("list after remove = %v, Bob should be gone", l)
	}

	if l.Remove("Dave") {
		t.Error("Remove should report false for an absent name")
	}
	if len(l) != 2 {
		t.Errorf("list length = %d, expected unchanged 2", len(l))
	}
}

func TestStringList_ScanValueRoundTrip(t *testing.T) {
	original := StringList{"Alice", "Bob"}

	v, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var decoded StringList
	if err := decoded.Scan(v); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(decoded) != 2 || decoded[0] != "Alice" || decoded[1] != "Bob" {
		t.Errorf("round trip = %v, expected %v", decoded, original)
	}
}

func TestStringList_ScanNil(t *testing.T) {
	var l StringList
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if len(l) != 0 {
		t.Errorf("Scan(nil) should leave the list empty, got %v", l)
	}
}

func TestStringList_ScanString(t *testing.T) {
	var l StringList
	if err := l.Scan(`["X","Y"]`); err != nil {
		t.Fatalf("Scan(string) error = %v", err)
	}
	if len(l) != 2 {
		t.Errorf("list = %v, expected two entries", l)
	}
}

func TestNilList_ValueEncodesEmptyArray(t *testing.T) {
	var l StringList
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("nil list Value() = %s, expected []", v)
	}
}

func TestCoordinates_RoundTrip(t *testing.T) {
	c := Coordinates{Lat: 56.8380, Lng: 60.6030}

	v, err := c.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var decoded Coordinates
	if err := decoded.Scan(v); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if decoded.Lat != c.Lat || decoded.Lng != c.Lng {
		t.Errorf("round trip = %+v, expected %+v", decoded, c)
	}
}

func TestPartnerRequestList_RoundTrip(t *testing.T) {
	original := PartnerRequestList{
		{NPOID: "npo-1", NPOName: "Green City", Message: "let's collaborate"},
	}

	v, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var decoded PartnerRequestList
	if err := decoded.Scan(v); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(decoded) != 1 || decoded[0].NPOID != "npo-1" || decoded[0].Message != "let's collaborate" {
		t.Errorf("round trip = %+v, expected %+v", decoded, original)
	}
}
