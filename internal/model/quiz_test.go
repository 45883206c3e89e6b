package model

import (
	"encoding/json"
	"testing"
)

func TestAnswerMapMarshal(t *testing.T) {
	data, err := json.Marshal(AnswerMap{12: 1, 7: 0})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("remarshal check failed: %v", err)
	}
	if len(raw) != 2 || raw["12"] != 1 || raw["7"] != 0 {
		t.Fatalf("expected string-keyed object, got %s", data)
	}
}

func TestAnswerMapUnmarshal(t *testing.T) {
	var m AnswerMap
	if err := json.Unmarshal([]byte(`{"12": 1, "7": 2}`), &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(m) != 2 || m[12] != 1 || m[7] != 2 {
		t.Fatalf("unexpected map: %v", m)
	}

	if err := json.Unmarshal([]byte(`{"abc": 1}`), &m); err == nil {
		t.Fatal("expected non-numeric key to be rejected")
	}
}

func TestAnswerMapClone(t *testing.T) {
	orig := AnswerMap{1: 0}
	clone := orig.Clone()
	clone[1] = 2
	clone[5] = 1
	if orig[1] != 0 || len(orig) != 1 {
		t.Fatalf("clone shares storage with original: %v", orig)
	}
}

func TestCoursePriceDecode(t *testing.T) {
	var c Course
	if err := json.Unmarshal([]byte(`{"id": 1, "title": "T", "price": "19.90"}`), &c); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if c.Price != 19.90 {
		t.Fatalf("expected decimal-string price decoded, got %v", c.Price)
	}
}
