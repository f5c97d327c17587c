package core

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestOrderedMap_KeepsInsertionOrder(t *testing.T) {
	m := NewOrderedMap[int64]()
	m.Set("Odisha", 1)
	m.Set("Bihar", 2)
	m.Set("Assam", 3)
	m.Set("Odisha", 10)

	if got, want := m.Keys(), []string{"Odisha", "Bihar", "Assam"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := m.Get("Odisha"); v != 10 {
		t.Errorf("Get(Odisha) = %d, want 10", v)
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if want := `{"Odisha":10,"Bihar":2,"Assam":3}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestOrderedMap_EmptyMarshalsAsObject(t *testing.T) {
	data, err := json.Marshal(NewOrderedMap[string]())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Marshal() = %s, want {}", data)
	}
}

func TestOrderedMap_SortStable(t *testing.T) {
	m := NewOrderedMap[Score]()
	m.Set("A", 80)
	m.Set("B", 95.5)
	m.Set("C", 80)
	m.Set("D", 20)

	m.SortStable(func(a, b Score) bool { return a > b })

	if got, want := m.Keys(), []string{"B", "A", "C", "D"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() after sort = %v, want %v", got, want)
	}

	data, _ := json.Marshal(m)
	if want := `{"B":95.5,"A":80.0,"C":80.0,"D":20.0}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestOrderedMap_Nested(t *testing.T) {
	m := NewOrderedMap[*OrderedMap[int64]]()
	addCount(m.GetOrInit("Odisha", NewOrderedMap[int64]), "Cuttack", 100)
	addCount(m.GetOrInit("Bihar", NewOrderedMap[int64]), "Patna", 7)
	addCount(m.GetOrInit("Odisha", NewOrderedMap[int64]), "Puri", 3)
	addCount(m.GetOrInit("Odisha", NewOrderedMap[int64]), "Cuttack", 1)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if want := `{"Odisha":{"Cuttack":101,"Puri":3},"Bihar":{"Patna":7}}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestOrderedMap_UnmarshalJSON(t *testing.T) {
	var m OrderedMap[*OrderedMap[int64]]
	if err := json.Unmarshal([]byte(`{"Zeta":{"b":2,"a":1},"Alpha":{}}`), &m); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if got, want := m.Keys(), []string{"Zeta", "Alpha"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	inner, _ := m.Get("Zeta")
	if got, want := inner.Keys(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("inner Keys() = %v, want %v", got, want)
	}

	if err := json.Unmarshal([]byte(`[1,2]`), &m); err == nil {
		t.Error("Unmarshal(array) expected error")
	}
}
