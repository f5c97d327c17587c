package core

import "testing"

func TestRegistry_AllSortedByPriority(t *testing.T) {
	withTestRegistry(t)

	all := All()
	want := []Category{CategoryBiometric, CategoryDemographic, CategoryEnrolment}
	if len(all) != len(want) {
		t.Fatalf("All() returned %d schemas, want %d", len(all), len(want))
	}
	for i, cat := range want {
		if all[i].Category != cat {
			t.Errorf("All()[%d] = %v, want %v", i, all[i].Category, cat)
		}
	}

	if SchemaCount() != 3 {
		t.Errorf("SchemaCount() = %d, want 3", SchemaCount())
	}
}

func TestRegistry_Get(t *testing.T) {
	withTestRegistry(t)

	schema, ok := Get(CategoryDemographic)
	if !ok || schema.Label != "Demographic updates" {
		t.Errorf("Get(demographic) = %+v, %v", schema, ok)
	}
	if _, ok := Get(CategoryUnknown); ok {
		t.Error("Get(unknown) should not be found")
	}
}

func TestRegistry_LowercasesMarkers(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(CategorySchema{
		Category: CategoryBiometric,
		Markers:  []Marker{{Kind: MatchContains, Token: "BIO_AGE"}},
	})

	schema, _ := Get(CategoryBiometric)
	if schema.Markers[0].Token != "bio_age" {
		t.Errorf("marker token = %q, want lowercase", schema.Markers[0].Token)
	}
}

func TestRegister_Panics(t *testing.T) {
	tests := []struct {
		name   string
		schema CategorySchema
	}{
		{name: "duplicate category", schema: testEnrolment},
		{name: "unknown category", schema: CategorySchema{Category: CategoryUnknown, Markers: testEnrolment.Markers}},
		{name: "no markers", schema: CategorySchema{Category: "other"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withTestRegistry(t)

			defer func() {
				if recover() == nil {
					t.Errorf("Register(%+v) did not panic", tt.schema)
				}
			}()
			Register(tt.schema)
		})
	}
}
