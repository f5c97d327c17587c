package core

// aggregate.go folds one table into the Summary.
//
// Aggregation is staged: every delta a file produces is computed into a
// contribution first, and only a fully computed contribution is applied.
// Applying cannot fail, so a file either lands completely or not at all.

import (
	"errors"
	"fmt"
	"math"
)

// ErrCountOverflow is returned when a running total exceeds int64.
var ErrCountOverflow = errors.New("count overflow")

// Binding resolves a schema's columns against one table's header.
type Binding struct {
	Schema   CategorySchema
	state    int
	district int
	counts   []int // position of each Schema.Counts entry
}

// BindSchema locates the location and count columns for schema in header.
// A missing count column yields an error wrapping ErrMissingColumn.
func BindSchema(schema CategorySchema, header HeaderIndex) (*Binding, error) {
	if err := ValidateHeaders(header, []string{"state", "district"}); err != nil {
		return nil, err
	}

	b := &Binding{
		Schema:   schema,
		state:    header["state"],
		district: header["district"],
		counts:   make([]int, len(schema.Counts)),
	}

	var names []string
	for _, spec := range schema.Counts {
		names = append(names, spec.Name)
	}
	if err := ValidateHeaders(header, names); err != nil {
		return nil, fmt.Errorf("%s: %w", schema.Label, err)
	}

	for i, spec := range schema.Counts {
		b.counts[i] = header[spec.Name]
	}
	return b, nil
}

// AggregateResult describes an applied contribution.
type AggregateResult struct {
	Rows         int   // Non-empty rows folded in
	Total        int64 // Sum of every count cell
	InvalidCells int   // Non-numeric count cells treated as zero
}

// contribution is everything one file adds to a Summary.
type contribution struct {
	category       Category
	total          int64
	ages           AgeCounts
	states         *OrderedMap[int64]
	districts      *OrderedMap[*OrderedMap[int64]]
	districtTotals *OrderedMap[int64]
	rows           int
	invalidCells   int
}

// stage computes the contribution of a normalized table without touching
// any Summary.
func (b *Binding) stage(t Table) (*contribution, error) {
	c := &contribution{
		category:       b.Schema.Category,
		states:         NewOrderedMap[int64](),
		districts:      NewOrderedMap[*OrderedMap[int64]](),
		districtTotals: NewOrderedMap[int64](),
	}
	subtotals := make([]int64, len(b.counts))

	for rowNum, row := range t.Rows {
		if IsEmptyRow(row) {
			continue
		}

		var rowTotal int64
		for i, pos := range b.counts {
			v, ok := ParseCount(cell(row, pos))
			if !ok {
				c.invalidCells++
			}

			var err error
			if subtotals[i], err = addChecked(subtotals[i], v); err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", rowNum+1, b.Schema.Counts[i].Name, err)
			}
			if rowTotal, err = addChecked(rowTotal, v); err != nil {
				return nil, fmt.Errorf("row %d: %w", rowNum+1, err)
			}
		}

		state := cell(row, b.state)
		district := cell(row, b.district)

		addCount(c.states, state, rowTotal)
		byDistrict := c.districts.GetOrInit(state, NewOrderedMap[int64])
		addCount(byDistrict, district, rowTotal)
		addCount(c.districtTotals, district, rowTotal)
		c.rows++
	}

	for i, spec := range b.Schema.Counts {
		var err error
		if c.total, err = addChecked(c.total, subtotals[i]); err != nil {
			return nil, fmt.Errorf("%s total: %w", b.Schema.Label, err)
		}
		c.ages.add(spec.Bucket, subtotals[i])
	}

	return c, nil
}

// apply folds a staged contribution into s. It never fails.
func (c *contribution) apply(s *Summary) {
	switch c.category {
	case CategoryEnrolment:
		s.TotalEnrolments += c.total
	case CategoryBiometric:
		s.TotalUpdates += c.total
		s.BiometricUpdates += c.total
	case CategoryDemographic:
		s.TotalUpdates += c.total
		s.DemographicUpdates += c.total
	}
	s.AgeCounts.merge(c.ages)

	c.states.Each(func(state string, n int64) {
		addCount(s.StateCounts, state, n)
	})
	c.districts.Each(func(state string, districts *OrderedMap[int64]) {
		target := s.DistrictCounts.GetOrInit(state, NewOrderedMap[int64])
		districts.Each(func(district string, n int64) {
			addCount(target, district, n)
		})
	})
	c.districtTotals.Each(func(district string, n int64) {
		totals, _ := s.districtTotals.Get(district)
		totals.add(c.category, n)
		s.districtTotals.Set(district, totals)
	})
}

// Aggregate folds a normalized table into s using schema. On error s is
// left untouched.
func Aggregate(s *Summary, schema CategorySchema, t Table, header HeaderIndex) (AggregateResult, error) {
	b, err := BindSchema(schema, header)
	if err != nil {
		return AggregateResult{}, err
	}

	c, err := b.stage(t)
	if err != nil {
		return AggregateResult{}, err
	}

	c.apply(s)
	return AggregateResult{Rows: c.rows, Total: c.total, InvalidCells: c.invalidCells}, nil
}

func addChecked(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrCountOverflow
	}
	return a + b, nil
}
