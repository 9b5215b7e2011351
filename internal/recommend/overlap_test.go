// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

func rec(id int, title string, genres ...string) catalog.Record {
	return catalog.Record{ID: id, Title: title, Year: 2000, Genres: catalog.NewGenreSet(genres...)}
}

func abcd() []catalog.Record {
	return []catalog.Record{
		rec(0, "A", "Action", "Drama"),
		rec(1, "B", "Action"),
		rec(2, "C", "Comedy"),
		rec(3, "D", "Action", "Drama", "Thriller"),
	}
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records []catalog.Record
		chosen  string
		topN    int
		want    []string
	}{
		{
			name:    "scores descending",
			records: abcd(),
			chosen:  "A",
			topN:    2,
			want:    []string{"D", "B"},
		},
		{
			name:    "topN larger than candidates",
			records: abcd(),
			chosen:  "A",
			topN:    10,
			want:    []string{"D", "B"},
		},
		{
			name:    "topN truncates",
			records: abcd(),
			chosen:  "A",
			topN:    1,
			want:    []string{"D"},
		},
		{
			name: "ties keep input order",
			records: []catalog.Record{
				rec(0, "X", "Drama"),
				rec(1, "P", "Drama"),
				rec(2, "Q", "Drama", "Comedy"),
				rec(3, "R", "Drama"),
			},
			chosen: "X",
			topN:   3,
			want:   []string{"P", "Q", "R"},
		},
		{
			name: "higher score jumps ahead of earlier ties",
			records: []catalog.Record{
				rec(0, "X", "Drama", "War"),
				rec(1, "P", "Drama"),
				rec(2, "Q", "Drama", "War"),
				rec(3, "R", "War"),
			},
			chosen: "X",
			topN:   3,
			want:   []string{"Q", "P", "R"},
		},
		{
			name:    "no shared genres",
			records: []catalog.Record{rec(0, "A", "Action"), rec(1, "C", "Comedy"), rec(2, "H", "Horror")},
			chosen:  "A",
			topN:    5,
			want:    []string{},
		},
		{
			name:    "chosen title without genres",
			records: []catalog.Record{rec(0, "A"), rec(1, "B", "Action")},
			chosen:  "A",
			topN:    5,
			want:    []string{},
		},
		{
			name: "duplicate titles use first record and are excluded",
			records: []catalog.Record{
				rec(0, "Heat", "Action", "Crime"),
				rec(1, "Heat", "Romance"),
				rec(2, "Ronin", "Action"),
				rec(3, "Notebook", "Romance"),
			},
			chosen: "Heat",
			topN:   5,
			want:   []string{"Ronin"},
		},
		{
			name: "duplicate candidate titles are listed separately",
			records: []catalog.Record{
				rec(0, "A", "Action"),
				rec(1, "B", "Action"),
				rec(2, "B", "Action"),
			},
			chosen: "A",
			topN:   5,
			want:   []string{"B", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Recommend(tt.records, tt.chosen, tt.topN)
			if err != nil {
				t.Fatalf("Recommend: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Recommend = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRankScores(t *testing.T) {
	t.Parallel()

	matches, err := Rank(abcd(), "A", 5)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len = %d, want 2", len(matches))
	}
	if matches[0].Record.ID != 3 || matches[0].Score != 2 {
		t.Errorf("first = %+v, want D with score 2", matches[0])
	}
	if matches[1].Record.ID != 1 || matches[1].Score != 1 {
		t.Errorf("second = %+v, want B with score 1", matches[1])
	}
}

func TestRecommendInvariantViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records []catalog.Record
		chosen  string
		topN    int
	}{
		{"title absent", abcd(), "Z", 3},
		{"case mismatch", abcd(), "a", 3},
		{"empty records", nil, "A", 3},
		{"zero topN", abcd(), "A", 0},
		{"negative topN", abcd(), "A", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Recommend(tt.records, tt.chosen, tt.topN)
			if err == nil {
				t.Fatalf("Recommend = %v, want invariant violation", got)
			}
			if !errors.Is(err, ErrInvariant) {
				t.Errorf("err = %v, want ErrInvariant", err)
			}
			var iv *InvariantViolation
			if !errors.As(err, &iv) || iv.Title != tt.chosen {
				t.Errorf("err = %#v, want *InvariantViolation for %q", err, tt.chosen)
			}
			if got != nil {
				t.Errorf("result = %v, want nil on violation", got)
			}
		})
	}
}

func TestRecommendProperties(t *testing.T) {
	t.Parallel()

	records := []catalog.Record{
		rec(0, "Heat", "Action", "Crime", "Thriller"),
		rec(1, "Ronin", "Action", "Thriller"),
		rec(2, "Collateral", "Crime", "Drama", "Thriller"),
		rec(3, "Up", "Animation", "Comedy"),
		rec(4, "Sicario", "Action", "Crime", "Drama"),
		rec(5, "Thief", "Crime"),
	}
	snapshot := make([]catalog.Record, len(records))
	copy(snapshot, records)

	for _, topN := range []int{1, 2, 3, 10} {
		first, err := Recommend(records, "Heat", topN)
		if err != nil {
			t.Fatalf("Recommend: %v", err)
		}
		second, _ := Recommend(records, "Heat", topN)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("topN=%d not idempotent: %v vs %v", topN, first, second)
		}
		if len(first) > topN || len(first) > 4 {
			t.Errorf("topN=%d returned %d titles", topN, len(first))
		}
		for _, title := range first {
			if title == "Heat" {
				t.Errorf("topN=%d result contains the chosen title", topN)
			}
		}
	}

	if !reflect.DeepEqual(records, snapshot) {
		t.Error("Recommend modified its input")
	}
}

func TestRecommendMonotonicity(t *testing.T) {
	t.Parallel()

	records := []catalog.Record{
		rec(0, "Base", "Action", "Crime", "Drama"),
		rec(1, "P", "Action", "Crime"),
		rec(2, "Q", "Action"),
		rec(3, "R", "Drama"),
	}

	before, err := Recommend(records, "Base", 3)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !reflect.DeepEqual(before, []string{"P", "Q", "R"}) {
		t.Fatalf("before = %v", before)
	}

	boosted := append([]catalog.Record(nil), records...)
	boosted[3] = rec(3, "R", "Drama", "Crime", "Action")

	after, err := Recommend(boosted, "Base", 3)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !reflect.DeepEqual(after, []string{"R", "P", "Q"}) {
		t.Errorf("after boosting R = %v, want [R P Q]", after)
	}
}
