// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const testStreamingCSV = `ID, Title ,Year,Age,Netflix,Prime.Video,Type
1,Toy Story ,1995,all,1,0,0
2,Heat,1995,18+,0,1,0
3,Unknown Film,2010,7+,1,1,0
4,Amélie,2001,16+,0,1,0
5,Heat,2020,18+,1,0,0
`

const testMetadataDat = "1::Toy Story (1995)::Animation|Children's|Comedy\n" +
	"6::Heat (1995)::Action|Crime|Thriller\n" +
	"7::Heat (1995)::Romance\n" +
	"\n" +
	"4973::Am\xe9lie (2001)::Comedy|Romance\n"

func writeSources(t *testing.T, streaming, metadata string) Sources {
	t.Helper()

	dir := t.TempDir()
	src := Sources{
		StreamingPath: filepath.Join(dir, "streaming_availability.csv"),
		MetadataPath:  filepath.Join(dir, "movies.dat"),
	}
	if err := os.WriteFile(src.StreamingPath, []byte(streaming), 0o600); err != nil {
		t.Fatalf("write streaming: %v", err)
	}
	if err := os.WriteFile(src.MetadataPath, []byte(metadata), 0o600); err != nil {
		t.Fatalf("write metadata: %v", err)
	}
	return src
}

func TestLoad(t *testing.T) {
	src := writeSources(t, testStreamingCSV, testMetadataDat)

	records, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("len(records) = %d, want 5 (left join keeps every streaming row)", len(records))
	}

	tests := []struct {
		idx        int
		title      string
		year       int
		netflix    bool
		prime      bool
		wantGenres []string
	}{
		{0, "Toy Story", 1995, true, false, []string{"Animation", "Children's", "Comedy"}},
		{1, "Heat", 1995, false, true, []string{"Action", "Crime", "Thriller"}},
		{2, "Unknown Film", 2010, true, true, []string{}},
		{3, "Amélie", 2001, false, true, []string{"Comedy", "Romance"}},
		{4, "Heat", 2020, true, false, []string{"Action", "Crime", "Thriller"}},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			r := records[tt.idx]
			if r.ID != tt.idx {
				t.Errorf("ID = %d, want %d", r.ID, tt.idx)
			}
			if r.Title != tt.title || r.Year != tt.year {
				t.Errorf("got %q/%d, want %q/%d", r.Title, r.Year, tt.title, tt.year)
			}
			if r.Netflix != tt.netflix || r.PrimeVideo != tt.prime {
				t.Errorf("flags = %v/%v, want %v/%v", r.Netflix, r.PrimeVideo, tt.netflix, tt.prime)
			}
			if got := r.Genres.Sorted(); !reflect.DeepEqual(got, tt.wantGenres) {
				t.Errorf("genres = %v, want %v", got, tt.wantGenres)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name       string
		streaming  string
		metadata   string
		wantSource string
		wantErr    error
		wantColumn string
		wantLine   int
	}{
		{
			name:       "missing Prime.Video column",
			streaming:  "Title,Year,Netflix\nHeat,1995,1\n",
			metadata:   testMetadataDat,
			wantSource: SourceStreaming,
			wantErr:    ErrMissingColumn,
			wantColumn: ColumnPrimeVideo,
			wantLine:   1,
		},
		{
			name:       "empty streaming file",
			streaming:  "",
			metadata:   testMetadataDat,
			wantSource: SourceStreaming,
			wantErr:    ErrMissingColumn,
			wantLine:   1,
		},
		{
			name:       "non numeric year",
			streaming:  "Title,Year,Netflix,Prime.Video\nHeat,1995,1,0\nAlien,nineteen,0,1\n",
			metadata:   testMetadataDat,
			wantSource: SourceStreaming,
			wantErr:    ErrInvalidValue,
			wantColumn: ColumnYear,
			wantLine:   3,
		},
		{
			name:       "bad platform flag",
			streaming:  "Title,Year,Netflix,Prime.Video\nHeat,1995,yes,0\n",
			metadata:   testMetadataDat,
			wantSource: SourceStreaming,
			wantErr:    ErrInvalidValue,
			wantColumn: ColumnNetflix,
			wantLine:   2,
		},
		{
			name:       "metadata line without genres",
			streaming:  testStreamingCSV,
			metadata:   "1::Toy Story (1995)::Comedy\n2::Jumanji (1995)\n",
			wantSource: SourceMetadata,
			wantErr:    ErrMalformedLine,
			wantLine:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := writeSources(t, tt.streaming, tt.metadata)

			records, err := Load(context.Background(), src)
			if err == nil {
				t.Fatalf("Load succeeded with %d records, want error", len(records))
			}
			if records != nil {
				t.Errorf("records = %v, want nil on failure", records)
			}

			var dle *DataLoadError
			if !errors.As(err, &dle) {
				t.Fatalf("error %T is not *DataLoadError: %v", err, err)
			}
			if dle.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", dle.Source, tt.wantSource)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
			if dle.Column != tt.wantColumn {
				t.Errorf("Column = %q, want %q", dle.Column, tt.wantColumn)
			}
			if dle.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", dle.Line, tt.wantLine)
			}
		})
	}
}

func TestLoadMissingFiles(t *testing.T) {
	src := writeSources(t, testStreamingCSV, testMetadataDat)

	t.Run("missing metadata file", func(t *testing.T) {
		s := src
		s.MetadataPath = filepath.Join(t.TempDir(), "nope.dat")
		_, err := Load(context.Background(), s)

		var dle *DataLoadError
		if !errors.As(err, &dle) || dle.Source != SourceMetadata {
			t.Fatalf("err = %v, want metadata DataLoadError", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("err = %v, want wrapped os.ErrNotExist", err)
		}
	})

	t.Run("unconfigured streaming path", func(t *testing.T) {
		s := src
		s.StreamingPath = ""
		_, err := Load(context.Background(), s)

		var dle *DataLoadError
		if !errors.As(err, &dle) || dle.Source != SourceStreaming {
			t.Fatalf("err = %v, want streaming DataLoadError", err)
		}
	})
}

func TestLoadCanceled(t *testing.T) {
	src := writeSources(t, testStreamingCSV, testMetadataDat)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, src)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	var dle *DataLoadError
	if !errors.As(err, &dle) {
		t.Fatalf("err = %T, want *DataLoadError", err)
	}
	if dle.Source != SourceStreaming || dle.Path != src.StreamingPath {
		t.Errorf("error labelled %s %q, want %s %q", dle.Source, dle.Path, SourceStreaming, src.StreamingPath)
	}
}

func TestLoadCanceledBeforeReading(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	missing := filepath.Join(t.TempDir(), "absent.csv")
	_, err := Load(ctx, Sources{StreamingPath: missing, MetadataPath: missing})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled before any file is opened", err)
	}
	if errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, streaming file should not have been opened", err)
	}
}

func TestJoinDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	streaming := []Record{{ID: 0, Title: "Heat"}, {ID: 1, Title: "Alien"}}
	joined := Join(streaming, map[string]GenreSet{"Heat": NewGenreSet("Action")})

	if streaming[0].Genres.Len() != 0 {
		t.Error("Join modified its input")
	}
	if joined[0].Genres.Len() != 1 || joined[1].Genres.Len() != 0 {
		t.Errorf("joined genres = %v / %v", joined[0].Genres.Sorted(), joined[1].Genres.Sorted())
	}
}

func TestDataLoadErrorMessage(t *testing.T) {
	t.Parallel()

	err := &DataLoadError{Source: SourceStreaming, Path: "a.csv", Line: 4, Column: "Year", Err: ErrInvalidValue}
	want := `load streaming data from a.csv line 4 column "Year": invalid value`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
