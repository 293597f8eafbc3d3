package query

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/bastiangx/arena/pkg/catalog"
)

func sampleDataset() catalog.Dataset {
	return catalog.NewDataset([]catalog.GameRecord{
		{Title: "LittleBigPlanet PS Vita", Platform: "PlayStation Vita", Score: 9, Genre: "Platformer", EditorsChoice: "Y"},
		{Title: "Halo", Platform: "Xbox", Score: 9, Genre: "FPS", EditorsChoice: "Y"},
		{Title: "Splice: Tree of Life", Platform: "iPad", Score: 8.5, Genre: "Puzzle", EditorsChoice: "N"},
		{Title: "Halo", Platform: "PC", Score: 7, Genre: "Shooter", EditorsChoice: "N"},
		{Platform: "Wii", Score: 10, Untitled: true},
		{Title: "NHL 13", Platform: "Xbox 360", Score: 8.5, Genre: "Sports", EditorsChoice: "N"},
		{Title: "halo", Platform: "Mac", Score: 5, Genre: "FPS"},
		{Title: "Halo", Platform: "PC", Score: 1, Genre: "FPS"},
	})
}

func titles(games []catalog.GroupedGame) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Title
	}
	return out
}

func TestGroupingPreservesFirstOccurrence(t *testing.T) {
	ds := catalog.NewDataset([]catalog.GameRecord{
		{Title: "A", Platform: "PC"},
		{Title: "B", Platform: "X"},
		{Title: "A", Platform: "PS"},
	})

	got := Filter(ds, "")
	want := []catalog.GroupedGame{
		{Title: "A", Platforms: []string{"PC", "PS"}},
		{Title: "B", Platforms: []string{"X"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter = %+v, want %+v", got, want)
	}

	sugg := Suggestions(ds, "")
	wantSugg := []catalog.Suggestion{
		{Title: "A", Platforms: []string{"PC", "PS"}},
		{Title: "B", Platforms: []string{"X"}},
	}
	if !reflect.DeepEqual(sugg, wantSugg) {
		t.Errorf("Suggestions = %+v, want %+v", sugg, wantSugg)
	}
}

func TestFilterFirstRecordWins(t *testing.T) {
	got := Filter(sampleDataset(), "halo")
	if len(got) != 2 {
		t.Fatalf("expected Halo and halo as separate groups, got %v", titles(got))
	}
	halo := got[0]
	if halo.Title != "Halo" || halo.Score != 9 || halo.Genre != "FPS" || halo.EditorsChoice != "Y" {
		t.Errorf("first record must win: %+v", halo)
	}
	if !reflect.DeepEqual(halo.Platforms, []string{"Xbox", "PC", "PC"}) {
		t.Errorf("platforms should keep dataset order and duplicates: %v", halo.Platforms)
	}
	if got[1].Title != "halo" {
		t.Errorf("grouping key is case-sensitive, got %v", titles(got))
	}
}

func TestFilterContainmentLaw(t *testing.T) {
	ds := sampleDataset()
	for _, term := range []string{"h", "HAL", "o", "Tree", "13", "vita", " "} {
		for _, g := range Filter(ds, term) {
			if !strings.Contains(strings.ToLower(g.Title), strings.ToLower(term)) {
				t.Errorf("term %q matched %q", term, g.Title)
			}
		}
	}
}

func TestFilterEmptyTermGroupsEveryTitle(t *testing.T) {
	ds := sampleDataset()
	distinct := map[string]bool{}
	for _, rec := range ds.Records() {
		if !rec.Untitled {
			distinct[rec.Title] = true
		}
	}

	got := Filter(ds, "")
	if len(got) != len(distinct) {
		t.Fatalf("expected %d groups, got %d: %v", len(distinct), len(got), titles(got))
	}
	seen := map[string]bool{}
	for _, g := range got {
		if seen[g.Title] {
			t.Errorf("title %q grouped twice", g.Title)
		}
		seen[g.Title] = true
	}
	if !reflect.DeepEqual(Filter(ds, ""), got) {
		t.Error("grouping should be deterministic")
	}
}

func TestUntitledRecordsNeverMatch(t *testing.T) {
	ds := catalog.NewDataset([]catalog.GameRecord{{Platform: "PC", Untitled: true}})
	if got := Filter(ds, ""); len(got) != 0 {
		t.Errorf("untitled record matched: %+v", got)
	}
	if got := Suggestions(ds, ""); len(got) != 0 {
		t.Errorf("untitled record suggested: %+v", got)
	}
}

func TestNoResults(t *testing.T) {
	if got := Filter(sampleDataset(), "zelda"); len(got) != 0 {
		t.Errorf("expected no results, got %v", titles(got))
	}
	if got := View(catalog.Dataset{}, "", SortAsc); len(got) != 0 {
		t.Errorf("expected no results on empty dataset, got %v", titles(got))
	}
}

func TestSortLaws(t *testing.T) {
	ds := sampleDataset()
	base := Filter(ds, "")

	asc := View(ds, "", SortAsc)
	for i := 1; i < len(asc); i++ {
		if asc[i-1].Score > asc[i].Score {
			t.Errorf("asc not non-decreasing at %d: %v > %v", i, asc[i-1].Score, asc[i].Score)
		}
	}

	desc := View(ds, "", SortDesc)
	for i := 1; i < len(desc); i++ {
		if desc[i-1].Score < desc[i].Score {
			t.Errorf("desc not non-increasing at %d: %v < %v", i, desc[i-1].Score, desc[i].Score)
		}
	}

	if none := View(ds, "", SortNone); !reflect.DeepEqual(none, base) {
		t.Errorf("none should keep grouped order: %v vs %v", titles(none), titles(base))
	}
}

func TestSortIsStableAndPure(t *testing.T) {
	games := []catalog.GroupedGame{
		{Title: "first", Score: 9},
		{Title: "low", Score: 2},
		{Title: "second", Score: 9},
		{Title: "third", Score: 9},
	}
	snapshot := fmt.Sprint(titles(games))

	if got := titles(Sort(games, SortDesc)); !reflect.DeepEqual(got, []string{"first", "second", "third", "low"}) {
		t.Errorf("desc ties out of order: %v", got)
	}
	if got := titles(Sort(games, SortAsc)); !reflect.DeepEqual(got, []string{"low", "first", "second", "third"}) {
		t.Errorf("asc ties out of order: %v", got)
	}
	if fmt.Sprint(titles(games)) != snapshot {
		t.Error("Sort modified its input")
	}
}

func TestParseSortPolicy(t *testing.T) {
	for _, in := range []string{"", "asc", "desc"} {
		p, err := ParseSortPolicy(in)
		if err != nil || string(p) != in {
			t.Errorf("ParseSortPolicy(%q) = %q, %v", in, p, err)
		}
	}
	for _, in := range []string{"ASC", "up", "none"} {
		if _, err := ParseSortPolicy(in); err == nil {
			t.Errorf("ParseSortPolicy(%q) should fail", in)
		}
	}
}

func TestSortPolicyCycle(t *testing.T) {
	p := SortNone
	var seen []SortPolicy
	for i := 0; i < 3; i++ {
		p = p.Next()
		seen = append(seen, p)
	}
	if !reflect.DeepEqual(seen, []SortPolicy{SortAsc, SortDesc, SortNone}) {
		t.Errorf("unexpected cycle: %v", seen)
	}
	if SortNone.Label() != "Sort by score" {
		t.Errorf("unexpected label %q", SortNone.Label())
	}
}

func TestHaloEndToEnd(t *testing.T) {
	raw := []byte(`[
		{"sentinel": true},
		{"title": "Halo", "platform": "Xbox", "score": 9, "genre": "FPS", "editors_choice": "Y"},
		{"title": "Halo", "platform": "PC", "score": 9, "genre": "FPS", "editors_choice": "Y"}
	]`)
	ds, err := catalog.ParseDataset(raw)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected working set of 2, got %d", ds.Len())
	}

	got := View(ds, "hal", SortNone)
	want := []catalog.GroupedGame{{
		Title:         "Halo",
		Platforms:     []string{"Xbox", "PC"},
		Score:         9,
		Genre:         "FPS",
		EditorsChoice: "Y",
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("View = %+v, want %+v", got, want)
	}
	if !got[0].IsEditorsChoice() {
		t.Error("expected editor's choice marker")
	}
}
