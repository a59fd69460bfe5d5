package catalog

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func testItems() []Item {
	return []Item{
		{ID: 1, Name: "Vintage Leather Backpack", Description: "Handcrafted full-grain leather backpack with brass hardware", Category: CategoryFashion, Price: decimal.RequireFromString("189.99"), Rating: 4.8},
		{ID: 2, Name: "Organic Herbal Tea Collection", Description: "Loose-leaf blend with chamomile and mint", Category: CategoryFood, Price: decimal.RequireFromString("24.99"), Rating: 4.9},
		{ID: 3, Name: "Handmade Ceramic Plant Pot", Description: "Artisan pot for succulents", Category: CategoryHome, Price: decimal.RequireFromString("39.99"), Rating: 4.7},
		{ID: 4, Name: "Yoga Mat Premium", Description: "Non-slip mat with RED alignment lines", Category: CategorySports, Price: decimal.RequireFromString("79.99"), Rating: 4.6},
		{ID: 5, Name: "bamboo Cutting Board Set", Description: "Sustainable boards in three sizes", Category: CategoryHome, Price: decimal.RequireFromString("59.99"), Rating: 4.8},
	}
}

func ids(items []Item) []uint {
	out := make([]uint, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestFilterAndSort_NoopCriteriaSortsByName(t *testing.T) {
	items := testItems()
	got := FilterAndSort(items, DefaultCriteria())

	if len(got) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(got))
	}
	// Collation compares letters before case, so lower-case "bamboo" still sorts first.
	want := []uint{5, 3, 2, 1, 4}
	if !slices.Equal(ids(got), want) {
		t.Errorf("order = %v, want %v", ids(got), want)
	}
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	items := testItems()
	before := ids(items)

	_ = FilterAndSort(items, FilterCriteria{Sort: SortPriceHigh, Category: CategoryAll})

	if !slices.Equal(ids(items), before) {
		t.Errorf("input reordered: %v, was %v", ids(items), before)
	}
}

func TestFilterAndSort_ReturnsFreshSlice(t *testing.T) {
	items := testItems()
	first := FilterAndSort(items, DefaultCriteria())
	first[0].Name = "changed"

	second := FilterAndSort(items, DefaultCriteria())
	if second[0].Name == "changed" {
		t.Error("results should not share backing storage")
	}
}

func TestFilterAndSort_Category(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     []uint
	}{
		{"home only", CategoryHome, []uint{5, 3}},
		{"no matches", CategoryElectronics, []uint{}},
		{"unknown category", Category("Garden Gnomes"), []uint{}},
		{"empty means all", "", []uint{5, 3, 2, 1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAndSort(testItems(), FilterCriteria{Category: tt.category})
			if !slices.Equal(ids(got), tt.want) {
				t.Errorf("ids = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilterAndSort_SearchIsCaseInsensitive(t *testing.T) {
	upper := FilterAndSort(testItems(), FilterCriteria{Search: "RED", Category: CategoryAll})
	lower := FilterAndSort(testItems(), FilterCriteria{Search: "red", Category: CategoryAll})

	if !slices.Equal(ids(upper), ids(lower)) {
		t.Errorf("RED = %v, red = %v", ids(upper), ids(lower))
	}
	if len(lower) != 1 || lower[0].ID != 4 {
		t.Errorf("expected only the yoga mat (description match), got %v", ids(lower))
	}
}

func TestFilterAndSort_SearchMatchesNameOrDescription(t *testing.T) {
	got := FilterAndSort(testItems(), FilterCriteria{Search: "leather", Category: CategoryAll})
	if !slices.Equal(ids(got), []uint{1}) {
		t.Errorf("ids = %v, want [1]", ids(got))
	}

	got = FilterAndSort(testItems(), FilterCriteria{Search: "succulents", Category: CategoryAll})
	if !slices.Equal(ids(got), []uint{3}) {
		t.Errorf("ids = %v, want [3]", ids(got))
	}
}

func TestFilterAndSort_SearchAndCategoryCombine(t *testing.T) {
	got := FilterAndSort(testItems(), FilterCriteria{Search: "pot", Category: CategoryFood})
	if len(got) != 0 {
		t.Errorf("expected no results, got %v", ids(got))
	}
}

func TestFilterAndSort_SortKeys(t *testing.T) {
	tests := []struct {
		sort SortKey
		want []uint
	}{
		{SortPriceLow, []uint{2, 3, 5, 4, 1}},
		{SortPriceHigh, []uint{1, 4, 5, 3, 2}},
		{SortName, []uint{5, 3, 2, 1, 4}},
		{SortKey("bogus"), []uint{5, 3, 2, 1, 4}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			got := FilterAndSort(testItems(), FilterCriteria{Category: CategoryAll, Sort: tt.sort})
			if !slices.Equal(ids(got), tt.want) {
				t.Errorf("ids = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilterAndSort_Rating(t *testing.T) {
	got := FilterAndSort(testItems(), FilterCriteria{Category: CategoryAll, Sort: SortRating})
	for i := 1; i < len(got); i++ {
		if got[i-1].Rating < got[i].Rating {
			t.Fatalf("not descending at %d: %v then %v", i, got[i-1].Rating, got[i].Rating)
		}
	}
	if got[0].ID != 2 {
		t.Errorf("highest rated should be first, got %d", got[0].ID)
	}
}

func TestFilterAndSort_MugScarfScenario(t *testing.T) {
	items := []Item{
		{ID: 1, Name: "Mug", Price: decimal.NewFromInt(10), Category: "Home", Rating: 4.5},
		{ID: 2, Name: "Scarf", Price: decimal.NewFromInt(25), Category: "Fashion", Rating: 4.8},
	}
	criteria := FilterCriteria{Search: "", Category: CategoryAll, Sort: SortPriceLow}

	got := FilterAndSort(items, criteria)
	if len(got) != 2 || got[0].Name != "Mug" || got[1].Name != "Scarf" {
		t.Errorf("got %v, want [Mug Scarf]", got)
	}
}

func TestFilterAndSort_EmptyInput(t *testing.T) {
	got := FilterAndSort(nil, DefaultCriteria())
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want SortKey
	}{
		{"price-low", SortPriceLow},
		{" PRICE-HIGH ", SortPriceHigh},
		{"rating", SortRating},
		{"", SortName},
		{"cheapest", SortName},
	}
	for _, tt := range tests {
		if got := ParseSortKey(tt.in); got != tt.want {
			t.Errorf("ParseSortKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"", CategoryAll},
		{"all", CategoryAll},
		{"home & garden", CategoryHome},
		{"Toys", Category("Toys")},
	}
	for _, tt := range tests {
		if got := ParseCategory(tt.in); got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if Category("Toys").IsKnown() {
		t.Error("Toys should not be a known category")
	}
}

func TestCycling(t *testing.T) {
	if got := NextSortKey(SortRating); got != SortName {
		t.Errorf("NextSortKey(rating) = %q, want wrap to name", got)
	}
	if got := NextSortKey(SortName); got != SortPriceLow {
		t.Errorf("NextSortKey(name) = %q, want price-low", got)
	}
	if got := NextCategory(CategoryElectronics); got != CategoryAll {
		t.Errorf("NextCategory(Electronics) = %q, want wrap to All", got)
	}
	if got := NextCategory(Category("Toys")); got != CategoryAll {
		t.Errorf("NextCategory(unknown) = %q, want All", got)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		visible, total int
		want           string
	}{
		{3, 8, "Showing 3 of 8 products"},
		{1, 1, "Showing 1 of 1 products"},
		{0, 0, "Showing 0 of 0 products"},
	}
	for _, tt := range tests {
		if got := Summary(tt.visible, tt.total); got != tt.want {
			t.Errorf("Summary(%d, %d) = %q, want %q", tt.visible, tt.total, got, tt.want)
		}
	}
}
