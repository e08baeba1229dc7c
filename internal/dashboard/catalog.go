package dashboard

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"
)

// WidgetID identifies one widget in the catalog.
type WidgetID string

const (
	WidgetTotalConsumption       WidgetID = "total-consumption"
	WidgetNaturalGasTEP          WidgetID = "total-natural-gas-consumption-tep"
	WidgetCarbonFootprint        WidgetID = "total-carbon-footprint"
	WidgetNaturalGasSm3          WidgetID = "total-natural-gas-consumption-sm3"
	WidgetSteamConsumption       WidgetID = "total-steam-consumption"
	WidgetElectricityConsumption WidgetID = "total-electricity-consumption"
	WidgetHotWaterConsumption    WidgetID = "total-hot-water-consumption"
	WidgetWaterConsumption       WidgetID = "total-water-consumption"
	WidgetElectricityProduction  WidgetID = "total-electricity-production"
	WidgetMultiSeriesChart       WidgetID = "multi-series-chart"
	WidgetDepartmentConsumption  WidgetID = "department-consumption"
	WidgetCapacitiveLoad         WidgetID = "capacitive-load"
)

// WidgetKind tells the presentation layer which renderer a widget needs.
type WidgetKind string

const (
	KindKPI         WidgetKind = "kpi"
	KindChart       WidgetKind = "chart"
	KindDepartments WidgetKind = "departments"
	KindGauge       WidgetKind = "gauge"
)

// CatalogEntry describes a widget offered by the picker.
type CatalogEntry struct {
	ID      WidgetID
	Label   string
	Preview string
	Kind    WidgetKind
}

var catalog = []CatalogEntry{
	{ID: WidgetTotalConsumption, Label: "Toplam Tüketim", Preview: "27.414,69 kWh", Kind: KindKPI},
	{ID: WidgetNaturalGasTEP, Label: "Toplam Doğalgaz Tüketimi (TEP)", Preview: "23,35 TEP", Kind: KindKPI},
	{ID: WidgetCarbonFootprint, Label: "Toplam Karbon Ayak İzi", Preview: "118,99 tonCO₂", Kind: KindKPI},
	{ID: WidgetNaturalGasSm3, Label: "Toplam Doğalgaz Tüketimi (Sm³)", Preview: "2.536,00 Sm³", Kind: KindKPI},
	{ID: WidgetSteamConsumption, Label: "Toplam Buhar Tüketimi", Preview: "536,00 kg", Kind: KindKPI},
	{ID: WidgetElectricityConsumption, Label: "Toplam Elektrik Tüketimi", Preview: "456,03 kWh", Kind: KindKPI},
	{ID: WidgetHotWaterConsumption, Label: "Toplam Sıcak Su Tüketimi", Preview: "3.536,01 kWh", Kind: KindKPI},
	{ID: WidgetWaterConsumption, Label: "Toplam Su Tüketimi", Preview: "356,03 m³", Kind: KindKPI},
	{ID: WidgetElectricityProduction, Label: "Toplam Elektrik Üretimi", Preview: "3.536,01 kWh", Kind: KindKPI},
	{ID: WidgetMultiSeriesChart, Label: "Çok Serili Grafik", Preview: "Kesim / LAM / Klima...", Kind: KindChart},
	{ID: WidgetDepartmentConsumption, Label: "Departman Tüketimleri", Preview: "Kesim: 253.219,19 kWh", Kind: KindDepartments},
	{ID: WidgetCapacitiveLoad, Label: "Kapasitif Yük", Preview: "0%", Kind: KindGauge},
}

// Catalog returns every known widget in display order.
func Catalog() []CatalogEntry {
	return slices.Clone(catalog)
}

// WidgetIDs returns every known identity in catalog order.
func WidgetIDs() []WidgetID {
	ids := make([]WidgetID, len(catalog))
	for i, e := range catalog {
		ids[i] = e.ID
	}
	return ids
}

// Find looks up a catalog entry by identity.
func Find(id WidgetID) (CatalogEntry, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// Known reports whether id belongs to the catalog.
func Known(id WidgetID) bool {
	_, ok := Find(id)
	return ok
}

// ParseWidgetID resolves a raw drag payload to a known identity.
func ParseWidgetID(raw string) (WidgetID, bool) {
	id := WidgetID(strings.TrimSpace(raw))
	if id == "" || !Known(id) {
		return "", false
	}
	return id, true
}

// Available returns catalog entries not in active, in catalog order.
func Available(active []WidgetID) []CatalogEntry {
	if len(active) == 0 {
		return Catalog()
	}
	out := make([]CatalogEntry, 0, len(catalog))
	for _, e := range catalog {
		if !slices.Contains(active, e.ID) {
			out = append(out, e)
		}
	}
	return out
}

// Search filters entries for the picker search box. Substring matches come
// first, then fuzzy subsequence matches, then labels containing a word within
// a small edit distance of the query.
func Search(entries []CatalogEntry, query string) []CatalogEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}

	seen := make(map[WidgetID]struct{}, len(entries))
	var out []CatalogEntry
	add := func(e CatalogEntry) {
		if _, ok := seen[e.ID]; ok {
			return
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}

	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Label), q) || strings.Contains(string(e.ID), q) {
			add(e)
		}
	}

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = strings.ToLower(e.Label)
	}
	for _, m := range fuzzy.Find(q, labels) {
		add(entries[m.Index])
	}

	if limit := typoBudget(q); limit > 0 {
		for _, e := range entries {
			for _, word := range strings.Fields(strings.ToLower(e.Label)) {
				if levenshtein.ComputeDistance(word, q) <= limit {
					add(e)
					break
				}
			}
		}
	}
	return out
}

func typoBudget(q string) int {
	switch n := utf8.RuneCountInString(q); {
	case n >= 8:
		return 2
	case n >= 4:
		return 1
	default:
		return 0
	}
}
