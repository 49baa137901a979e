package model

import (
	"encoding/json"
	"fmt"
)

// Category is stored as an integer; Code is used on the wire and DisplayName in search.
type Category int

const (
	CategoryProtein Category = iota
	CategoryProteinBar
	CategoryBCAA
	CategoryCreatine
	CategoryCitruline
	CategoryGainer
)

var categoryInfo = map[Category]struct{ code, display string }{
	CategoryProtein:    {"protein", "Протеин"},
	CategoryProteinBar: {"protein_bar", "Протеиновые батончики"},
	CategoryBCAA:       {"bcaa", "BCAA"},
	CategoryCreatine:   {"creatine", "Креатин"},
	CategoryCitruline:  {"citruline", "Цитруллин"},
	CategoryGainer:     {"gainer", "Гейнер"},
}

func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

func (c Category) Code() string { return categoryInfo[c].code }

func (c Category) DisplayName() string { return categoryInfo[c].display }

func (c Category) String() string { return c.Code() }

func ParseCategory(code string) (Category, error) {
	for c, info := range categoryInfo {
		if info.code == code {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown category %q", ErrValidation, code)
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Code())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	parsed, err := ParseCategory(code)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

type Brand int

const (
	BrandOptimumNutrition Brand = iota
	BrandScitecNutrition
	BrandSporter
	BrandBSN
	BrandMST
	BrandBiotechUSA
	BrandDymatize
	BrandRule1
)

var brandInfo = map[Brand]struct{ code, display string }{
	BrandOptimumNutrition: {"optimum_nutrition", "Optimum Nutrition"},
	BrandScitecNutrition:  {"scitec_nutrition", "Scitec Nutrition"},
	BrandSporter:          {"sporter", "Sporter"},
	BrandBSN:              {"bsn", "BSN"},
	BrandMST:              {"mst", "MST"},
	BrandBiotechUSA:       {"biotech_usa", "BioTech USA"},
	BrandDymatize:         {"dymatize", "Dymatize"},
	BrandRule1:            {"rule1", "Rule 1"},
}

func (b Brand) Valid() bool {
	_, ok := brandInfo[b]
	return ok
}

func (b Brand) Code() string { return brandInfo[b].code }

func (b Brand) DisplayName() string { return brandInfo[b].display }

func (b Brand) String() string { return b.Code() }

func ParseBrand(code string) (Brand, error) {
	for b, info := range brandInfo {
		if info.code == code {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown brand %q", ErrValidation, code)
}

func (b Brand) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Code())
}

func (b *Brand) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	parsed, err := ParseBrand(code)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
