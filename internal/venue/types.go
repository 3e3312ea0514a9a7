// Package venue holds the venue directory records and the row filtering
// rules used by both the rendered venue table and the storage queries.
package venue

import "strings"

// Venue describes one row of the venue directory.
type Venue struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Address         string `yaml:"address"`
	Playground      string `yaml:"playground"`
	Fenced          string `yaml:"fenced"`
	QuietZones      string `yaml:"quiet_zones"`
	Colors          string `yaml:"colors"`
	Smells          string `yaml:"smells"`
	FoodOwn         string `yaml:"food_own"`
	DefinedDuration string `yaml:"defined_duration"`
	Quiet           string `yaml:"quiet"`
	Crowdedness     string `yaml:"crowdedness"`
	FoodVariety     string `yaml:"food_variety"`
	PhotoURL        string `yaml:"photo_url"`
}

// TextContent returns the row text a reader would see, used for substring
// filtering.
func (v Venue) TextContent() string {
	return strings.Join([]string{
		v.Name,
		v.Address,
		v.Playground,
		v.Fenced,
		v.QuietZones,
		v.Colors,
		v.Smells,
		v.FoodOwn,
		v.DefinedDuration,
		v.Quiet,
		v.Crowdedness,
		v.FoodVariety,
	}, " ")
}

// Filters captures the per-column selections of the detailed filter form.
// Scalar fields match as substrings; slice fields match any listed value.
type Filters struct {
	Playground      string
	Fenced          string
	QuietZones      string
	Colors          []string
	Smells          []string
	FoodOwn         string
	DefinedDuration string
	Quiet           []string
	Crowdedness     []string
	FoodVariety     []string
	PhotoURL        string
}

// Empty reports whether no filter option is set, which selects every row.
func (f Filters) Empty() bool {
	return f.Playground == "" &&
		f.Fenced == "" &&
		f.QuietZones == "" &&
		len(f.Colors) == 0 &&
		len(f.Smells) == 0 &&
		f.FoodOwn == "" &&
		f.DefinedDuration == "" &&
		len(f.Quiet) == 0 &&
		len(f.Crowdedness) == 0 &&
		len(f.FoodVariety) == 0 &&
		f.PhotoURL == ""
}
