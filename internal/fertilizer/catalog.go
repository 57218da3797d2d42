package fertilizer

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CustomBlend is returned for class indices the fertilizer table does not cover.
const CustomBlend = "Custom Fertilizer Blend"

//go:embed catalog.yaml
var embeddedCatalog []byte

type catalogFile struct {
	CropGroups  []CropGroup `yaml:"crop_groups"`
	Regions     []string    `yaml:"regions"`
	Months      []string    `yaml:"months"`
	Fertilizers []string    `yaml:"fertilizers"`
}

// CropGroup is a named list of crops, e.g. cereals.
type CropGroup struct {
	Name  string   `yaml:"name" json:"name"`
	Crops []string `yaml:"crops" json:"crops"`
}

// Table maps names to dense integer codes by declaration order.
type Table struct {
	kind  string
	names []string
	codes map[string]int
}

func newTable(kind string, names []string) (*Table, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("catalog: %s table is empty", kind)
	}
	codes := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := codes[name]; dup {
			return nil, fmt.Errorf("catalog: duplicate %s %q", kind, name)
		}
		codes[name] = i
	}
	return &Table{
		kind:  kind,
		names: append([]string(nil), names...),
		codes: codes,
	}, nil
}

// Encode returns the code for name. Matching is exact.
func (t *Table) Encode(name string) (int, error) {
	code, ok := t.codes[name]
	if !ok {
		return 0, &CategoryError{Kind: t.kind, Value: name}
	}
	return code, nil
}

// Name is the inverse of Encode.
func (t *Table) Name(code int) (string, bool) {
	if code < 0 || code >= len(t.names) {
		return "", false
	}
	return t.names[code], true
}

func (t *Table) Len() int { return len(t.names) }

func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Catalog holds the categorical tables and the fertilizer class labels.
// It is built once and never mutated.
type Catalog struct {
	Crops   *Table
	Regions *Table
	Months  *Table

	groups      []CropGroup
	fertilizers []string
}

// DefaultCatalog parses the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(embeddedCatalog)
}

// LoadCatalog reads a catalog file, falling back to the embedded one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to read %s: %w", path, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse: %w", err)
	}

	var crops []string
	groups := make([]CropGroup, 0, len(file.CropGroups))
	for _, g := range file.CropGroups {
		crops = append(crops, g.Crops...)
		groups = append(groups, CropGroup{Name: g.Name, Crops: append([]string(nil), g.Crops...)})
	}

	cropTable, err := newTable("crop", crops)
	if err != nil {
		return nil, err
	}
	regionTable, err := newTable("region", file.Regions)
	if err != nil {
		return nil, err
	}
	monthTable, err := newTable("month", file.Months)
	if err != nil {
		return nil, err
	}
	if len(file.Fertilizers) == 0 {
		return nil, fmt.Errorf("catalog: fertilizer table is empty")
	}

	return &Catalog{
		Crops:       cropTable,
		Regions:     regionTable,
		Months:      monthTable,
		groups:      groups,
		fertilizers: append([]string(nil), file.Fertilizers...),
	}, nil
}

func (c *Catalog) CropGroups() []CropGroup {
	out := make([]CropGroup, len(c.groups))
	for i, g := range c.groups {
		out[i] = CropGroup{Name: g.Name, Crops: append([]string(nil), g.Crops...)}
	}
	return out
}

func (c *Catalog) Fertilizers() []string {
	return append([]string(nil), c.fertilizers...)
}

// LookupFertilizer maps a predicted class index to a fertilizer name.
// Indices outside the table yield CustomBlend; ok reports whether the index was in range.
func (c *Catalog) LookupFertilizer(index int) (name string, ok bool) {
	if index < 0 || index >= len(c.fertilizers) {
		return CustomBlend, false
	}
	return c.fertilizers[index], true
}
