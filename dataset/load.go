package dataset

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads a dataset from a TOML file shaped as:
//
//	[[cities]]
//	name = "Kyiv"
//	x = 30.5234
//	y = 50.4501
//
//	[[routes]]
//	from = "Kyiv"
//	to = "Zhytomyr"
//	distance = 140
//
// The table order in the file becomes the vertex and edge insertion order.
// The loaded dataset is validated before it is returned.
func Load(path string) (Dataset, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return Dataset{}, fmt.Errorf("dataset: failed to read %s: %w", path, err)
	}

	var d Dataset
	if err := k.Unmarshal("", &d); err != nil {
		return Dataset{}, fmt.Errorf("dataset: failed to decode %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}
