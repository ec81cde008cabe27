package pipeline

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/circuitviz/pkg/errs"
)

// LoadConfig reads Options from a TOML file. Relative paths in the file are
// taken as given, not relative to the file. Unknown keys are rejected.
//
//	vector        = "vector_data.txt"
//	output_dir    = "output_img"
//	show_labels   = true
//	keep_document = true
func LoadConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("%w: config: %v", errs.ErrIO, err)
	}

	var opts Options
	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return Options{}, fmt.Errorf("%w: config %s: %v", errs.ErrFormat, path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Options{}, fmt.Errorf("%w: config %s: unknown keys: %s", errs.ErrFormat, path, strings.Join(keys, ", "))
	}
	return opts, nil
}
