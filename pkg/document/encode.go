package document

import (
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/html5el/internal/errors"
)

// Encode writes desc to w in format f. The output decodes back to an
// equivalent description.
func Encode(w io.Writer, desc *Description, f Format) error {
	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(desc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(desc)
		if err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		err = enc.Encode(desc)
	default:
		return errors.New("E020").WithDetailf("format %q", f)
	}
	if err != nil {
		return errors.New("E021").WithDetailf("encoding %s", f).Wrap(err)
	}
	return nil
}
