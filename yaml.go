package rainbow

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, v view) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v.document()); err != nil {
		return err
	}
	return enc.Close()
}
