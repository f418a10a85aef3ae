package vectra

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// LoadRunConfig parses a TOML config file into a RunConfig. It does not
// validate; call Validate on the result before using it to build a
// simulation, matching the teacher's LoadEvoEpiConfig/Validate split.
func LoadRunConfig(path string) (*RunConfig, error) {
	conf := new(RunConfig)
	_, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, errors.Wrapf(err, "loading run config from %s", path)
	}
	return conf, nil
}
