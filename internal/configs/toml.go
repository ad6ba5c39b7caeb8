package configs

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/PolarWolf314/zlang/internal/utils"
)

// SaveTOML atomically writes a struct to a TOML file readable only by the user.
func SaveTOML(filePath string, data interface{}) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return err
	}
	return utils.WriteFileAtomic(filePath, buf.Bytes(), 0600)
}

// LoadTOML loads a TOML file into a struct. Fields absent from the file keep
// the values already present in data.
func LoadTOML(filePath string, data interface{}) error {
	_, err := toml.DecodeFile(filePath, data)
	return err
}
