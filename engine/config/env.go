package config

import (
	"errors"
	"io/fs"
	"slices"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DotEnvFile is the dotenv file read from the working directory.
const DotEnvFile = ".env"

// LoadDotEnv loads the variables of the dotenv file at path into the process
// environment. Variables already set are never overridden. A missing file is
// not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// bindEnvs binds every key of bindings to its environment variables, preferred
// name first.
func bindEnvs(v *viper.Viper, bindings map[string][]string) error {
	for key, envs := range bindings {
		// Prepend the config key to the start of the arguments
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
