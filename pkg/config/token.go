package config

import (
	"github.com/arthur-debert/gitcal/pkg/errors"
	"github.com/caarlos0/env"
)

type tokenEnv struct {
	GitHubToken string `env:"GITHUB_TOKEN"`
}

// LoadToken returns flagValue when set, otherwise $GITHUB_TOKEN.
func LoadToken(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	var e tokenEnv
	if err := env.Parse(&e); err != nil {
		return "", errors.Wrap(err, errors.ErrConfigLoad, "failed to read environment")
	}
	if e.GitHubToken == "" {
		return "", errors.New(errors.ErrMissingToken,
			"no GitHub token: set $GITHUB_TOKEN or pass --token")
	}
	return e.GitHubToken, nil
}
