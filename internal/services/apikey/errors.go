package apikey

import "errors"

var ErrSecretGeneration = errors.New("failed to generate API key secret")
