package apikey

// CreateAPIKeyInput is the body of a create API key request.
type CreateAPIKeyInput struct {
	Name string `json:"name" validate:"required,max=100"`
	Mode string `json:"mode" validate:"required,oneof=test live"`
}

const (
	secretBytes    = 16
	maskPrefixLen  = 7
	maskSuffixLen  = 4
	maskBulletRuns = 20
	maskBullet     = "•"
)
