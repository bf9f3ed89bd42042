// Package apikey manages the developer API keys shown on the developers screen.
package apikey

import (
	"context"
	"fmt"
	"strings"

	"payflow/internal/analytics"
	"payflow/internal/models"
	"payflow/internal/repositories"
	"payflow/internal/utils"
	"payflow/internal/validation"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, mode string) ([]models.APIKey, error)
	Create(ctx context.Context, input CreateAPIKeyInput) (*models.APIKey, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	keys repositories.APIKeyRepository
	log  *zap.Logger
}

func NewService(keys repositories.APIKeyRepository, log *zap.Logger) Service {
	return &service{keys: keys, log: log.Named("apikey")}
}

// List returns the keys of one mode, or all keys for "" and "all", with
// their secrets masked.
func (s *service) List(ctx context.Context, mode string) ([]models.APIKey, error) {
	keys, err := s.keys.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}

	keys = analytics.Filter(keys, analytics.APIKeyQuery, "", mode)
	for i := range keys {
		keys[i].Key = Mask(keys[i].Key)
	}
	return keys, nil
}

// Create issues a new key. The returned key carries the full secret; it is
// never shown unmasked again.
func (s *service) Create(ctx context.Context, input CreateAPIKeyInput) (*models.APIKey, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Mode = strings.ToLower(strings.TrimSpace(input.Mode))
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	suffix, err := utils.GenerateUniqueID(secretBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSecretGeneration, err)
	}

	key := &models.APIKey{
		ID:   repositories.NewID(models.IDPrefixAPIKey),
		Name: input.Name,
		Mode: input.Mode,
		Key:  SecretPrefix(input.Mode) + suffix,
	}
	if err := s.keys.Create(ctx, key); err != nil {
		return nil, fmt.Errorf("failed to create API key: %w", err)
	}

	s.log.Info("API key created", zap.String("key_id", key.ID), zap.String("mode", key.Mode))
	return key, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.keys.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete API key %s: %w", id, err)
	}
	s.log.Info("API key revoked", zap.String("key_id", id))
	return nil
}

// SecretPrefix returns "sk_test_" or "sk_live_".
func SecretPrefix(mode string) string {
	return "sk_" + mode + "_"
}

// Mask keeps the first 7 and last 4 characters of a secret and replaces the
// middle with 20 bullets. Secrets too short to keep both ends are fully hidden.
func Mask(key string) string {
	bullets := strings.Repeat(maskBullet, maskBulletRuns)
	if len(key) <= maskPrefixLen+maskSuffixLen {
		return bullets
	}
	return key[:maskPrefixLen] + bullets + key[len(key)-maskSuffixLen:]
}
