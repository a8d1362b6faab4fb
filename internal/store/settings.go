package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/minhtc/opicly/ent"
	"github.com/minhtc/opicly/ent/setting"
)

// SettingsRepo manages the flat key/value settings table.
//
// Values are stored as strings. Set JSON-encodes every value, so
// booleans, numbers, and structures round-trip as their typed selves;
// Get falls back to the raw string for values written by hand.
type SettingsRepo interface {
	// Get returns the decoded value for key, or (nil, false) when the
	// key is absent.
	Get(ctx context.Context, key string) (any, bool, error)

	// Set stores value under key, creating or replacing the row.
	Set(ctx context.Context, key string, value any) error

	// GetString returns the value as a string, or fallback when the
	// key is absent or not a string.
	GetString(ctx context.Context, key, fallback string) (string, error)

	// GetBool returns the value as a bool, or fallback.
	GetBool(ctx context.Context, key string, fallback bool) (bool, error)

	// GetInt returns the value as an int, or fallback.
	GetInt(ctx context.Context, key string, fallback int) (int, error)

	// GetFloat returns the value as a float64, or fallback.
	GetFloat(ctx context.Context, key string, fallback float64) (float64, error)

	// All returns every stored key/value pair, decoded.
	All(ctx context.Context) (map[string]any, error)
}

type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) Get(ctx context.Context, key string) (any, bool, error) {
	row, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query setting %q: %w", key, err)
	}
	return decodeSetting(row.Value), true, nil
}

func (r *settingsRepo) Set(ctx context.Context, key string, value any) error {
	encoded, err := encodeSetting(value)
	if err != nil {
		return fmt.Errorf("encode setting %q: %w", key, err)
	}

	row, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.Setting.Create().
			SetKey(key).
			SetValue(encoded).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create setting %q: %w", key, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query setting %q: %w", key, err)
	}

	_, err = r.client.Setting.UpdateOne(row).
		SetValue(encoded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update setting %q: %w", key, err)
	}
	return nil
}

func (r *settingsRepo) GetString(ctx context.Context, key, fallback string) (string, error) {
	v, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return fallback, err
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fallback, nil
}

func (r *settingsRepo) GetBool(ctx context.Context, key string, fallback bool) (bool, error) {
	v, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return fallback, err
	}
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		if b, perr := strconv.ParseBool(val); perr == nil {
			return b, nil
		}
	}
	return fallback, nil
}

func (r *settingsRepo) GetInt(ctx context.Context, key string, fallback int) (int, error) {
	v, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return fallback, err
	}
	switch val := v.(type) {
	case float64:
		// JSON numbers decode as float64.
		return int(val), nil
	case string:
		if n, perr := strconv.Atoi(val); perr == nil {
			return n, nil
		}
	}
	return fallback, nil
}

func (r *settingsRepo) GetFloat(ctx context.Context, key string, fallback float64) (float64, error) {
	v, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return fallback, err
	}
	switch val := v.(type) {
	case float64:
		return val, nil
	case string:
		if f, perr := strconv.ParseFloat(val, 64); perr == nil {
			return f, nil
		}
	}
	return fallback, nil
}

func (r *settingsRepo) All(ctx context.Context) (map[string]any, error) {
	rows, err := r.client.Setting.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	out := make(map[string]any, len(rows))
	for _, row := range rows {
		out[row.Key] = decodeSetting(row.Value)
	}
	return out, nil
}

// decodeSetting attempts a JSON decode and falls back to the raw
// string, so hand-written scalars and JSON-encoded values share one
// storage representation.
func decodeSetting(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

func encodeSetting(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
