package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/younwookim/platformer/internal/domain/entity"
)

// ErrInvalidLevel is wrapped by every level validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// ValidationError collects every problem found in a level definition.
type ValidationError struct {
	Level string
	// Fields maps field paths to their error messages
	Fields map[string][]string
}

// NewValidationError creates an empty validation error for a level.
func NewValidationError(level string) *ValidationError {
	return &ValidationError{
		Level:  level,
		Fields: make(map[string][]string),
	}
}

// Error implements the error interface. Fields are listed in sorted order.
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return fmt.Sprintf("%s %s", ErrInvalidLevel, v.Level)
	}

	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, field := range keys {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return fmt.Sprintf("%s %s: %s", ErrInvalidLevel, v.Level, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match ErrInvalidLevel.
func (v *ValidationError) Unwrap() error {
	return ErrInvalidLevel
}

// AddFieldError adds an error for a specific field
func (v *ValidationError) AddFieldError(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// AddFieldErrorf adds a formatted error for a specific field
func (v *ValidationError) AddFieldErrorf(field, format string, args ...any) {
	v.AddFieldError(field, fmt.Sprintf(format, args...))
}

// HasErrors returns true if there are any validation errors
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError returns nil when nothing was recorded.
func (v *ValidationError) ToError() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

// Validate checks a level definition against the known platform kinds,
// surface materials and coin kinds. Every problem is reported, not just the
// first one.
func (l *LevelConfig) Validate() error {
	ve := NewValidationError(l.ID)

	if l.EndX <= 0 {
		ve.AddFieldError("end_x", "must be positive")
	}
	if len(l.Platforms) == 0 {
		ve.AddFieldError("platforms", "at least one platform is required")
	}

	for i, p := range l.Platforms {
		field := fmt.Sprintf("platforms[%d]", i)
		if p.W <= 0 || p.H <= 0 {
			ve.AddFieldErrorf(field, "size %dx%d must be positive", p.W, p.H)
		}
		if _, err := entity.ParseMaterial(p.Type); err != nil {
			ve.AddFieldError(field+".type", err.Error())
		}
		kind, err := entity.ParsePlatformKind(p.Kind)
		if err != nil {
			ve.AddFieldError(field+".kind", err.Error())
			continue
		}
		switch kind {
		case entity.PlatformMoving:
			if p.To == nil {
				ve.AddFieldError(field+".to", "moving platform needs an endpoint")
			} else if p.To.X == p.X && p.To.Y == p.Y {
				ve.AddFieldError(field+".to", "endpoint equals start position")
			}
			if p.Speed < 0 {
				ve.AddFieldError(field+".speed", "must not be negative")
			}
		case entity.PlatformDisappearing:
			if p.Delay < 0 || p.Respawn < 0 {
				ve.AddFieldError(field, "delays must not be negative")
			}
		case entity.PlatformBounce:
			if p.Strength < 0 {
				ve.AddFieldError(field+".strength", "must not be negative")
			}
		}
	}

	for i, c := range l.Coins {
		if _, err := entity.ParseCoinKind(c.Type); err != nil {
			ve.AddFieldError(fmt.Sprintf("coins[%d].type", i), err.Error())
		}
	}

	for i, e := range l.Enemies {
		if e.Health < 0 || e.Speed < 0 || e.DetectionRange < 0 {
			ve.AddFieldError(fmt.Sprintf("enemies[%d]", i), "overrides must not be negative")
		}
	}
	if l.Enemy.Health < 0 || l.Enemy.Speed < 0 || l.Enemy.DetectionRange < 0 {
		ve.AddFieldError("enemy", "overrides must not be negative")
	}

	return ve.ToError()
}
