package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/automoto/doomerang-kinetics/curve"
	"gopkg.in/yaml.v3"
)

// Tuning bundles every tunable section. It is the unit loaded from YAML and
// persisted between runs.
type Tuning struct {
	Movement MovementConfig `yaml:"movement"`
	Jump     JumpConfig     `yaml:"jump"`
	World    WorldConfig    `yaml:"world"`
}

// DefaultTuning returns the package-wide configuration currently in effect.
func DefaultTuning() Tuning {
	t := Tuning{
		Movement: Movement,
		Jump:     Jump,
		World:    World,
	}
	t.Movement.Curve.Keys = append([]curve.Keyframe(nil), Movement.Curve.Keys...)
	return t
}

// LoadTuning decodes YAML over the defaults, so a file only needs to name
// the fields it overrides.
func LoadTuning(r io.Reader) (Tuning, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Marshal encodes the tuning as YAML.
func (t Tuning) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}

// Validate checks every section.
func (t Tuning) Validate() error {
	if err := t.Movement.Validate(); err != nil {
		return err
	}
	if err := t.Jump.Validate(); err != nil {
		return err
	}
	if err := CheckGravityScales(t.Movement, t.Jump); err != nil {
		return err
	}
	return t.World.Validate()
}

// Apply installs t as the package-wide configuration.
func (t Tuning) Apply() {
	Movement = t.Movement
	Jump = t.Jump
	World = t.World
}
