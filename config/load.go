package config

import (
	"encoding/json"
	"fmt"
	"io"
)

const pageSize = 4096

// Load decodes and validates a machine profile from r (§6). Every
// size/offset field must be a multiple of 4096; violations are reported as
// ErrMisaligned wrapped with the offending field's location.
func Load(r io.Reader) (*Profile, error) {
	var p Profile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("config: decode profile: %w", err)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

func aligned(v HexUint32) bool { return uint32(v)%pageSize == 0 }

func (p *Profile) validate() error {
	for _, phys := range p.Physical {
		if phys.Name == "" {
			return fmt.Errorf("%w: physical.name", ErrMissingField)
		}
		if !aligned(phys.Size) {
			return fmt.Errorf("%w: physical %q size", ErrMisaligned, phys.Name)
		}
		for _, src := range phys.Sources {
			if !aligned(src.Offset) {
				return fmt.Errorf("%w: physical %q source offset", ErrMisaligned, phys.Name)
			}
		}
	}

	for _, img := range p.RomImages {
		if img.Name == "" || img.Path == "" {
			return fmt.Errorf("%w: rom-images entry missing name/path", ErrMissingField)
		}
		if !aligned(img.Size) {
			return fmt.Errorf("%w: rom-image %q size", ErrMisaligned, img.Name)
		}
	}

	for _, r := range p.Regions {
		if r.Name == "" {
			return fmt.Errorf("%w: regions entry missing name", ErrMissingField)
		}
		switch r.Type {
		case "ram", "rom", "composite":
		default:
			return fmt.Errorf("%w: region %q type %q", ErrUnknownType, r.Name, r.Type)
		}
		if !aligned(r.Start) {
			return fmt.Errorf("%w: region %q start", ErrMisaligned, r.Name)
		}
		if !aligned(r.Size) {
			return fmt.Errorf("%w: region %q size", ErrMisaligned, r.Name)
		}
		if !aligned(r.SourceOffset) {
			return fmt.Errorf("%w: region %q source-offset", ErrMisaligned, r.Name)
		}
	}

	for _, c := range p.Controllers {
		if c.Name == "" {
			return fmt.Errorf("%w: controllers entry missing name", ErrMissingField)
		}
		if !aligned(c.Size) {
			return fmt.Errorf("%w: controller %q size", ErrMisaligned, c.Name)
		}
	}

	for _, card := range p.Slots.Cards {
		if card.Slot < 1 || card.Slot > 7 {
			return fmt.Errorf("%w: slot card %q slot %d out of 1..=7", ErrUnknownType, card.Type, card.Slot)
		}
	}

	return nil
}
