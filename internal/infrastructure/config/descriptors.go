package config

import (
	"errors"
	"fmt"

	"github.com/bnema/wndstack/internal/domain/entity"
)

// ToDescriptors converts the declared windows into descriptors, in file order.
func ToDescriptors(config *Config) ([]*entity.Descriptor, error) {
	descriptors := make([]*entity.Descriptor, 0, len(config.Windows))
	var errs []error

	for i, w := range config.Windows {
		d, err := toDescriptor(w)
		if err != nil {
			errs = append(errs, fmt.Errorf("windows[%d]: %w", i, err))
			continue
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, errors.Join(errs...)
}

func toDescriptor(w WindowConfig) (*entity.Descriptor, error) {
	category, err := entity.ParseCategory(w.Category)
	if err != nil {
		return nil, err
	}
	policy, err := entity.ParseOpenPolicy(w.OpenPolicy)
	if err != nil {
		return nil, err
	}
	backdrop, err := entity.ParseBackdrop(w.Backdrop)
	if err != nil {
		return nil, err
	}

	d, err := entity.NewDescriptor(entity.WindowID(w.ID), w.Path, category, policy, backdrop)
	if err != nil {
		return nil, err
	}
	d.Script = w.Script
	return d, nil
}
