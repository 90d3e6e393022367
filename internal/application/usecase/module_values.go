package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/logging"
)

var (
	// ErrUnknownModule is returned when no probed module has the given name.
	ErrUnknownModule = errors.New("unknown module")
	// ErrNotSettable is returned for modules without a slider.
	ErrNotSettable = errors.New("module has no settable value")
	// ErrInvalidValue is returned when a value string can't be parsed.
	ErrInvalidValue = errors.New("invalid value")
)

// ModuleValue is a snapshot of one module.
type ModuleValue struct {
	Name   string
	Icon   port.Icon
	Value  float64
	Slider bool
}

// ModuleValuesUseCase reads and writes module values outside the shell.
type ModuleValuesUseCase struct {
	modules []port.Module
}

// NewModuleValuesUseCase creates a use case over the probed modules.
func NewModuleValuesUseCase(modules []port.Module) *ModuleValuesUseCase {
	return &ModuleValuesUseCase{modules: modules}
}

// List returns every module in display order.
func (uc *ModuleValuesUseCase) List(_ context.Context) []ModuleValue {
	out := make([]ModuleValue, 0, len(uc.modules))
	for _, m := range uc.modules {
		out = append(out, snapshot(m))
	}
	return out
}

// SetInput holds the input for Set.
type SetInput struct {
	Module string
	// Value is a fraction ("0.4") or a percentage ("40%").
	Value string
}

// Set parses and writes a module value. The returned snapshot holds the
// clamped value even when the write failed; writes are best effort.
func (uc *ModuleValuesUseCase) Set(ctx context.Context, input SetInput) (ModuleValue, error) {
	log := logging.FromContext(ctx)

	value, err := ParseValue(input.Value)
	if err != nil {
		return ModuleValue{}, err
	}

	var module port.Module
	for _, m := range uc.modules {
		if m.Name() == input.Module {
			module = m
			break
		}
	}
	if module == nil {
		return ModuleValue{}, fmt.Errorf("%w: %q", ErrUnknownModule, input.Module)
	}

	slider, ok := module.Slider()
	if !ok {
		return snapshot(module), fmt.Errorf("%w: %s", ErrNotSettable, input.Module)
	}

	err = slider.SetValue(ctx, value)
	if err != nil {
		log.Warn().Err(err).Str("module", input.Module).Float64("value", value).Msg("module write incomplete")
	} else {
		log.Debug().Str("module", input.Module).Float64("value", value).Msg("module value written")
	}
	return snapshot(module), err
}

// ParseValue accepts fractions in [0, 1] and percentages in [0%, 100%].
// Out-of-range numbers are clamped; non-numbers are rejected.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	if percent {
		v /= 100
	}
	return min(max(v, 0), 1), nil
}

func snapshot(m port.Module) ModuleValue {
	mv := ModuleValue{Name: m.Name()}
	if s, ok := m.Slider(); ok {
		mv.Slider = true
		mv.Icon = s.Icon()
		mv.Value = s.Value()
	}
	return mv
}
