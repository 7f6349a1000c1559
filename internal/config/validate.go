package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate reports every problem in the config at once.
// Layout IDs are checked by the caller against the layout registry.
func (c ArenaConfig) Validate() error {
	var errs []error

	p := c.Paddle
	if p.Width <= 0 || p.Width > 2 {
		errs = append(errs, fmt.Errorf("paddle.width must be in (0, 2], got %g", p.Width))
	}
	if p.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle.height must be positive, got %g", p.Height))
	}
	if p.Speed <= 0 {
		errs = append(errs, fmt.Errorf("paddle.speed must be positive, got %g", p.Speed))
	}
	if !inField(p.X) || !inField(p.Y) {
		errs = append(errs, fmt.Errorf("paddle position (%g, %g) is outside the field", p.X, p.Y))
	} else if p.Width > 0 && math.Abs(p.X) > 1-p.Width/2 {
		errs = append(errs, fmt.Errorf("paddle.x must keep the paddle inside the field (|x| <= %g), got %g", 1-p.Width/2, p.X))
	}
	errs = append(errs, p.Color.validate("paddle.color"))

	b := c.Ball
	if b.Radius <= 0 || b.Radius >= 1 {
		errs = append(errs, fmt.Errorf("ball.radius must be in (0, 1), got %g", b.Radius))
	}
	// A step longer than the radius could carry a ball past the wall.
	if b.Speed <= 0 || (b.Radius > 0 && b.Speed > b.Radius) {
		errs = append(errs, fmt.Errorf("ball.speed must be in (0, ball.radius], got %g", b.Speed))
	}
	if !inField(b.SpawnX) || !inField(b.SpawnY) {
		errs = append(errs, fmt.Errorf("ball spawn point (%g, %g) is outside the field", b.SpawnX, b.SpawnY))
	}

	for i, br := range c.Bricks {
		name := fmt.Sprintf("bricks[%d]", i)
		if br.Kind != KindReflective && br.Kind != KindDestructible {
			errs = append(errs, fmt.Errorf("%s.kind must be %q or %q, got %q", name, KindReflective, KindDestructible, br.Kind))
		}
		if br.Width <= 0 {
			errs = append(errs, fmt.Errorf("%s.width must be positive, got %g", name, br.Width))
		}
		if !inField(br.X) || !inField(br.Y) {
			errs = append(errs, fmt.Errorf("%s position (%g, %g) is outside the field", name, br.X, br.Y))
		}
		errs = append(errs, br.Color.validate(name+".color"))
	}

	return errors.Join(errs...)
}

func (c Color) validate(name string) error {
	for _, v := range c {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s channels must be in [0, 1], got %v", name, [3]float64(c))
		}
	}
	return nil
}

func inField(v float64) bool {
	return v >= -1 && v <= 1
}
