package routeenergy

import "fmt"

// Config tunes the energy walk. All fields are battery percents except the
// consumption rate.
type Config struct {
	// MilesPerPercent is how far one battery percent carries the vehicle.
	MilesPerPercent float64 `json:"miles_per_percent"`
	// SafetyMarginPercent is the minimum battery the model tolerates before
	// forcing a charging stop.
	SafetyMarginPercent float64 `json:"safety_margin_percent"`
	// ChargeTargetPercent is the level reached after a modeled stop.
	ChargeTargetPercent float64 `json:"charge_target_percent"`
	// LowBatteryPercent marks the destination charge below which the trip
	// needs charging.
	LowBatteryPercent float64 `json:"low_battery_percent"`
	// AnxietyPercent marks the cautionary destination charge level.
	AnxietyPercent float64 `json:"anxiety_percent"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.MilesPerPercent == 0 {
		c.MilesPerPercent = 3
	}
	if c.SafetyMarginPercent == 0 {
		c.SafetyMarginPercent = 10
	}
	if c.ChargeTargetPercent == 0 {
		c.ChargeTargetPercent = 80
	}
	if c.LowBatteryPercent == 0 {
		c.LowBatteryPercent = 10
	}
	if c.AnxietyPercent == 0 {
		c.AnxietyPercent = 20
	}
}

// Validate checks the configuration is coherent.
func (c Config) Validate() error {
	if c.MilesPerPercent <= 0 {
		return fmt.Errorf("miles per percent must be positive")
	}
	if c.SafetyMarginPercent < 0 || c.SafetyMarginPercent > 100 {
		return fmt.Errorf("safety margin %v out of range", c.SafetyMarginPercent)
	}
	if c.ChargeTargetPercent <= c.SafetyMarginPercent || c.ChargeTargetPercent > 100 {
		return fmt.Errorf("charge target %v must sit above the safety margin", c.ChargeTargetPercent)
	}
	if c.AnxietyPercent < c.LowBatteryPercent {
		return fmt.Errorf("anxiety threshold must not sit below the low battery threshold")
	}
	return nil
}
