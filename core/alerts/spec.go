package alerts

import "fmt"

// Spec holds the static vehicle constants alerts are graded against. Values
// come from configuration, not from the vehicle itself.
type Spec struct {
	// FrontTirePSI and RearTirePSI are the per-axle cold target pressures.
	FrontTirePSI float64 `json:"front_tire_psi"`
	RearTirePSI  float64 `json:"rear_tire_psi"`
	// TireTolerancePSI is the band around the target beyond which a tire is
	// considered critically out of spec.
	TireTolerancePSI float64 `json:"tire_tolerance_psi"`
	// DesignCapacityKWh is the factory full-pack energy.
	DesignCapacityKWh float64 `json:"design_capacity_kwh"`
	// ServiceIntervalMiles is the distance between scheduled services.
	ServiceIntervalMiles float64 `json:"service_interval_miles"`
	// LatestSoftwareVersion, when set, enables the software update notice.
	LatestSoftwareVersion string `json:"latest_software_version"`
}

// SetDefaults applies sane defaults.
func (s *Spec) SetDefaults() {
	if s.FrontTirePSI == 0 {
		s.FrontTirePSI = 42
	}
	if s.RearTirePSI == 0 {
		s.RearTirePSI = 42
	}
	if s.TireTolerancePSI == 0 {
		s.TireTolerancePSI = 4
	}
	if s.DesignCapacityKWh == 0 {
		s.DesignCapacityKWh = 75
	}
	if s.ServiceIntervalMiles == 0 {
		s.ServiceIntervalMiles = 12500
	}
}

// Validate checks mandatory fields.
func (s Spec) Validate() error {
	if s.FrontTirePSI <= 0 || s.RearTirePSI <= 0 {
		return fmt.Errorf("tire target pressure must be positive")
	}
	if s.TireTolerancePSI <= 1 {
		return fmt.Errorf("tire tolerance must exceed the 1 psi dead band")
	}
	if s.DesignCapacityKWh <= 0 {
		return fmt.Errorf("design capacity must be positive")
	}
	if s.ServiceIntervalMiles <= 0 {
		return fmt.Errorf("service interval must be positive")
	}
	return nil
}
