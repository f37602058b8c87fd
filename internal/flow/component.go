package flow

import "fmt"

// ComponentKind is the closed set of fittable component families. Rendering
// dispatches by exhaustive switch, so adding a kind is a compile-time-visible
// change everywhere a switch omits a default.
type ComponentKind int

const (
	KindWeapon ComponentKind = iota
	KindDrive
	KindPowerPlant
	KindArmor
	KindModule
)

func (k ComponentKind) String() string {
	switch k {
	case KindWeapon:
		return "weapon"
	case KindDrive:
		return "drive"
	case KindPowerPlant:
		return "power plant"
	case KindArmor:
		return "armor"
	case KindModule:
		return "module"
	}
	return fmt.Sprintf("component kind %d", int(k))
}

// Component is one fittable part.
type Component struct {
	ID     string
	Name   string
	Kind   ComponentKind
	Damage int    // weapons
	Thrust int    // drives
	Output int    // power plants
	Rating int    // armor protection per layer
	Effect string // modules
}

// DescribeComponent renders the speakable summary for a component, one format
// per kind.
func DescribeComponent(c Component) string {
	switch c.Kind {
	case KindWeapon:
		return fmt.Sprintf("%s, weapon, damage %d", c.Name, c.Damage)
	case KindDrive:
		return fmt.Sprintf("%s, drive, thrust %d", c.Name, c.Thrust)
	case KindPowerPlant:
		return fmt.Sprintf("%s, power plant, output %d", c.Name, c.Output)
	case KindArmor:
		return fmt.Sprintf("%s, armor, rating %d per layer", c.Name, c.Rating)
	case KindModule:
		if c.Effect == "" {
			return fmt.Sprintf("%s, module", c.Name)
		}
		return fmt.Sprintf("%s, module, %s", c.Name, c.Effect)
	}
	return c.Name
}
