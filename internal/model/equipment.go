package model

// Equipment types form a closed set of trackable asset categories.
const (
	EquipmentWeapons    = "weapons"
	EquipmentVehicles   = "vehicles"
	EquipmentAmmunition = "ammunition"
)

// EquipmentTypes lists every valid equipment type.
var EquipmentTypes = []string{EquipmentWeapons, EquipmentVehicles, EquipmentAmmunition}

// ValidEquipmentType reports whether t is a known equipment type.
func ValidEquipmentType(t string) bool {
	switch t {
	case EquipmentWeapons, EquipmentVehicles, EquipmentAmmunition:
		return true
	}
	return false
}
