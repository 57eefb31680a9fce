package domain

// EntityType identifies which backing table an Entity wraps.
type EntityType string

const (
	EntityEmployee EntityType = "EMPLOYEE"
	EntityStudent  EntityType = "STUDENT"
	EntityVessel   EntityType = "VESSEL"
	EntityVehicle  EntityType = "VEHICLE"
)

// ValidEntityType reports whether t is one of the known entity types.
func ValidEntityType(t EntityType) bool {
	switch t {
	case EntityEmployee, EntityStudent, EntityVessel, EntityVehicle:
		return true
	}
	return false
}

// EntityRef is a tagged reference to a backing record. It replaces the
// original runtime-polymorphic lookup with an explicit variant resolved
// through a per-type lookup function.
type EntityRef struct {
	Type  EntityType `json:"type"`
	RefID string     `json:"refID"`
}

// Entity is the generic wrapper row attached to policies. One entity exists
// per backing record, created lazily on first policy attachment and never
// deleted by the ledger.
type Entity struct {
	EntityID    string     `json:"entityID"`
	CompanyID   string     `json:"companyID"`
	Type        EntityType `json:"type"`
	RefID       string     `json:"refID"` // backing record id
	Description string     `json:"description"`
	AuditFields
}

// Ref returns the tagged reference for this entity.
func (e Entity) Ref() EntityRef {
	return EntityRef{Type: e.Type, RefID: e.RefID}
}
