// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
// - base.go: Base persistence models (BaseModel, AggregateModel, TenantAggregateModel)
// - identity.go: Staff models
// - shift.go: Shift, pump reading and consumable allocation models
// - station.go: Fuel setting, pump, tank unload and daily reading models
// - partner.go: Credit customer, vehicle, booklet, indent and ledger models
//
// The station Tenant aggregate is persisted directly by its repository
// and has no model here.
package models
