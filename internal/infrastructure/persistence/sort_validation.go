package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// TenantSortFields contains allowed sort fields for stations
var TenantSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"status":     true,
}

// UserSortFields contains allowed sort fields for staff
var UserSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"username":      true,
	"display_name":  true,
	"role":          true,
	"status":        true,
	"last_login_at": true,
}

// ShiftSortFields contains allowed sort fields for shifts
var ShiftSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"staff_id":        true,
	"shift_type":      true,
	"status":          true,
	"start_time":      true,
	"end_time":        true,
	"total_sales":     true,
	"total_liters":    true,
	"cash_difference": true,
}

// PumpSortFields contains allowed sort fields for pumps
var PumpSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"status":     true,
}

// TankUnloadSortFields contains allowed sort fields for deliveries
var TankUnloadSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"fuel_type":      true,
	"liters":         true,
	"amount":         true,
	"invoice_number": true,
	"unloaded_at":    true,
}

// DailyReadingSortFields contains allowed sort fields for daily stock records
var DailyReadingSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"fuel_type":     true,
	"reading_date":  true,
	"opening_stock": true,
	"closing_stock": true,
	"meter_sales":   true,
}

// CustomerSortFields contains allowed sort fields for credit customers
var CustomerSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"name":         true,
	"phone":        true,
	"status":       true,
	"balance":      true,
	"credit_limit": true,
}

// IndentSortFields contains allowed sort fields for indents
var IndentSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"indent_number": true,
	"customer_id":   true,
	"fuel_type":     true,
	"liters":        true,
	"amount":        true,
	"recorded_at":   true,
}

// CreditTransactionSortFields contains allowed sort fields for ledger entries
var CreditTransactionSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"customer_id":   true,
	"type":          true,
	"source":        true,
	"amount":        true,
	"balance_after": true,
	"recorded_at":   true,
}
