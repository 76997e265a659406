package identity

import (
	"strings"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
)

// TenantStatus represents the status of a station tenant
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusInactive  TenantStatus = "inactive"
	TenantStatusSuspended TenantStatus = "suspended" // Suspended due to payment/violation issues
)

// TenantConfig holds configurable settings for a station
type TenantConfig struct {
	Currency          string `json:"currency"`            // Currency code used on receipts and reports
	Timezone          string `json:"timezone"`            // Station timezone
	LowStockPercent   int    `json:"low_stock_percent"`   // Tank level percentage that triggers low stock alerts
	InvoicePrefix     string `json:"invoice_prefix"`      // Prefix for generated invoice numbers
	ReceiptFooterNote string `json:"receipt_footer_note"` // Free text printed at the bottom of receipts
}

// DefaultTenantConfig returns the default configuration for a new station
func DefaultTenantConfig() TenantConfig {
	return TenantConfig{
		Currency:        "INR",
		Timezone:        "Asia/Kolkata",
		LowStockPercent: 20,
		InvoicePrefix:   "INV",
	}
}

// Tenant represents a fuel station in the multi-tenant system.
// It is the aggregate root for station-level operations.
type Tenant struct {
	shared.BaseAggregateRoot
	Code         string       `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string       `gorm:"type:varchar(200);not null"`
	Status       TenantStatus `gorm:"type:varchar(20);not null;default:'active'"`
	ContactName  string       `gorm:"type:varchar(100)"`
	ContactPhone string       `gorm:"type:varchar(50)"`
	ContactEmail string       `gorm:"type:varchar(200)"`
	Address      string       `gorm:"type:text"`
	GSTNumber    string       `gorm:"type:varchar(30)"`
	LogoURL      string       `gorm:"type:varchar(500)"`
	Config       TenantConfig `gorm:"embedded;embeddedPrefix:config_"`
	Notes        string       `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Tenant) TableName() string {
	return "tenants"
}

// NewTenant creates a new station tenant with required fields
func NewTenant(code, name string) (*Tenant, error) {
	if err := validateTenantCode(code); err != nil {
		return nil, err
	}
	if err := validateTenantName(name); err != nil {
		return nil, err
	}

	tenant := &Tenant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Status:            TenantStatusActive,
		Config:            DefaultTenantConfig(),
	}

	tenant.AddDomainEvent(NewTenantCreatedEvent(tenant))

	return tenant, nil
}

// Update updates the station's basic information
func (t *Tenant) Update(name, address, gstNumber string) error {
	if err := validateTenantName(name); err != nil {
		return err
	}
	if len(gstNumber) > 30 {
		return shared.NewDomainError("INVALID_GST_NUMBER", "GST number cannot exceed 30 characters")
	}

	t.Name = name
	t.Address = address
	t.GSTNumber = strings.ToUpper(strings.TrimSpace(gstNumber))
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(NewTenantUpdatedEvent(t))

	return nil
}

// SetContact updates contact information
func (t *Tenant) SetContact(name, phone, email string) error {
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_CONTACT_PHONE", "Contact phone cannot exceed 50 characters")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_CONTACT_EMAIL", "Contact email cannot exceed 200 characters")
	}

	t.ContactName = strings.TrimSpace(name)
	t.ContactPhone = strings.TrimSpace(phone)
	t.ContactEmail = strings.ToLower(strings.TrimSpace(email))
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// SetLogoURL sets the station logo used on printed documents
func (t *Tenant) SetLogoURL(url string) error {
	if len(url) > 500 {
		return shared.NewDomainError("INVALID_LOGO_URL", "Logo URL cannot exceed 500 characters")
	}

	t.LogoURL = url
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// UpdateConfig replaces the station configuration
func (t *Tenant) UpdateConfig(config TenantConfig) error {
	if config.LowStockPercent < 0 || config.LowStockPercent > 100 {
		return shared.NewDomainError("INVALID_LOW_STOCK_PERCENT", "Low stock percent must be between 0 and 100")
	}
	if config.Currency == "" {
		config.Currency = t.Config.Currency
	}
	if config.Timezone == "" {
		config.Timezone = t.Config.Timezone
	}

	t.Config = config
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// Activate activates the station
func (t *Tenant) Activate() error {
	if t.Status == TenantStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Tenant is already active")
	}

	oldStatus := t.Status
	t.Status = TenantStatusActive
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(NewTenantStatusChangedEvent(t, oldStatus, TenantStatusActive))

	return nil
}

// Deactivate deactivates the station
func (t *Tenant) Deactivate() error {
	if t.Status == TenantStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Tenant is already inactive")
	}

	oldStatus := t.Status
	t.Status = TenantStatusInactive
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(NewTenantStatusChangedEvent(t, oldStatus, TenantStatusInactive))

	return nil
}

// Suspend suspends the station
func (t *Tenant) Suspend() error {
	if t.Status == TenantStatusSuspended {
		return shared.NewDomainError("ALREADY_SUSPENDED", "Tenant is already suspended")
	}

	oldStatus := t.Status
	t.Status = TenantStatusSuspended
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(NewTenantStatusChangedEvent(t, oldStatus, TenantStatusSuspended))

	return nil
}

// IsActive returns true if the station can be used
func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}

// IsValid checks if the status value is a known status
func (s TenantStatus) IsValid() bool {
	switch s {
	case TenantStatusActive, TenantStatusInactive, TenantStatusSuspended:
		return true
	}
	return false
}

func validateTenantCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_TENANT_CODE", "Tenant code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_TENANT_CODE", "Tenant code cannot exceed 50 characters")
	}
	return nil
}

func validateTenantName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_TENANT_NAME", "Tenant name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_TENANT_NAME", "Tenant name cannot exceed 200 characters")
	}
	return nil
}
