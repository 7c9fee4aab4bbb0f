// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// Investment is a holding valued at current market price.
type Investment struct {
	Name        string
	MarketValue decimal.Decimal
}

// PhysicalAsset is a physical possession with an estimated current value.
type PhysicalAsset struct {
	Name         string
	CurrentValue decimal.Decimal
}

// Debt is an outstanding liability.
type Debt struct {
	Name        string
	Outstanding decimal.Decimal
}

// NetWorthSnapshot holds the inputs of a net-worth computation: the account
// balance plus the out-of-ledger positions the user declares.
type NetWorthSnapshot struct {
	Balance        decimal.Decimal
	Investments    []Investment
	PhysicalAssets []PhysicalAsset
	Debts          []Debt
}
