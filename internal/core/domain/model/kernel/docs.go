// Package kernel provides the value objects shared by the catalog and order models.
//
// The package includes:
//   - Money: a non-negative fixed-point amount with the line tax arithmetic (Taxed)
//   - TaxRate: a non-negative percentage attached to a product category
//   - UUID: identifier for technical records such as shipment notifications
//
// Amounts are backed by shopspring/decimal and never by binary floating point.
// All values are immutable; their zero values fail Validate.
package kernel
