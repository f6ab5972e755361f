// Package validation provides struct and field validation for restkit
// services, built on go-playground/validator. Validation failures are
// returned as structured AppErrors with per-field detail.
package validation
