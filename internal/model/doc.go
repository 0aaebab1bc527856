// Package model holds the request-scoped weather domain types shared by the
// API adapters and the rendering pipeline.
//
// Conventions:
//   - Units: temperature in °C, precipitation in mm. Units are validated at
//     the API boundary and never converted.
//   - Optional readings are *float64; nil means "not reported by the model"
//     and is rendered differently from zero.
//   - Values are built from one API response and consumed immediately;
//     nothing here is shared across requests.
package model
