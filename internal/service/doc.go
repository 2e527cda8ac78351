// Package service contains the application service layer, orchestrating
// domain logic, extraction, conversion, and history persistence behind
// interfaces the API layer consumes.
package service
