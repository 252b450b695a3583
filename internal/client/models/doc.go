// Package models defines the records exchanged with the NVP Welfare
// Foundation backend: the authenticated principal, donations, certificates,
// receipts and dashboard statistics.
package models
