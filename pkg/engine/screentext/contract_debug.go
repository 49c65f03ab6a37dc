//go:build debug

package screentext

// strictContracts turns contract violations that are normally clamped into panics.
const strictContracts = true
