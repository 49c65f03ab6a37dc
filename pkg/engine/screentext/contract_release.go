//go:build !debug

package screentext

const strictContracts = false
