// Package address decodes the compact address tokens reported by the router.
//
// The router packs an address class, an optional phase and the address text
// into a single token. The first character is the class tag:
//
//	M  mobile    (second character is a one-digit phase)
//	R  router
//	A  area
//	L  local
//	T  topo
//	C  link-in
//	D  link-out
//
// For mobile addresses the text starts at index 2; for every other class it
// starts at index 1. All functions in this package are total: short or empty
// tokens never panic and decode to empty parts.
//
// # Usage
//
//	addr := address.Decode("M1examples")
//	addr.Class      // address.Mobile
//	addr.Phase      // "1"
//	addr.Text       // "examples"
//	addr.Summary()  // "1:examples"
package address
