// Package geo resolves viewer IP addresses to ISP and country information.
//
// Only a placeholder is shipped: RandomResolver ignores the address, picks one of
// six fixed countries uniformly at random and reports a constant fake ISP. Callers
// depend on the Resolver interface so a real geolocation backend can replace it
// without touching them.
package geo
