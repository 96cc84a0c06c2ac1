// Package agro provides the rule-based crop recommendation used by the
// AgroConnect demo.
//
// A recommendation is computed from seven soil and weather readings. The
// result holds one crop label from a closed set plus zero or more advisory
// notes. There is no learning involved: the crop is chosen by a fixed ladder
// of threshold rules evaluated in order, and the notes by four independent
// checks.
//
// # Rule Order
//
// Several rules can hold for the same reading (a reading may satisfy both the
// Rice and the Pulses thresholds). The first rule that matches wins, so the
// ladder order is part of the contract:
//
//  1. Rice
//  2. Wheat
//  3. Maize
//  4. Pulses
//  5. Millets (always matches)
//
// All bounds are inclusive.
//
// # Input Ranges
//
// Recommend performs no range validation. Physically meaningless values such
// as negative rainfall are evaluated like any other number. Callers that want
// input bounds (the HTTP form, for example) enforce them before calling.
//
// # Thread Safety
//
// Recommend is a pure function over value types and may be called
// concurrently.
package agro
