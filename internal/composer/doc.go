// Package composer assembles entities from a base layer and composable
// capabilities.
//
// Every capability set resolves to a kind with a fixed linearization: an
// ordered list of layers that always ends in base. Construction walks that
// list with a cursor. Each layer takes the fields it owns out of the
// remaining set, hands the rest to the next layer, and assigns its own
// attributes once the layers after it have finished. Base therefore runs
// exactly once and assigns first, even for the pickup kind where passenger
// and cargo both extend it.
//
// Rendering reuses the same linearization: base text first, then each
// capability phrase in order.
package composer
