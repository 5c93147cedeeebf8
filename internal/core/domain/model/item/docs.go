// Package item contains the Item aggregate: a catalogue entry with a unit price
// and a stock quantity.
//
// Stock is a ledger that can only move through IncreaseStock and DecreaseStock,
// and it stays between 0 and MaxStockQuantity. Both operations check the result
// before mutating, so a failed change leaves the item untouched.
//
// Items are shared between orders. The version counter is carried for optimistic
// locking in the persistence layer: an item is always saved with the version it
// was loaded with, and a concurrent writer makes the save fail.
package item
