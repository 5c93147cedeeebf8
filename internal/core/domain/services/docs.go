// Package services contains domain services of the bookshop: operations that
// coordinate several aggregates and do not belong to any single one of them.
//
// OrderPlacer builds an Order for a member from the requested items. It takes
// each line at the item's current catalogue price, ships to the member's
// address, and puts the stock back if any part of the order can not be built.
package services
