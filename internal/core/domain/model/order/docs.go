// Package order provides the Order aggregate of the bookshop domain: an order
// placed by a member for one or more items, shipped through a single delivery.
//
// The package includes:
//   - Order: the aggregate root owning its lines and its delivery
//   - OrderLine: one item ordered at a fixed unit price; creating a line takes
//     the quantity out of the item's stock, cancelling it puts the quantity back
//   - Delivery: the shipping address and the delivery status of an order
//   - Status and DeliveryStatus: the two state machines of the aggregate
//   - Search: the filter used to look orders up by status and member name
//
// Key business rules:
//   - An order has at least one line and exactly one delivery
//   - Order status follows Placed -> Cancelled; there is no way back
//   - Delivery status follows Ready -> Completed; there is no way back
//   - An order whose delivery has completed can not be cancelled
//   - The total price of an order is the sum of unit price times quantity of its lines
package order
