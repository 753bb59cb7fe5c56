// Package driver models the people who carry orders from restaurants to customers.
//
// A Driver has a position, a travel speed in km/h and one or more insulated Bags.
// Each Bag holds a single order whose item count fits its capacity. Driver positions
// are advanced by a scheduler one simulated minute at a time (see Driver.Move).
package driver
