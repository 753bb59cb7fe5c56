// Package services holds domain logic that spans aggregates.
//
// OrderDispatcher matches a waiting order with the driver who can reach its
// restaurant soonest.
package services
