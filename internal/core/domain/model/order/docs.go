// Package order models a customer order from checkout to hand-over.
//
// An Order is created at a restaurant with a pickup point (the restaurant) and a
// delivery point (the customer). It carries a human-readable Number
// ("ORD-20261016-4KX9ZQ") next to its UUID, and moves through
// Created -> Assigned -> PickedUp -> Completed as a driver takes it, collects it
// and delivers it. Reassignment is possible until the food is picked up.
package order
