// Package ports defines the contracts between the ordering core and infrastructure:
// repositories for the aggregates and read models, the inventory ledger, the unit of
// work that spans them and the outbox used to relay domain events.
package ports
