// Package entity builds construction buffers: the packed component sets that
// request creation of one entity or a batch of entities.
//
// Data collects single-value packets for one entity; MultiData collects
// multi-value packets for a batch whose size is fixed at creation. Within a
// buffer each component type appears at most once.
//
// Batched setup functions take Arg values, which carry either one shared
// value (Same) or one value per entity (All). The Broadcast helpers expand
// the arguments against the batch size, check every per-entity list before
// any work runs, and apply a setup function elementwise, stopping at the
// first error.
package entity
