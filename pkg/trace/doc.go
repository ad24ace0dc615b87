// Package trace captures bus transactions.
//
// A Recorder sits between a register interface and the bus driver and hands
// every transfer to a Logger as an Event. FileLogger stores events as a CBOR
// stream that Reader reads back; Annotator resolves the events of a stream to
// the registers they touched.
package trace
