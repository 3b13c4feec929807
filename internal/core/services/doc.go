// Package services implements the application services of the hexagon.
//
// Services depend on driven ports for state (stores, registry, config)
// and implement the driving ports the adapters consume. All state they
// read is immutable after load, so every operation is safe for
// concurrent use without locks.
package services
