// Package ports defines the interfaces that connect the application layer
// to infrastructure adapters.
//
// # Port Interfaces
//
//   - [InputLoader]: reads the raw puzzle input of a day
//   - [Renderer]: presents answers, sample checks and puzzle notes
//
// The application layer (internal/app) depends only on these interfaces and
// on pkg/log. Adapters (internal/adapters, internal/report) implement them.
package ports
