// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and stores
// (defined in internal/store) to fulfill application features: registration
// and login, item management, and the two-phase ownership transfer protocol.
//
// Services receive dependencies through constructor injection, apply
// transactional boundaries where operations must be atomic, and translate
// store-level errors into sentinel errors the API layer maps onto HTTP
// status codes with errors.Is.
package service
