// Package publication contains the domain types handed to the external
// publisher: the artifact Identity, the resolved Target with its
// Credentials, and the Descriptor bundling them with the artifact plan.
//
// Values are built once per invocation and never mutated afterwards.
package publication
