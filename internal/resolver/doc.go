// Package resolver turns an environment snapshot into the build version and
// the publication target.
//
// Both resolvers are pure functions of the snapshot: unset variables degrade
// to fallbacks, so resolution never fails. The target strategy is picked by
// configuration through NewTargetResolver, never by inspecting the environment.
package resolver
