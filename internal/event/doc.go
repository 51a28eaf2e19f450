// Package event carries battle progress from the orchestrator to anything
// that wants to observe it (the debug log, the live view) without those
// observers depending on the battle package.
//
// The [Bus] is synchronous: Publish returns after every handler has run,
// so events arrive in the order the battle produced them.
package event
