// Package session implements the vendor login use case: payload
// validation, credential verification against the triple store, and the
// session lifecycle (replace-on-login, teardown-on-logout).
//
// The login sequence is strictly verify, then delete stale sessions, then
// create the new one. The two writes are separate updates, so two
// concurrent logins for the same account can interleave and leave either
// two sessions or none; the store is the only synchronization point and
// no per-account locking is done here. One live session per account is
// the intended steady state.
package session
