// Package credential holds the single identity allowed to open the
// remote desktop.
//
// There is exactly one user. Its record (login, salt, password hash and
// the secret used to sign sessions) is read once when the process starts
// and never changes after that, so it can be shared by every request
// handler without any locking.
//
// The record is secret material: nothing in this package logs it, and
// the Error() strings of the errors below only mention field names,
// never field values.
//
// Passwords are never stored, only hex(sha256(password + salt)). Files
// written by newer versions of the credentials command may instead use
// argon2id, selected by the "scheme" key.
package credential
