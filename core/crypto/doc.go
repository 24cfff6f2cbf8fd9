// Package crypto wraps Fernet symmetric encryption for values stored at rest,
// such as third-party credentials kept in the database.
package crypto
