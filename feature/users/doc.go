// Package users implements account registration and login.
//
// Passwords are stored as bcrypt hashes and logins are answered with a signed
// HS256 session token whose subject is the username. The auth middleware
// turns that token back into the session object that scopes every other
// feature's data access.
package users
