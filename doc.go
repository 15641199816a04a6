// Package userservice implements a small user service built around a
// stateless bearer-token authentication core.
//
// Authentication flow:
//   - UserProvider verifies an identifier/password pair against the users
//     store (bcrypt) and produces an Identity carrying the stable public
//     user id. Unknown identifiers and wrong passwords are reported with
//     the same error so callers cannot enumerate accounts.
//   - Auther.Login turns a verified Identity into a signed JWT via
//     TokenService and returns the token alongside the public user id.
//   - middleware/jwtware reconstructs the identity on every request from
//     the Authorization header. A missing, malformed, or expired token
//     leaves the request anonymous; route guards decide whether anonymous
//     access is acceptable.
//
// Everything else (registration, user lookup, pagination) is ordinary
// persistence plumbing on top of Bun repositories.
package userservice
