// Package auth provides user registration, password authentication with
// login lockout, cookie sessions backed by the application database,
// CSRF protection, and the gin middleware that threads the
// authenticated user into request handling.
package auth
