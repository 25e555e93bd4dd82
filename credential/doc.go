// Package credential defines the token store consulted by the auth interceptor.
//
// Store implementations:
//   - Memory keeps the token for the lifetime of the process (session scope);
//   - Cookie keeps the token as a cookie in any http.CookieJar, FileJar persists such a jar;
//   - File persists the token as a JSON snapshot at an afs URL (file://, mem://, s3://, ...);
//   - Secure persists the token encrypted with a scy key (blowfish://default by default);
//   - Multi replicates writes across members and reads the first member holding a token.
//
// Tokens that are JWTs carry their expiry; an expired token reads as absent.
package credential
