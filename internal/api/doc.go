// Package api exposes the HTTP surface of the restaurants service: routing,
// request decoding and validation, and response formatting. It adapts HTTP
// concerns to the auth, restaurant and meal services without leaking
// transport details into them.
package api
