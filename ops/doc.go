// Package ops provides a standard-library flavored net/http handler that reports
// how dirtyconst was compiled into the running binary.
//
// It is designed to be mounted into your own routing tree. It intentionally:
//   - does not choose routing paths (mount it anywhere),
//   - does not do authn/authz decisions (protect it with your own middleware),
//   - is read-only: there is no endpoint that replaces Cell values.
//
// # Formats
//
// ModeHandler renders text by default. The default can be configured by options,
// and can be overridden per request by URL query:
//   - ?format=text
//   - ?format=json
//
// Text output is line-based and stable/greppable. JSON output is structured and suitable for tooling.
package ops
