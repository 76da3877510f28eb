// Package domain contains the core entities of the blogging backend and
// their validation rules. Entities here carry no persistence or transport
// concerns; stores and handlers depend on this package, never the reverse.
package domain
