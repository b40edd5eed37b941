// Package eq defines the equality capability consumed by the container
// packages when deriving structural equality of wrapped values.
package eq
