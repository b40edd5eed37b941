// Package monoid extends semigroup with an identity element.
package monoid
