// Package bounded extends ord with least and greatest elements.
package bounded
