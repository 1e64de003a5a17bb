// Package sanitizer normalizes operator-supplied catalog data before validation.
//
// Booking requests are never passed through here: they are validated and
// stored exactly as the client sent them.
//
// All functions are idempotent and never return errors. Input that
// normalizes to nothing comes back as the empty string and is left for the
// validator to reject.
package sanitizer
