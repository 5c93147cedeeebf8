// Package errs provides the typed errors shared by the bookshop domain,
// application and persistence layers.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrVersionIsInvalid) with a struct
// carrying the details. Unwrap returns the sentinel, so callers classify with
// errors.Is and inspect details with errors.As:
//
//	var notFound *errs.ObjectNotFoundError
//	if errors.As(err, &notFound) {
//	    // notFound.ParamName, notFound.ID
//	}
//
// Each type has a plain constructor and a WithCause variant; the cause is
// rendered in the message but is not part of the unwrap chain.
package errs
