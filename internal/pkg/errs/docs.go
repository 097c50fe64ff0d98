// Package errs provides the typed errors shared by the domain, the use cases and the adapters.
//
// Each error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ErrObjectNotFound)
// with a struct carrying the details. Unwrap returns the sentinel, so callers classify
// failures with errors.Is and read details with errors.As:
//
//	var notFound *errs.ObjectNotFoundError
//	if errors.As(err, &notFound) {
//	    log.Printf("missing %s %v", notFound.ParamName, notFound.ID)
//	}
package errs
