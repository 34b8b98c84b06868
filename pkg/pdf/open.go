package pdf

import (
	"errors"
	"fmt"
)

// Open parses data with the first backend that succeeds, trying ledongthuc
// first, then dslipak, then pdfcpu.
func Open(data []byte) (Document, error) {
	var errs []error
	for _, b := range Backends {
		doc, err := OpenWith(b, data)
		if err == nil {
			return doc, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// OpenWith parses data with the named backend
func OpenWith(backend Backend, data []byte) (Document, error) {
	switch backend {
	case BackendPDFCPU:
		return OpenPDFCPU(data)
	case BackendLedongthuc:
		return OpenLedongthuc(data)
	case BackendDslipak:
		return OpenDslipak(data)
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}
