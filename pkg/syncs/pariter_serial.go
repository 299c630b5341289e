//go:build !parallel

package syncs

import "github.com/hashicorp/go-multierror"

// ParEach applies f to every element of items. In serial builds elements
// are visited one at a time in order; every error is collected and the
// aggregate is returned.
func ParEach[T any](items []T, f func(T) error) error {
	var merr *multierror.Error

	for _, item := range items {
		err := f(item)
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return merr.ErrorOrNil()
}
