package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/evlasov/eshop/internal/errors"
)

// OnTransient retries op with bounded exponential backoff while it keeps
// failing with KindTransient. Any other kind aborts immediately. Only
// read-only operations may go through here; mutations are not idempotent
// because cart quantity is row multiplicity.
func OnTransient(c context.Context, op func() error) error {
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), c)
	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if errors.KindOf(err) == errors.KindTransient {
			return err
		}
		return backoff.Permanent(err)
	}, bo)
}
