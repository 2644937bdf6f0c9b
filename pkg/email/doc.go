// Package email sends the relay's transactional notifications.
//
// Sender is the provider abstraction. Two implementations exist:
//   - PostmarkSender delivers through Postmark's transactional API
//     (github.com/mrz1836/postmark).
//   - DevSender writes each message to disk as HTML, text and JSON files for
//     local development.
//
// Send distinguishes the two failure modes callers care about:
//
//	res, err := sender.Send(ctx, msg)
//	switch {
//	case errors.Is(err, email.ErrProviderRejected):
//	    // the provider answered with a non-zero code, see res.ErrorCode
//	case err != nil:
//	    // transport failure or invalid message
//	}
//
// The recipient address is deliberately not validated here: an empty or
// malformed To is passed through and rejected by the provider, which reports
// it as ErrProviderRejected.
package email
