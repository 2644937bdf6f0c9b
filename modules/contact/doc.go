// Package contact relays website contact-form submissions to the right
// organizational inbox.
//
// A single Handler serves the endpoint. OPTIONS requests are answered as CORS
// preflights. Every other method is treated as a submission: the JSON body is
// decoded, the recipient is looked up by the natureOfRequest category, a plain
// text and an HTML notification are rendered and the email is handed to an
// email.Sender.
//
// Outcomes are deliberately flat:
//
//	200 "Success"                the provider accepted the message
//	400 "Bad Request"            the body could not be decoded or the send failed in transit
//	500 "Internal Server Error"  the provider answered with a non-zero error code
//
// Details are only ever written to the log.
package contact
