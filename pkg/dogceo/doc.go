// Package dogceo is a client for the dog.ceo image catalog API.
//
// Every method issues a single GET, decodes the {"status", "message"} envelope
// and returns the message typed for the endpoint. All failures, whether from
// the transport, the JSON decoder or the API itself, surface as *Error.
package dogceo
