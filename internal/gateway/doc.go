// Package gateway provides a client for the Fios Quantum Gateway web admin API.
//
// This package implements the two-step salted-hash login the gateway uses:
// the login endpoint first issues a password salt, the client submits the
// SHA-512 digest of password+salt, and a successful login answers with the
// XSRF-TOKEN and Session cookies. Those two values decorate every
// authenticated request afterwards.
//
// # Features
//
//   - Login handshake with salt retrieval and credential extraction
//   - Authenticated requests carrying the X-XSRF-TOKEN header and Session cookie
//   - Typed network counter retrieval with schema validation
//   - Transport that accepts the gateway's self-signed certificate
//
// # Example Usage
//
// Logging in and fetching the current counters:
//
//	client := gateway.NewClient(gateway.DefaultHost, nil)
//	credential, err := client.Login(password)
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//
//	session := gateway.NewAuthClient(client, credential)
//	status, err := session.NetworkStatus()
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//
//	sample := status.Sample()
//	fmt.Printf("rx=%d tx=%d\n", sample.RxBits, sample.TxBits)
//
//	_ = session.Logout()
//
// The flow is strictly sequential and nothing is retried: any transport,
// protocol, parse, or authentication failure is terminal for the run.
package gateway
