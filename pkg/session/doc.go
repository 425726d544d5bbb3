// Package session keeps signed admin sessions.
//
// A Manager issues a random session ID, stores the session in a Store and
// hands the browser a cookie holding the ID and an HMAC of it:
//
//	mgr := session.NewManager(session.NewMemoryStore(), session.Config{
//	    Secret: []byte(cfg.Server.Secret),
//	    TTL:    12 * time.Hour,
//	}, logger)
//
//	sess, err := mgr.Create(ctx, w, "admin")
//	...
//	sess, err = mgr.Get(ctx, r) // nil when the cookie is missing, forged or expired
//
// Each session carries a CSRF token for admin forms and at most one flash
// message, which PopFlash consumes.
//
// # Stores
//
// MemoryStore is the default and loses sessions on restart. BoltStore keeps
// them in a bucket of an existing bbolt database.
package session
