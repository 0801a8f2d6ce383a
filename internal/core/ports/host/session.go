package host

import "context"

// Session is a synchronous MEL channel to a running Maya host. Sessions are
// single-user: one command at a time, in order.
type Session interface {
	// Run executes one MEL statement and returns the host's reply with
	// transport framing stripped. A reply carrying a MEL error comes back
	// as a *CommandError.
	Run(ctx context.Context, command string) (string, error)

	// Close releases the session. Closing twice is harmless.
	Close() error
}

// Dialer opens sessions to a configured host.
type Dialer interface {
	// Dial establishes a new session. The caller owns it and must close
	// it.
	Dial(ctx context.Context) (Session, error)
}

// Info describes the host a session is connected to.
type Info struct {
	// MayaVersion is the host's year version, 0 when unknown.
	MayaVersion int

	// PluginVersion is the FBX plug-in version string, empty when
	// unknown.
	PluginVersion string
}
