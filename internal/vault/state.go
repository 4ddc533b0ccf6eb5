package vault

// State is the lifecycle stage of a [Vault].
//
//	Locked -> Unlocking -> Unlocked -> Closed
//	               \-> LockedOut -> Unlocking (retry)
type State int

const (
	// StateLocked is the initial state: nothing has been read yet.
	StateLocked State = iota
	// StateUnlocking covers reading the file and deriving the key.
	StateUnlocking
	// StateUnlocked means the key is cached and the secrets are in memory.
	StateUnlocked
	// StateLockedOut follows a failed unlock. Nothing is populated and a
	// new Unlock attempt is allowed.
	StateLockedOut
	// StateClosed is terminal.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateLocked:
		return "locked"
	case StateUnlocking:
		return "unlocking"
	case StateUnlocked:
		return "unlocked"
	case StateLockedOut:
		return "locked out"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
