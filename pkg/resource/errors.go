package resource

import "errors"

// Sentinel errors for declaration-time and render-time failures.
// Declaration-time errors (ErrNoSource, ErrInvalidMember, ErrRemoteIntegrity)
// indicate programmer mistakes and are raised at the construction call site.
var (
	// ErrNoSource is returned by the resource constructors when neither a
	// local file nor an external URL is given. A resource must resolve to
	// a concrete renderable artifact.
	ErrNoSource = errors.New("either file or url must be given")

	// ErrInvalidMember is returned by [Group.Add] and the resolver
	// constructor when a candidate member is nil.
	ErrInvalidMember = errors.New("group members must be resources or groups")

	// ErrNotMember is returned by Detach when the node has no parent group.
	ErrNotMember = errors.New("node is not a member of a group")

	// ErrNoDirectory is returned when a file operation is attempted on a
	// resource with no directory set on itself or any ancestor group.
	ErrNoDirectory = errors.New("no directory set on resource")

	// ErrRemoteIntegrity is returned by [NewScript] when automatic
	// integrity computation is requested for an external URL resource.
	// The file content is not available, so the hash cannot be derived.
	ErrRemoteIntegrity = errors.New("cannot compute integrity hash for external resource")

	// ErrUnknownAlgorithm is returned when a hash algorithm other than
	// sha256, sha384 or sha512 is requested.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)
