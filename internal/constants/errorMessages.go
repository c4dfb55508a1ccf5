package constants

const (
	MsgInvalidCredentials  = "Invalid email or password"
	MsgInvalidToken        = "Could not validate credentials"
	MsgUserNotFound        = "User not found"
	MsgProjectNotFound     = "Project not found"
	MsgCoalitionNotFound   = "Coalition not found"
	MsgProfileForbidden    = "You are not allowed to edit this profile"
	MsgProjectForbidden    = "You are not allowed to update this project"
	MsgDeleteForbidden     = "You are not allowed to delete this project"
	MsgInvalidStatus       = "Invalid project status"
	MsgCompletedImmutable  = "Completed projects cannot be updated"
	MsgOnlyOpenDeletable   = "Only open projects can be deleted"
	MsgSelfCollaboration   = "Cannot collaborate with yourself"
	MsgCollabAlreadyExists = "Collaboration already exists"
	MsgEmailTaken          = "Email is already registered"
	MsgUsernameTaken       = "Username is already taken"
)

// CacheKeyPrefixArchetype and friends namespace reference-data cache entries.
const (
	CacheKeyPrefixArchetype = "ref:archetype:"
	CacheKeyPrefixTier      = "ref:tier:"
)
