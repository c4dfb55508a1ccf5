package dtos

import "time"

// APIResponse is the standard JSON envelope for every endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// TokenResponse is returned by POST /users/login.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// UserSummary is the public shape of a user record.
type UserSummary struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	Username    *string `json:"username"`
	Bio         *string `json:"bio"`
	ArchetypeID *uint   `json:"archetype_id"`
	TierID      *uint   `json:"tier_id"`
}

// ProfileResponse is the public profile view with resolved reference names.
type ProfileResponse struct {
	ID              uint    `json:"id"`
	Email           string  `json:"email"`
	Username        *string `json:"username"`
	FullName        *string `json:"full_name"`
	Bio             *string `json:"bio"`
	PreferredThemes *string `json:"preferred_themes"`
	PortfolioLinks  *string `json:"portfolio_links"`
	NextBuild       *string `json:"next_build"`
	Affiliations    *string `json:"affiliations"`
	Archetype       *string `json:"archetype"`
	Tier            *string `json:"tier"`
}

// DiscoverUserEntry is one row of the user discovery feed.
type DiscoverUserEntry struct {
	ID        uint    `json:"id"`
	Username  *string `json:"username"`
	FullName  *string `json:"full_name"`
	Bio       *string `json:"bio"`
	Archetype *string `json:"archetype"`
	NextBuild *string `json:"next_build"`
}

// ProjectResponse is the wire shape of a project; delimited tag columns are
// split back into lists here.
type ProjectResponse struct {
	ID               uint       `json:"id"`
	Title            string     `json:"title"`
	Objective        string     `json:"objective"`
	ProjectType      string     `json:"project_type"`
	NeededArchetypes []string   `json:"needed_archetypes"`
	OpenRoles        *string    `json:"open_roles"`
	Timeline         *string    `json:"timeline"`
	Region           *string    `json:"region"`
	CoalitionTags    []string   `json:"coalition_tags"`
	PosterID         uint       `json:"poster_id"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// CoalitionSummary is one row of the coalition listing.
type CoalitionSummary struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Focus       *string   `json:"focus"`
	Location    *string   `json:"location"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// CoalitionMember is a member entry on the coalition detail view.
type CoalitionMember struct {
	ID        uint    `json:"id"`
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	Archetype *string `json:"archetype"`
	Tier      *string `json:"tier"`
}

// CoalitionDetail is the expanded coalition view with members.
type CoalitionDetail struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Focus       *string           `json:"focus"`
	Location    *string           `json:"location"`
	CreatedAt   time.Time         `json:"created_at"`
	Members     []CoalitionMember `json:"members"`
}

// CollabResponse is the wire shape of a collaboration link.
type CollabResponse struct {
	ID            uint       `json:"id"`
	UserAUsername string     `json:"user_a_username"`
	UserBUsername string     `json:"user_b_username"`
	ProjectName   *string    `json:"project_name"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	VerifiedAt    *time.Time `json:"verified_at"`
}

// ArchetypeResponse is one reference-data archetype row.
type ArchetypeResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// TierResponse is one reference-data tier row.
type TierResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Level       int     `json:"level"`
	Description *string `json:"description"`
}
