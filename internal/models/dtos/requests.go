package dtos

// SignupReq is the payload for POST /users/signup.
type SignupReq struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Username    *string `json:"username"`
	ArchetypeID *uint   `json:"archetype_id"`
	TierID      *uint   `json:"tier_id"`
}

// LoginReq is the payload for POST /users/login.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateReq carries the allow-listed partial profile update. Pointer
// fields distinguish "absent" from "set to empty".
type ProfileUpdateReq struct {
	FullName        *string `json:"full_name"`
	Bio             *string `json:"bio"`
	PreferredThemes *string `json:"preferred_themes"`
	PortfolioLinks  *string `json:"portfolio_links"`
	NextBuild       *string `json:"next_build"`
	Affiliations    *string `json:"affiliations"`
}

// ProjectCreateReq is the payload for POST /projects.
type ProjectCreateReq struct {
	Title            string   `json:"title"`
	Objective        string   `json:"objective"`
	ProjectType      string   `json:"project_type"`
	NeededArchetypes []string `json:"needed_archetypes"`
	OpenRoles        *string  `json:"open_roles"`
	Timeline         *string  `json:"timeline"`
	Region           *string  `json:"region"`
	CoalitionTags    []string `json:"coalition_tags"`
}

// ProjectStatusUpdateReq is the payload for PATCH /projects/{id}/status.
type ProjectStatusUpdateReq struct {
	Status string `json:"status"`
}

// CollabCreateReq is the payload for POST /collabcircle.
type CollabCreateReq struct {
	CollaboratorUsername string  `json:"collaborator_username"`
	ProjectName          *string `json:"project_name"`
}
