package teams

// Team represents the normalized team shape.
// Kept in its own package to keep domain models modular and reusable across providers/fixtures.
type Team struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ShortName  string   `json:"shortName"`
	TLA        string   `json:"tla"`
	Crest      string   `json:"crest,omitempty"`
	Address    string   `json:"address,omitempty"`
	Website    string   `json:"website,omitempty"`
	Founded    int      `json:"founded,omitempty"`
	ClubColors string   `json:"clubColors,omitempty"`
	Venue      string   `json:"venue,omitempty"`
	Meta       TeamMeta `json:"meta"`
}

// TeamMeta holds upstream metadata.
type TeamMeta struct {
	UpstreamTeamID int    `json:"upstreamTeamId"`
	Area           string `json:"area,omitempty"`
}

// SquadResponse is the payload for a competition's team list.
type SquadResponse struct {
	Competition string `json:"competition"`
	Season      string `json:"season,omitempty"`
	Teams       []Team `json:"teams"`
}
