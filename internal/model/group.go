package model

// PositionGroup is an optional named collection used only for display
// grouping. Membership is many-to-many and never affects valuation: a
// position contributes the same amount to every total whether or not it
// belongs to any group.
type PositionGroup struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
}

// GroupMember links a position of a given asset class into a group.
type GroupMember struct {
	GroupID    string     `json:"groupId"`
	AssetClass AssetClass `json:"assetClass"`
	PositionID string     `json:"positionId"`
}
